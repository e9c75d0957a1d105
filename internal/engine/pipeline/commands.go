package pipeline

import (
	"path/filepath"
	"strconv"

	"go.trai.ch/cascade/internal/core/domain"
)

// Generator names.
const (
	GeneratorNinja    = "Ninja"
	GeneratorUnixMake = "Unix Makefiles"
)

const (
	vsArchitecture32    = "Win32"
	vsArchitecture64    = "x64"
	conanArchitecture32 = "x86"
	conanArchitecture64 = "x86_64"
)

// Commands builds the command lines of one run. Fragment order is fixed:
// downstream tools are never assumed to accept arguments in any other order.
type Commands struct {
	Config    *domain.Config
	Platform  domain.Platform
	WorkDir   string
	BuildPath string
	Options   domain.Options
}

// Install returns the dependency installation command.
func (c Commands) Install() *domain.CommandLine {
	o := c.Options
	cmd := domain.NewCommandLine(c.Config.Conan, "install", c.WorkDir, "--build", "missing", "-if", c.BuildPath)
	cmd.Append("-s", "build_type="+o.BuildType())

	if !c.Platform.IsAArch64() {
		arch := conanArchitecture64
		if o.Force32Bit {
			arch = conanArchitecture32
		}
		cmd.Append("-s", "arch="+arch)
	}

	if c.Platform.IsWindows() {
		runtime := "MTd"
		if o.Release {
			runtime = "MT"
		}
		cmd.Append("-s", "compiler.runtime="+runtime)
		cmd.Append("-s", "compiler.version="+c.Config.CompilerVersion)
	}

	return cmd
}

// Generator returns the generator selection tokens.
func (c Commands) Generator() []string {
	switch {
	case c.Options.AlternateGenerator:
		return []string{"-G", GeneratorNinja}
	case !c.Platform.IsWindows():
		return []string{"-G", GeneratorUnixMake}
	case c.Options.Force32Bit:
		return []string{"-G", c.Config.VisualStudio, "-A", vsArchitecture32}
	default:
		return []string{"-G", c.Config.VisualStudio, "-A", vsArchitecture64}
	}
}

// Generate returns the build-system configure command.
func (c Commands) Generate() *domain.CommandLine {
	o := c.Options
	cmd := domain.NewCommandLine(c.Config.CMake, c.Generator()...)
	cmd.Append("-B", c.BuildPath, "-S", c.WorkDir)
	cmd.Append("-DCMAKE_BUILD_TYPE=" + o.BuildType())
	cmd.AppendIf(o.BuildTests, "-DBUILD_TESTS=ON")
	cmd.AppendIf(o.StaticCheck, "-DSTATIC_CHECK=ON")
	return cmd
}

// Build returns the build command.
func (c Commands) Build() *domain.CommandLine {
	o := c.Options
	cmd := domain.NewCommandLine(c.Config.CMake, "--build", c.BuildPath, "-j", strconv.Itoa(c.Config.Jobs))
	cmd.Append("--config", o.BuildType())
	cmd.AppendIf(o.InstallAfterBuild, "--target", "install")
	return cmd
}

// Test returns the test binary invocation, wrapped in the coverage tool
// when coverage is measured.
func (c Commands) Test() *domain.CommandLine {
	o := c.Options
	test := domain.NewCommandLine(domain.TestBinaryPath(c.BuildPath, c.Config.TestBinary), "--abort")
	test.AppendIf(o.TestTag != "", o.TestTag)

	if !o.MeasureCoverage {
		return test
	}

	cmd := domain.NewCommandLine(c.Config.CoverageTool)
	cmd.Append("--source", filepath.Join(c.WorkDir, c.Config.SourceDir)+"*")
	cmd.AppendIf(o.CoverageIgnorePattern != "", "--excluded_sources", o.CoverageIgnorePattern)
	if o.CoberturaFormat {
		cmd.Append("--export_type", "cobertura:"+c.Config.CoverageXMLFile)
	} else {
		cmd.Append("--export_type", "html:"+c.Config.CoverageHTMLDir)
	}
	cmd.Append("--")
	cmd.Append(test.Tokens()...)
	return cmd
}

// ReportPath returns where the coverage tool writes the report that is
// summarized after the test runs.
func (c Commands) ReportPath() string {
	if c.Options.CoberturaFormat {
		return filepath.Join(c.WorkDir, c.Config.CoverageXMLFile)
	}
	return filepath.Join(c.WorkDir, c.Config.CoverageHTMLDir, c.Config.CoverageHTMLFile)
}
