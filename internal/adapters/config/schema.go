package config

// SchemaVersion is the only cascade.yaml version understood by the loader.
const SchemaVersion = "1"

// Cascadefile represents the structure of the cascade.yaml configuration file.
// Every field is optional; absent fields keep their built-in defaults.
type Cascadefile struct {
	Version   string       `yaml:"version"`
	Project   ProjectDTO   `yaml:"project"`
	Toolchain ToolchainDTO `yaml:"toolchain"`
	Test      TestDTO      `yaml:"test"`
	Coverage  CoverageDTO  `yaml:"coverage"`
	Defaults  DefaultsDTO  `yaml:"defaults"`
}

// ProjectDTO describes the project layout.
type ProjectDTO struct {
	BuildDir     string   `yaml:"buildDir"`
	SourceDir    string   `yaml:"sourceDir"`
	VersionEnv   string   `yaml:"versionEnv"`
	UpgradeEnv   string   `yaml:"upgradeEnv"`
	VersionFiles []string `yaml:"versionFiles"`
}

// ToolchainDTO names the external tools and their fixed settings.
type ToolchainDTO struct {
	CMake           string `yaml:"cmake"`
	Conan           string `yaml:"conan"`
	Jobs            *int   `yaml:"jobs"`
	VisualStudio    string `yaml:"visualStudio"`
	CompilerVersion string `yaml:"compilerVersion"`
}

// TestDTO describes the test binary.
type TestDTO struct {
	Binary string `yaml:"binary"`
}

// CoverageDTO describes the coverage tool and its report locations.
type CoverageDTO struct {
	Tool          string `yaml:"tool"`
	HTMLDir       string `yaml:"htmlDir"`
	HTMLFile      string `yaml:"htmlFile"`
	CoberturaFile string `yaml:"coberturaFile"`
}

// DefaultsDTO holds default values for command-line flags.
type DefaultsDTO struct {
	Conan             *bool   `yaml:"conan"`
	Force32           *bool   `yaml:"x86"`
	Release           *bool   `yaml:"release"`
	Ninja             *bool   `yaml:"ninja"`
	Install           *bool   `yaml:"install"`
	Coverage          *bool   `yaml:"coverage"`
	Check             *bool   `yaml:"check"`
	CoverageCobertura *bool   `yaml:"coverageCobertura"`
	CoverageIgnore    *string `yaml:"coverageIgnore"`
	BuildTests        *bool   `yaml:"buildTests"`
	Tag               *string `yaml:"tag"`
	Repeat            *int    `yaml:"repeat"`
}
