package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/cascade/internal/core/domain"
)

type boolFlag struct {
	name  string
	usage string
	field func(*domain.Options) *bool
}

var boolFlags = []boolFlag{
	{"conan", "Install conan packages", func(o *domain.Options) *bool { return &o.InstallDependencies }},
	{"32", "Build x86, x86_64 by default", func(o *domain.Options) *bool { return &o.Force32Bit }},
	{"release", "Build Release, Debug by default", func(o *domain.Options) *bool { return &o.Release }},
	{"ninja", "Use the Ninja generator", func(o *domain.Options) *bool { return &o.AlternateGenerator }},
	{"clean", "Remove the build directory first (implies --conan)", func(o *domain.Options) *bool { return &o.CleanBuild }},
	{"install", "Build the install target", func(o *domain.Options) *bool { return &o.InstallAfterBuild }},
	{"coverage", "Run the tests under OpenCppCoverage", func(o *domain.Options) *bool { return &o.MeasureCoverage }},
	{"check", "Enable static checks", func(o *domain.Options) *bool { return &o.StaticCheck }},
	{"coverage_cobertura", "Write a Cobertura XML coverage report", func(o *domain.Options) *bool { return &o.CoberturaFormat }},
	{"build-test", "Build the unit tests", func(o *domain.Options) *bool { return &o.BuildTests }},
}

const (
	flagCoverageIgnore = "coverage_ignore"
	flagTag            = "tag"
	flagRepeat         = "repeat"
)

// registerFlags declares the run options as persistent flags so they are
// accepted before and after the build and test subcommands.
func registerFlags(cmd *cobra.Command) {
	defaults := domain.DefaultOptions()
	flags := cmd.PersistentFlags()

	for _, f := range boolFlags {
		flags.Bool(f.name, *f.field(&defaults), f.usage)
	}
	flags.String(flagCoverageIgnore, defaults.CoverageIgnorePattern, `Exclude sources from coverage, e.g. D:\*`)
	flags.StringP(flagTag, "t", defaults.TestTag, "Catch2 tag filter passed to the test binary")
	flags.IntP(flagRepeat, "r", defaults.Repeat, "Number of sequential test runs")

	flags.Bool("19", false, "Visual Studio 2019")
	_ = flags.MarkDeprecated("19", "only Visual Studio 2019 is supported")
	flags.Bool("gui", false, "Build the debug GUI")
	_ = flags.MarkDeprecated("gui", "use --build-test instead")
}

// resolveOptions starts from the configured defaults and applies every flag
// given on the command line.
func resolveOptions(flags *pflag.FlagSet, defaults domain.Options) (domain.Options, error) {
	opts := defaults

	for _, f := range boolFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetBool(f.name)
		if err != nil {
			return domain.Options{}, err
		}
		*f.field(&opts) = v
	}

	if flags.Changed(flagCoverageIgnore) {
		v, err := flags.GetString(flagCoverageIgnore)
		if err != nil {
			return domain.Options{}, err
		}
		opts.CoverageIgnorePattern = v
	}
	if flags.Changed(flagTag) {
		v, err := flags.GetString(flagTag)
		if err != nil {
			return domain.Options{}, err
		}
		opts.TestTag = v
	}
	if flags.Changed(flagRepeat) {
		v, err := flags.GetInt(flagRepeat)
		if err != nil {
			return domain.Options{}, err
		}
		opts.Repeat = v
	}

	return opts, nil
}
