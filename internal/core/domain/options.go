package domain

import "go.trai.ch/zerr"

// Build type names passed to the dependency installer and the build system.
const (
	BuildTypeDebug   = "Debug"
	BuildTypeRelease = "Release"
)

// Options is the resolved set of flags for a single run.
// It is produced once from the command line and only read afterwards;
// the With* methods return modified copies.
type Options struct {
	InstallDependencies   bool
	Force32Bit            bool
	Release               bool
	AlternateGenerator    bool
	CleanBuild            bool
	InstallAfterBuild     bool
	MeasureCoverage       bool
	StaticCheck           bool
	CoberturaFormat       bool
	BuildTests            bool
	OnlyBuild             bool
	OnlyTest              bool
	CoverageIgnorePattern string
	TestTag               string
	Repeat                int
}

// DefaultOptions returns the options used when no flag is given.
func DefaultOptions() Options {
	return Options{Repeat: 1}
}

// BuildType returns "Release" or "Debug".
func (o Options) BuildType() string {
	if o.Release {
		return BuildTypeRelease
	}
	return BuildTypeDebug
}

// RunsBuild reports whether the build half of the pipeline runs.
// Absence of both subcommands means both halves run.
func (o Options) RunsBuild() bool {
	return o.OnlyBuild || !o.OnlyTest
}

// RunsTest reports whether the test half of the pipeline runs.
func (o Options) RunsTest() bool {
	return o.OnlyTest || !o.OnlyBuild
}

// WithForcedInstall returns a copy with dependency installation switched on.
func (o Options) WithForcedInstall() Options {
	o.InstallDependencies = true
	return o
}

// Validate checks the value-typed options.
func (o Options) Validate() error {
	if o.Repeat < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidRepeat, "invalid options"), "repeat", o.Repeat)
	}
	return nil
}
