package domain

// Config holds the project layout and toolchain names.
// Zero values are never used directly; DefaultConfig supplies every field.
type Config struct {
	BuildDir     string
	SourceDir    string
	VersionEnv   string
	UpgradeEnv   string
	VersionFiles []string

	CMake           string
	Conan           string
	Jobs            int
	VisualStudio    string
	CompilerVersion string

	TestBinary string

	CoverageTool     string
	CoverageHTMLDir  string
	CoverageXMLFile  string
	CoverageHTMLFile string

	Defaults Options
}

// DefaultConfig returns the built-in project layout.
func DefaultConfig() *Config {
	return &Config{
		BuildDir:   "build",
		SourceDir:  "src",
		VersionEnv: "CAMERA_CASCADE_VERSION",
		UpgradeEnv: "SELF_UPGRADE",
		VersionFiles: []string{
			"version.properties",
			"tools/udi-debug-gui/version.properties",
		},

		CMake:           "cmake",
		Conan:           "conan",
		Jobs:            4,
		VisualStudio:    "Visual Studio 16 2019",
		CompilerVersion: "16",

		TestBinary: "CodeForHHTechShareTest",

		CoverageTool:     "OpenCppCoverage.exe",
		CoverageHTMLDir:  "Coverage",
		CoverageXMLFile:  "Coverage.xml",
		CoverageHTMLFile: "index.html",

		Defaults: DefaultOptions(),
	}
}
