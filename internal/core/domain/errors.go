package domain

import "go.trai.ch/zerr"

var (
	// ErrVersionFileNotFound is returned when none of the candidate properties files exist.
	ErrVersionFileNotFound = zerr.New("no version properties file found")

	// ErrVersionFileReadFailed is returned when a properties file exists but cannot be read.
	ErrVersionFileReadFailed = zerr.New("failed to read version properties file")

	// ErrPropertiesMalformed is returned when a properties line does not contain exactly one '='.
	ErrPropertiesMalformed = zerr.New("malformed properties line, expected exactly one '='")

	// ErrVersionKeyMissing is returned when a required version key is absent.
	ErrVersionKeyMissing = zerr.New("required version key missing")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidRepeat is returned when the repeat count is below one.
	ErrInvalidRepeat = zerr.New("repeat count must be at least 1")

	// ErrInvalidJobs is returned when the configured build parallelism is below one.
	ErrInvalidJobs = zerr.New("jobs must be at least 1")

	// ErrWorkDirUnavailable is returned when the working directory cannot be determined.
	ErrWorkDirUnavailable = zerr.New("failed to determine working directory")

	// ErrBuildPathFailed is returned when the build directory cannot be created.
	ErrBuildPathFailed = zerr.New("failed to prepare build directory")

	// ErrEmptyCommand is returned when an external command has no tokens.
	ErrEmptyCommand = zerr.New("empty command line")

	// ErrCommandStartFailed is returned when an external command cannot be spawned.
	ErrCommandStartFailed = zerr.New("failed to start external command")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("external command failed")

	// ErrRunFailed is returned by the top-level run when any step fails.
	ErrRunFailed = zerr.New("build-and-test run failed")

	// ErrReportReadFailed is returned when a coverage report exists but cannot be read.
	ErrReportReadFailed = zerr.New("failed to read coverage report")

	// ErrStampReadFailed is returned when the build configuration stamp cannot be read.
	ErrStampReadFailed = zerr.New("failed to read build stamp")

	// ErrStampUnmarshalFailed is returned when the build configuration stamp cannot be decoded.
	ErrStampUnmarshalFailed = zerr.New("failed to unmarshal build stamp")

	// ErrStampWriteFailed is returned when the build configuration stamp cannot be written.
	ErrStampWriteFailed = zerr.New("failed to write build stamp")
)
