package domain

import "path/filepath"

const (
	// CascadeDirName is the name of the metadata directory inside the build path.
	CascadeDirName = ".cascade"

	// StampFileName is the name of the build configuration stamp file.
	StampFileName = "stamp.json"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "cascade.yaml"

	// BinDirName is the directory inside the build path that holds test binaries.
	BinDirName = "bin"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// StampPath returns the location of the build configuration stamp for a build path.
func StampPath(buildPath string) string {
	return filepath.Join(buildPath, CascadeDirName, StampFileName)
}

// TestBinaryPath returns {buildPath}/bin/{name}.
func TestBinaryPath(buildPath, name string) string {
	return filepath.Join(buildPath, BinDirName, name)
}
