package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnsureBuildPath prepares the build directory and returns its absolute path.
// With clean set the directory is removed first, ignoring errors, and
// forceInstall reports that dependencies must be installed again.
func EnsureBuildPath(path string, clean bool) (buildPath string, forceInstall bool, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(domain.ErrBuildPathFailed, err.Error()), "path", path)
	}

	if clean {
		_ = os.RemoveAll(abs)
	}

	if err := os.Mkdir(abs, domain.DirPerm); err != nil {
		if !errors.Is(err, fs.ErrExist) {
			return "", false, zerr.With(zerr.Wrap(domain.ErrBuildPathFailed, err.Error()), "path", abs)
		}
		if info, statErr := os.Stat(abs); statErr != nil || !info.IsDir() {
			return "", false, zerr.With(zerr.Wrap(domain.ErrBuildPathFailed, "not a directory"), "path", abs)
		}
	}

	return abs, clean, nil
}
