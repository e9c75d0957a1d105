package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/engine/pipeline"
)

func TestEnsureBuildPath_Creates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build")

	got, forced, err := pipeline.EnsureBuildPath(path, false)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.False(t, forced)
	assert.DirExists(t, path)
}

func TestEnsureBuildPath_KeepsExistingContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build")
	require.NoError(t, os.Mkdir(path, domain.DirPerm))
	artifact := filepath.Join(path, "CMakeCache.txt")
	require.NoError(t, os.WriteFile(artifact, []byte("cache"), domain.FilePerm))

	_, _, err := pipeline.EnsureBuildPath(path, false)
	require.NoError(t, err)
	assert.FileExists(t, artifact)
}

func TestEnsureBuildPath_CleanEmptiesAndForcesInstall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "bin"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(path, "CMakeCache.txt"), []byte("cache"), domain.FilePerm))

	got, forced, err := pipeline.EnsureBuildPath(path, true)
	require.NoError(t, err)
	assert.True(t, forced)

	entries, err := os.ReadDir(got)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEnsureBuildPath_CleanOnMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build")

	_, forced, err := pipeline.EnsureBuildPath(path, true)
	require.NoError(t, err)
	assert.True(t, forced)
	assert.DirExists(t, path)
}

func TestEnsureBuildPath_RelativeBecomesAbsolute(t *testing.T) {
	t.Chdir(t.TempDir())

	got, _, err := pipeline.EnsureBuildPath("build", false)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.DirExists(t, got)
}

func TestEnsureBuildPath_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build")
	require.NoError(t, os.WriteFile(path, nil, domain.FilePerm))

	_, _, err := pipeline.EnsureBuildPath(path, false)
	assert.True(t, errors.Is(err, domain.ErrBuildPathFailed))
}

func TestEnsureBuildPath_MissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "build")

	_, _, err := pipeline.EnsureBuildPath(path, false)
	assert.True(t, errors.Is(err, domain.ErrBuildPathFailed))
}
