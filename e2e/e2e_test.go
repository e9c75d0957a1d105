//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var cascadeBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "cascade-e2e-*")
	if err != nil {
		panic(err)
	}

	cascadeBinary = filepath.Join(tmpDir, "cascade")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", cascadeBinary, "./cmd/cascade")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build cascade binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

// setupE2E puts cascade and the fake toolchain from the script's tools/
// directory on PATH.
func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	toolsDir := filepath.Join(env.WorkDir, "tools")
	entries, err := os.ReadDir(toolsDir)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for _, e := range entries {
		//nolint:gosec // fake tools must be executable
		if err := os.Chmod(filepath.Join(toolsDir, e.Name()), 0o755); err != nil {
			return err
		}
	}

	binDir := filepath.Dir(cascadeBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+toolsDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}
