// Package shell runs external programs for the pipeline.
package shell

import (
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec. When a pseudo-terminal
// is enabled the child sees a TTY, so compilers and test runners keep their
// colored output; otherwise the streams are passed through directly.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	usePTY bool
}

var _ ports.Executor = (*Executor)(nil)

// NewExecutor creates an Executor writing to the given streams.
// Nil writers select the process streams.
func NewExecutor(stdout, stderr io.Writer) *Executor {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Executor{
		stdin:  os.Stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// WithPTY enables or disables pseudo-terminal mode.
func (e *Executor) WithPTY(enable bool) *Executor {
	e.usePTY = enable
	return e
}

// Execute runs cmd to completion and returns its exit status.
func (e *Executor) Execute(ctx context.Context, cmd *domain.CommandLine, env []string) (int, error) {
	if cmd == nil || cmd.IsEmpty() {
		return -1, domain.ErrEmptyCommand
	}

	name := cmd.Program()
	cmdEnv := resolveEnvironment(os.Environ(), env)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args()...) //nolint:gosec // command is assembled by the pipeline
	c.Args[0] = name
	c.Env = cmdEnv

	var waitIO func()
	if e.usePTY {
		ptmx, err := pty.Start(c)
		if err != nil {
			return -1, startError(err, cmd)
		}
		done := make(chan struct{})
		go func() {
			defer close(done)
			// The PTY merges stdout and stderr.
			_, _ = io.Copy(e.stdout, ptmx)
		}()
		waitIO = func() {
			<-done
			_ = ptmx.Close()
		}
	} else {
		c.Stdin = e.stdin
		c.Stdout = e.stdout
		c.Stderr = e.stderr
		if err := c.Start(); err != nil {
			return -1, startError(err, cmd)
		}
		waitIO = func() {}
	}

	err := c.Wait()
	waitIO()

	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, zerr.With(zerr.Wrap(err, "failed waiting for command"), "command", cmd.String())
}

func startError(err error, cmd *domain.CommandLine) error {
	wrapped := zerr.Wrap(domain.ErrCommandStartFailed, err.Error())
	return zerr.With(wrapped, "command", cmd.String())
}

// resolveEnvironment layers overrides (KEY=VALUE) over the system environment.
// The result is sorted by key.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, source := range [][]string{sysEnv, overrides} {
		for _, entry := range source {
			k, v, ok := strings.Cut(entry, "=")
			if ok && k != "" {
				envMap[k] = v
			}
		}
	}

	result := make([]string, 0, len(envMap))
	for _, k := range slices.Sorted(maps.Keys(envMap)) {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches the PATH of env (not of the current process) for file.
func lookPath(file string, env []string) (string, error) {
	if strings.ContainsRune(file, filepath.Separator) {
		return file, findExecutable(file)
	}

	var path string
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "PATH="); ok {
			path = after
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
