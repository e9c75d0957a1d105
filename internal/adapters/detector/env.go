// Package detector inspects the terminal the orchestrator runs in.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Mode describes how child processes should be attached to the terminal.
type Mode int

const (
	// ModePlain passes the standard streams through unchanged.
	ModePlain Mode = iota
	// ModeInteractive runs children on a pseudo-terminal.
	ModeInteractive
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "plain"
}

// DetectEnvironment returns ModeInteractive when stdout is a terminal
// and no CI environment is signalled.
func DetectEnvironment() Mode {
	return resolve(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func resolve(isTTY bool, ci string) Mode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePlain
	}
	return ModeInteractive
}
