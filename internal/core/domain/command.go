package domain

import (
	"slices"
	"strings"
)

// CommandLine is an ordered sequence of argument tokens for an external program.
// The first token is the program. Tokens are never re-ordered.
type CommandLine struct {
	tokens []string
}

// NewCommandLine starts a command line with the given program and arguments.
func NewCommandLine(program string, args ...string) *CommandLine {
	c := &CommandLine{tokens: make([]string, 0, len(args)+1)}
	c.tokens = append(c.tokens, program)
	c.tokens = append(c.tokens, args...)
	return c
}

// Append adds tokens to the end of the command line.
func (c *CommandLine) Append(tokens ...string) *CommandLine {
	c.tokens = append(c.tokens, tokens...)
	return c
}

// AppendIf adds tokens only when cond is true.
func (c *CommandLine) AppendIf(cond bool, tokens ...string) *CommandLine {
	if cond {
		c.tokens = append(c.tokens, tokens...)
	}
	return c
}

// Program returns the executable token, or "" for an empty command line.
func (c *CommandLine) Program() string {
	if len(c.tokens) == 0 {
		return ""
	}
	return c.tokens[0]
}

// Args returns the tokens after the program.
func (c *CommandLine) Args() []string {
	if len(c.tokens) < 2 {
		return nil
	}
	return slices.Clone(c.tokens[1:])
}

// Tokens returns a copy of all tokens including the program.
func (c *CommandLine) Tokens() []string {
	return slices.Clone(c.tokens)
}

// IsEmpty reports whether the command line has no program.
func (c *CommandLine) IsEmpty() bool {
	return len(c.tokens) == 0 || c.tokens[0] == ""
}

// String renders the command line for display. Tokens containing spaces
// are wrapped in double quotes so the banner matches what a shell user would type.
func (c *CommandLine) String() string {
	parts := make([]string, len(c.tokens))
	for i, tok := range c.tokens {
		if tok == "" || strings.ContainsAny(tok, " \t") {
			parts[i] = `"` + tok + `"`
			continue
		}
		parts[i] = tok
	}
	return strings.Join(parts, " ")
}
