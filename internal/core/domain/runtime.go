package domain

import (
	"maps"
	"slices"
	"strings"
)

// RuntimeContext carries the working directory, host platform and environment
// of a single run. Variables written with Setenv are layered over the inherited
// environment and handed to every external command.
type RuntimeContext struct {
	WorkDir  string
	Platform Platform

	inherited map[string]string
	written   map[string]string
}

// NewRuntimeContext creates a context over an inherited environment in KEY=VALUE form.
func NewRuntimeContext(workDir string, platform Platform, environ []string) *RuntimeContext {
	inherited := make(map[string]string, len(environ))
	for _, entry := range environ {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			continue
		}
		inherited[k] = v
	}
	return &RuntimeContext{
		WorkDir:   workDir,
		Platform:  platform,
		inherited: inherited,
		written:   make(map[string]string),
	}
}

// Lookup returns the value of key, preferring values written during the run.
func (r *RuntimeContext) Lookup(key string) (string, bool) {
	if v, ok := r.written[key]; ok {
		return v, true
	}
	v, ok := r.inherited[key]
	return v, ok
}

// Setenv records a variable for all subsequent external commands.
func (r *RuntimeContext) Setenv(key, value string) {
	r.written[key] = value
}

// Overrides returns the variables written during the run as sorted KEY=VALUE pairs.
func (r *RuntimeContext) Overrides() []string {
	keys := slices.Sorted(maps.Keys(r.written))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+r.written[k])
	}
	return out
}
