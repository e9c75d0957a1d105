// Package properties reads the project version from key=value property files.
package properties

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.VersionResolver over files on disk.
type Resolver struct{}

var _ ports.VersionResolver = (*Resolver)(nil)

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve reads the first candidate that exists. Later candidates are not
// consulted once one is found, even if it turns out to be incomplete.
func (r *Resolver) Resolve(candidates []string) (domain.Version, error) {
	for _, path := range candidates {
		f, err := os.Open(path) //nolint:gosec // candidates come from the project configuration
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return domain.Version{}, zerr.With(zerr.Wrap(domain.ErrVersionFileReadFailed, err.Error()), "path", path)
		}

		props, err := Parse(f)
		_ = f.Close()
		if err != nil {
			return domain.Version{}, zerr.With(err, "path", path)
		}

		v, err := domain.VersionFromProperties(props)
		if err != nil {
			return domain.Version{}, zerr.With(err, "path", path)
		}
		return v, nil
	}

	return domain.Version{}, zerr.With(
		zerr.Wrap(domain.ErrVersionFileNotFound, "resolving version"),
		"candidates", strings.Join(candidates, ", "),
	)
}

// Parse reads one KEY=VALUE assignment per line. Surrounding whitespace is
// stripped from the line but not from either side of the '='. Blank lines
// are skipped; any other line must contain exactly one '='.
func Parse(r io.Reader) (map[string]string, error) {
	props := make(map[string]string)
	scanner := bufio.NewScanner(r)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.Count(line, "=") != 1 {
			return nil, zerr.With(zerr.Wrap(domain.ErrPropertiesMalformed, "parsing properties"), "line", lineNo)
		}
		key, value, _ := strings.Cut(line, "=")
		props[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(domain.ErrVersionFileReadFailed, err.Error())
	}
	return props, nil
}
