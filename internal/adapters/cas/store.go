// Package cas fingerprints and stores the build configuration of a build directory.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.StampStore with one JSON file per build directory.
type Store struct{}

var _ ports.StampStore = (*Store)(nil)

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the stamp recorded in buildPath.
func (s *Store) Get(buildPath string) (*domain.Stamp, error) {
	filename := domain.StampPath(buildPath)
	//nolint:gosec // Path is derived from the build directory
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStampReadFailed, err.Error()), "path", filename)
	}

	var stamp domain.Stamp
	if err := json.Unmarshal(data, &stamp); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStampUnmarshalFailed, err.Error()), "path", filename)
	}

	return &stamp, nil
}

// Put records the stamp in buildPath.
func (s *Store) Put(buildPath string, stamp domain.Stamp) error {
	data, err := json.MarshalIndent(stamp, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStampWriteFailed, err.Error())
	}

	filename := domain.StampPath(buildPath)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStampWriteFailed, err.Error()), "path", filename)
	}

	//nolint:gosec // Path is derived from the build directory
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStampWriteFailed, err.Error()), "path", filename)
	}

	return nil
}

// Hasher implements ports.Hasher using XXHash.
type Hasher struct{}

var _ ports.Hasher = (*Hasher)(nil)

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint computes the XXHash of a sequence of configuration tokens.
// Tokens are separated so ["ab", "c"] and ["a", "bc"] differ.
func (h *Hasher) Fingerprint(tokens ...string) string {
	hasher := xxhash.New()
	for _, tok := range tokens {
		_, _ = hasher.WriteString(tok)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
