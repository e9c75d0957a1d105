package ports

import "go.trai.ch/cascade/internal/core/domain"

// StampStore persists the build configuration of the last successful generate step.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StampStore interface {
	// Get returns the stamp recorded in buildPath.
	// Returns nil, nil if none exists.
	Get(buildPath string) (*domain.Stamp, error)

	// Put records the stamp in buildPath.
	Put(buildPath string, stamp domain.Stamp) error
}
