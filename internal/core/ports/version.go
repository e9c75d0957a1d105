package ports

import "go.trai.ch/cascade/internal/core/domain"

// VersionResolver derives the build version from properties files.
//
//go:generate mockgen -source=version.go -destination=mocks/mock_version.go -package=mocks
type VersionResolver interface {
	// Resolve reads the first existing candidate and returns its version.
	Resolve(candidates []string) (domain.Version, error)
}
