package ports

// Hasher computes stable fingerprints of build configuration.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a hex digest of the ordered tokens.
	Fingerprint(tokens ...string) string
}
