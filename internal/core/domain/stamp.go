package domain

// Stamp records which generator configured a build directory.
type Stamp struct {
	Generator   string `json:"generator"`
	Fingerprint string `json:"fingerprint"`
}
