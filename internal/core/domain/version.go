package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Property keys that make up a version.
const (
	MajorVersionKey = "MAJOR_VERSION"
	MinorVersionKey = "MINOR_VERSION"
	PatchVersionKey = "PATCH_VERSION"
)

// versionBuildNumber is the fixed fourth component of every version string.
const versionBuildNumber = "0"

// Version identifies a build as U.MAJOR.MINOR.PATCH.0.
type Version struct {
	Major string
	Minor string
	Patch string
}

// VersionFromProperties extracts the required keys from parsed properties.
func VersionFromProperties(props map[string]string) (Version, error) {
	var v Version
	for _, field := range []struct {
		key string
		dst *string
	}{
		{MajorVersionKey, &v.Major},
		{MinorVersionKey, &v.Minor},
		{PatchVersionKey, &v.Patch},
	} {
		value, ok := props[field.key]
		if !ok {
			return Version{}, zerr.With(zerr.Wrap(ErrVersionKeyMissing, "incomplete version properties"), "key", field.key)
		}
		*field.dst = value
	}
	return v, nil
}

// String renders the version in its four-part dotted form.
func (v Version) String() string {
	return fmt.Sprintf("U.%s.%s.%s.%s", v.Major, v.Minor, v.Patch, versionBuildNumber)
}
