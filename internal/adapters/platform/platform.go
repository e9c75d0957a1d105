// Package platform reports the host operating system and machine type.
package platform

import (
	"runtime"

	"go.trai.ch/cascade/internal/core/domain"
)

// Detect returns the platform of the running process.
func Detect() domain.Platform {
	return domain.Platform{
		OS:      runtime.GOOS,
		Machine: machine(),
	}
}

// machineFromArch maps a GOARCH value to the name uname would report.
func machineFromArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm64":
		return domain.MachineAArch64
	case "arm":
		return "armv7l"
	default:
		return goarch
	}
}
