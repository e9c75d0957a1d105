//go:build windows

package platform

import "runtime"

// machine returns the processor architecture in the spelling Windows uses.
func machine() string {
	switch runtime.GOARCH {
	case "amd64":
		return "AMD64"
	case "386":
		return "x86"
	case "arm64":
		return "ARM64"
	default:
		return machineFromArch(runtime.GOARCH)
	}
}
