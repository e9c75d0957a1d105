//go:build !windows

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// machine returns the hardware name from uname(2). Darwin reports arm64
// where Linux reports aarch64; both keep the kernel's spelling.
func machine() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return machineFromArch(runtime.GOARCH)
	}
	if m := unix.ByteSliceToString(uts.Machine[:]); m != "" {
		return m
	}
	return machineFromArch(runtime.GOARCH)
}
