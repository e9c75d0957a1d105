package domain

// Platform identifiers compared against Platform fields.
const (
	OSWindows      = "windows"
	MachineAArch64 = "aarch64"
)

// Platform describes the host the orchestrator runs on.
type Platform struct {
	// OS is the GOOS-style operating system name.
	OS string
	// Machine is the hardware name as reported by uname (e.g. x86_64, aarch64).
	Machine string
}

// IsWindows reports whether the host uses the Windows toolchain conventions.
func (p Platform) IsWindows() bool {
	return p.OS == OSWindows
}

// IsAArch64 reports whether the host machine is aarch64.
// Architecture settings are omitted on such hosts.
func (p Platform) IsAArch64() bool {
	return p.Machine == MachineAArch64
}
