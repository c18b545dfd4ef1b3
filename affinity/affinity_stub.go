//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for unsupported platforms.
// Returns error to indicate unavailability.

package affinity

// setAffinityPlatform is a stub for platforms where CPU affinity is not supported.
func setAffinityPlatform(cpuID int) error {
	return ErrNotSupported
}

// clearAffinityPlatform is a stub for platforms where CPU affinity is not supported.
func clearAffinityPlatform() error {
	return ErrNotSupported
}
