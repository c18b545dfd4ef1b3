// Package api
// Author: momentics@gmail.com
//
// CPU affinity and thread pinning definitions.

package api

// Pinner binds the calling goroutine's OS thread to a logical CPU.
type Pinner interface {
	// Pin locks the current goroutine to its OS thread and binds that
	// thread to the given logical CPU.
	Pin(cpuID int) error
	// Unpin removes affinity and unlocks the goroutine from its thread.
	Unpin() error
}
