// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// are located in separate files (affinity_linux.go, affinity_windows.go,
// etc.) guarded by build tags.
//
// Busy-spinning SPSC queues only deliver their latency profile when
// producer and consumer each own a dedicated core; pinning is the
// caller's job and this package is the helper for it.

package affinity

import (
	"errors"
	"runtime"

	"github.com/momentics/hioload-spsc/api"
)

// ErrNotSupported indicates CPU affinity is not supported on this platform.
var ErrNotSupported = errors.New("affinity: not supported on this platform")

// Ensure compile-time interface compliance.
var _ api.Pinner = ThreadPinner{}

// Pin locks the calling goroutine to its OS thread and binds that thread
// to the given logical CPU. A negative cpuID is a no-op, so callers can
// thread an "unpinned" configuration value straight through.
func Pin(cpuID int) error {
	if cpuID < 0 {
		return nil
	}
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin clears the thread's affinity mask and releases the goroutine
// from its OS thread.
func Unpin() error {
	err := clearAffinityPlatform()
	runtime.UnlockOSThread()
	return err
}

// ThreadPinner adapts the package functions to api.Pinner.
type ThreadPinner struct{}

func (ThreadPinner) Pin(cpuID int) error { return Pin(cpuID) }
func (ThreadPinner) Unpin() error        { return Unpin() }
