//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux implementation of thread CPU affinity via sched_setaffinity,
// pure Go through golang.org/x/sys/unix.

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// cpuSetSize mirrors the kernel's CPU_SETSIZE; golang.org/x/sys/unix
// keeps the constant unexported.
const cpuSetSize = 1024

// setAffinityPlatform binds the current thread to a single CPU.
func setAffinityPlatform(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	// pid 0 targets the calling thread.
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(cpu %d): %w", cpuID, err)
	}
	return nil
}

// clearAffinityPlatform restores the full CPU mask for the current thread.
func clearAffinityPlatform() error {
	var set unix.CPUSet
	set.Zero()
	for i := 0; i < cpuSetSize; i++ {
		set.Set(i)
	}
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(all): %w", err)
	}
	return nil
}
