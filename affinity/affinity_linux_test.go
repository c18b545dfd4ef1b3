//go:build linux
// +build linux

// File: affinity/affinity_linux_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity

import "testing"

// TestClearAffinity_FullMask verifies that restoring the full CPU mask
// succeeds; the kernel intersects the oversized set with the CPUs that
// actually exist.
func TestClearAffinity_FullMask(t *testing.T) {
	if err := clearAffinityPlatform(); err != nil {
		t.Errorf("clearAffinityPlatform: %v", err)
	}
}

// TestSetAffinity_OutOfRangeCPU verifies that a CPU id beyond the set
// size yields an error instead of silently pinning to nothing.
func TestSetAffinity_OutOfRangeCPU(t *testing.T) {
	if err := setAffinityPlatform(1 << 20); err == nil {
		t.Error("expected error for out-of-range CPU id")
	}
}
