//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows implementation of thread CPU affinity via SetThreadAffinityMask.

package affinity

import (
	"syscall"
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procSetThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread      = kernel32.NewProc("GetCurrentThread")
)

// setAffinityPlatform binds the current thread to a single CPU.
func setAffinityPlatform(cpuID int) error {
	hThread, _, _ := procGetCurrentThread.Call()
	mask := uintptr(1) << cpuID
	ret, _, err := procSetThreadAffinityMask.Call(hThread, mask)
	if ret == 0 {
		return err
	}
	return nil
}

// clearAffinityPlatform restores the full affinity mask.
func clearAffinityPlatform() error {
	hThread, _, _ := procGetCurrentThread.Call()
	ret, _, err := procSetThreadAffinityMask.Call(hThread, ^uintptr(0))
	if ret == 0 {
		return err
	}
	return nil
}
