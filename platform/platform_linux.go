// File: platform/platform_linux.go
//go:build linux
// +build linux

// Author: coreactor contributors
// License: Apache-2.0
//
// Pure-Go Linux affinity and naming, via golang.org/x/sys/unix direct
// syscalls - the same style LeGamerDc-gio's poller/epoll_linux.go uses
// for epoll, applied here to sched_setaffinity/prctl/getcpu instead of
// the cgo-plus-libnuma route of internal/concurrency/affinity_linux.go.

package platform

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

func platformCurrentCore() (uint32, error) {
	var cpu, node uint32
	_, _, errno := unix.Syscall(unix.SYS_GETCPU,
		uintptr(unsafe.Pointer(&cpu)), uintptr(unsafe.Pointer(&node)), 0)
	if errno != 0 {
		return 0, fmt.Errorf("platform: getcpu: %w", errno)
	}
	return cpu, nil
}

func platformPin(core uint32) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(int(core))
	return unix.SchedSetaffinity(0, &set)
}

func platformUnpin() error {
	var set unix.CPUSet
	set.Zero()
	for i := 0; i < runtime.NumCPU(); i++ {
		set.Set(i)
	}
	return unix.SchedSetaffinity(0, &set)
}

func platformSetThreadName(name string) error {
	const maxLen = 15 // TASK_COMM_LEN - 1
	b := []byte(name)
	if len(b) > maxLen {
		b = b[:maxLen]
	}
	b = append(b, 0)
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&b[0])), 0, 0, 0)
}
