//go:build linux

package stealpool

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCPU locks the calling goroutine to its current OS thread and
// restricts that thread to the given logical CPU. Must be called from
// the goroutine that is to be pinned (a worker's own loop, before it
// starts fetching tasks).
func pinToCPU(cpu int) error {
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	return unix.SchedSetaffinity(0, &set)
}
