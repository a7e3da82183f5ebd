//go:build !linux

package stealpool

// pinToCPU is a no-op on platforms without a portable CPU-affinity
// syscall. CPUAffinity is still accepted in Config but has no effect.
func pinToCPU(cpu int) error {
	return nil
}
