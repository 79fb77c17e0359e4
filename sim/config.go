package sim

import (
	"fmt"

	"github.com/eagle-os/eagle-sim/sim/paging"
)

const (
	// DefaultTimeQuantum is the CPU slice granted per Round-Robin pass.
	DefaultTimeQuantum = 10
	// DefaultMLQThreshold: processes at or above this priority go to the high sub-queue.
	DefaultMLQThreshold = 5
	// DefaultSeed seeds random process creation.
	DefaultSeed = 42
)

// KernelConfig groups the tunables of a simulated kernel.
type KernelConfig struct {
	TimeQuantum  int   // Round-Robin slice (must be > 0)
	FrameSize    int   // page unit used when a process has no page size (must be > 0)
	MLQThreshold int   // Multilevel-Queue high/low split
	Seed         int64 // master seed for random process creation
}

// DefaultKernelConfig returns the configuration of the classic simulator.
func DefaultKernelConfig() KernelConfig {
	return KernelConfig{
		TimeQuantum:  DefaultTimeQuantum,
		FrameSize:    paging.DefaultFrameSize,
		MLQThreshold: DefaultMLQThreshold,
		Seed:         DefaultSeed,
	}
}

// Validate reports the first invalid field.
func (c KernelConfig) Validate() error {
	if c.TimeQuantum <= 0 {
		return fmt.Errorf("time quantum must be > 0, got %d", c.TimeQuantum)
	}
	if c.FrameSize <= 0 {
		return fmt.Errorf("frame size must be > 0, got %d", c.FrameSize)
	}
	return nil
}
