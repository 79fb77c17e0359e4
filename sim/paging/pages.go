// Package paging implements the memory side of the simulator: page-count
// arithmetic, page-table layout, and LRU page replacement over a fixed frame
// pool. It has no dependency on sim/ and stores only plain values.
package paging

import "fmt"

// DefaultFrameSize is the memory partition unit used when a process has no
// page size of its own.
const DefaultFrameSize = 256

// Layout is the result of a page-table calculation for one process.
type Layout struct {
	Pages   int // memory allocated / page size
	Frames  int // process size / page size
	Entries int // Pages * Frames
}

// PageCount returns ceil(size / unit).
// Returns an error if unit is not positive or size is negative.
func PageCount(size, unit int) (int, error) {
	if unit <= 0 {
		return 0, fmt.Errorf("page unit must be > 0, got %d", unit)
	}
	if size < 0 {
		return 0, fmt.Errorf("process size must be >= 0, got %d", size)
	}
	n := size / unit
	if size%unit != 0 {
		n++
	}
	return n, nil
}

// Calculate computes the page-table layout using truncating division.
func Calculate(memoryAllocated, processSize, pageSize int) (Layout, error) {
	if pageSize <= 0 {
		return Layout{}, fmt.Errorf("page size must be > 0, got %d", pageSize)
	}
	if memoryAllocated < 0 || processSize < 0 {
		return Layout{}, fmt.Errorf("memory (%d) and process size (%d) must be >= 0", memoryAllocated, processSize)
	}
	pages := memoryAllocated / pageSize
	frames := processSize / pageSize
	return Layout{Pages: pages, Frames: frames, Entries: pages * frames}, nil
}
