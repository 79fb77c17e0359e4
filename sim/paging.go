package sim

import (
	"github.com/eagle-os/eagle-sim/sim/paging"
)

// PageCount returns how many pages a Ready process needs: its process size
// divided by its page size, rounded up. A process with no page size set is
// measured in frames of the kernel's frame size.
//
// The classic Eagle OS menu always divided by the frame size. Here a
// page size set earlier (SetPageSize, or a scenario page-size step) takes
// precedence, so the same paging step reports different counts depending on
// whether that step ran first.
func (k *Kernel) PageCount(id int) (int, error) {
	p, err := k.ready(id)
	if err != nil {
		return 0, err
	}
	unit := p.PageSize
	if unit <= 0 {
		unit = k.config.FrameSize
	}
	n, err := paging.PageCount(p.ProcessSize, unit)
	if err != nil {
		return 0, invalidf("process %d: %v", id, err)
	}
	k.record("Performed paging for Process %d: %d pages required.", id, n)
	return n, nil
}

// CalculatePages stores the memory attributes of a Ready process and
// returns its page-table layout. The process's page size must already be
// set; on any error nothing is stored.
func (k *Kernel) CalculatePages(id, memoryAllocated, processSize int) (paging.Layout, error) {
	p, err := k.ready(id)
	if err != nil {
		return paging.Layout{}, err
	}
	layout, err := paging.Calculate(memoryAllocated, processSize, p.PageSize)
	if err != nil {
		return paging.Layout{}, invalidf("process %d: %v", id, err)
	}
	p.MemoryAllocated = memoryAllocated
	p.ProcessSize = processSize
	k.record("Calculated pages for process %d", id)
	return layout, nil
}

// SimulateLRU runs an LRU replacement simulation over references with
// frameCount frames, recording every page placed into a frame.
func (k *Kernel) SimulateLRU(frameCount int, references []int) (paging.LRUResult, error) {
	res, err := paging.SimulateLRU(frameCount, references)
	if err != nil {
		return paging.LRUResult{}, invalidf("%v", err)
	}
	for _, acc := range res.Trace {
		if acc.Loaded() {
			k.record("Page %d added to frames.", acc.Page)
		}
	}
	k.Metrics.PageHits += res.Hits
	k.Metrics.PageFaults += res.Faults
	k.Metrics.Evictions += res.Evictions
	return res, nil
}
