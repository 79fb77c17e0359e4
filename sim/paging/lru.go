package paging

import (
	"fmt"
	"strings"
)

// Access records what happened to a single page reference.
type Access struct {
	Step     int  // 1-based position in the reference string, also the LRU timestamp
	Page     int  // referenced page number
	Hit      bool // page was already resident
	Slot     int  // frame slot that holds the page afterwards; -1 when it could not be placed
	Replaced bool // a resident page was evicted to make room
	Evicted  int  // page that was evicted; meaningful only when Replaced
}

// Loaded reports whether this access placed the page into a frame.
func (a Access) Loaded() bool {
	return !a.Hit && a.Slot >= 0
}

// LRUResult is the outcome of a replacement simulation.
type LRUResult struct {
	Frames    []int    // final resident pages in slot order
	Trace     []Access // one entry per reference
	Hits      int
	Faults    int
	Evictions int
}

func (r LRUResult) String() string {
	parts := make([]string, len(r.Frames))
	for i, p := range r.Frames {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, " ")
}

// frame is one occupied slot: the resident page and the step it was last used.
type frame struct {
	page     int
	lastUsed int
}

// LRU simulates least-recently-used replacement over a fixed number of frame
// slots. Slots fill in order; once full, the slot with the smallest last-used
// timestamp is replaced, the lowest slot index winning ties.
type LRU struct {
	capacity int
	frames   []frame
	clock    int
}

// NewLRU creates an empty replacer with the given number of frames.
// Slots are allocated as pages arrive, so capacity may exceed memory.
// Panics if capacity is negative.
func NewLRU(capacity int) *LRU {
	if capacity < 0 {
		panic(fmt.Sprintf("NewLRU: capacity must be >= 0, got %d", capacity))
	}
	return &LRU{capacity: capacity}
}

// Reference processes one page reference and reports what happened.
func (l *LRU) Reference(page int) Access {
	l.clock++
	acc := Access{Step: l.clock, Page: page, Slot: -1}

	for i := range l.frames {
		if l.frames[i].page == page {
			l.frames[i].lastUsed = l.clock
			acc.Hit = true
			acc.Slot = i
			return acc
		}
	}

	if len(l.frames) < l.capacity {
		l.frames = append(l.frames, frame{page: page, lastUsed: l.clock})
		acc.Slot = len(l.frames) - 1
		return acc
	}
	// zero frames: nothing to place, nothing to evict
	if l.capacity == 0 {
		return acc
	}

	victim := 0
	for i := 1; i < len(l.frames); i++ {
		if l.frames[i].lastUsed < l.frames[victim].lastUsed {
			victim = i
		}
	}
	acc.Replaced = true
	acc.Evicted = l.frames[victim].page
	acc.Slot = victim
	l.frames[victim] = frame{page: page, lastUsed: l.clock}
	return acc
}

// Resident returns the resident pages in slot order.
func (l *LRU) Resident() []int {
	pages := make([]int, len(l.frames))
	for i, f := range l.frames {
		pages[i] = f.page
	}
	return pages
}

// SimulateLRU runs a full reference string through a fresh LRU with
// frameCount slots.
func SimulateLRU(frameCount int, references []int) (LRUResult, error) {
	if frameCount < 0 {
		return LRUResult{}, fmt.Errorf("frame count must be >= 0, got %d", frameCount)
	}
	lru := NewLRU(frameCount)
	res := LRUResult{Trace: make([]Access, 0, len(references))}
	for _, page := range references {
		acc := lru.Reference(page)
		res.Trace = append(res.Trace, acc)
		if acc.Hit {
			res.Hits++
			continue
		}
		res.Faults++
		if acc.Replaced {
			res.Evictions++
		}
	}
	res.Frames = lru.Resident()
	return res, nil
}
