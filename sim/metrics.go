// Tracks kernel-wide counters: lifecycle transitions, scheduler invocations
// and paging behaviour.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Metrics aggregates statistics about a kernel session for final reporting.
type Metrics struct {
	Created         int `json:"created"`
	Destroyed       int `json:"destroyed"`
	Dispatched      int `json:"dispatched"`
	Suspended       int `json:"suspended"`
	Blocked         int `json:"blocked"`
	Woken           int `json:"woken"`
	PriorityChanges int `json:"priority_changes"`
	Messages        int `json:"messages"`

	RoundRobinSlices int `json:"round_robin_slices"` // quantum reductions that left a process Ready

	PageHits   int `json:"page_hits"`
	PageFaults int `json:"page_faults"`
	Evictions  int `json:"evictions"`

	SchedulerRuns map[string]int `json:"scheduler_runs"` // policy name -> invocations that dispatched or sliced
}

// NewMetrics returns zeroed metrics.
func NewMetrics() *Metrics {
	return &Metrics{SchedulerRuns: make(map[string]int)}
}

// Print writes a human-readable summary to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Kernel Metrics ===")
	fmt.Fprintf(w, "Created Processes    : %d\n", m.Created)
	fmt.Fprintf(w, "Destroyed Processes  : %d\n", m.Destroyed)
	fmt.Fprintf(w, "Dispatches           : %d\n", m.Dispatched)
	fmt.Fprintf(w, "Suspends / Blocks    : %d / %d\n", m.Suspended, m.Blocked)
	fmt.Fprintf(w, "Wakeups              : %d\n", m.Woken)
	fmt.Fprintf(w, "Round-Robin Slices   : %d\n", m.RoundRobinSlices)
	if refs := m.PageHits + m.PageFaults; refs > 0 {
		fmt.Fprintf(w, "Page References      : %d (hits %d, faults %d, evictions %d)\n", refs, m.PageHits, m.PageFaults, m.Evictions)
		fmt.Fprintf(w, "Hit Ratio            : %.2f\n", float64(m.PageHits)/float64(refs))
	}
	names := make([]string, 0, len(m.SchedulerRuns))
	for name := range m.SchedulerRuns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "Scheduler %-10s : %d\n", name, m.SchedulerRuns[name])
	}
}

// SaveResults writes the metrics as indented JSON to path.
func (m *Metrics) SaveResults(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write metrics %q: %w", path, err)
	}
	return nil
}
