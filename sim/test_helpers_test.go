package sim

import (
	"testing"

	"github.com/eagle-os/eagle-sim/sim/trace"
)

// newTestKernel returns a kernel with the default config and an in-memory log.
func newTestKernel(t *testing.T) (*Kernel, *trace.Recorder) {
	t.Helper()
	rec := trace.NewRecorder()
	return NewKernel(DefaultKernelConfig(), rec), rec
}

func processIDs(procs []Process) []int {
	ids := make([]int, len(procs))
	for i, p := range procs {
		ids[i] = p.ID
	}
	return ids
}

// assertPartition checks that every live process is in exactly one queue
// and that its state label matches that queue.
func assertPartition(t *testing.T, k *Kernel) {
	t.Helper()
	seen := make(map[int]QueueID)
	for _, q := range []QueueID{ReadyQueue, RunningQueue, BlockedQueue} {
		for _, p := range k.Snapshot(q) {
			if prev, dup := seen[p.ID]; dup {
				t.Fatalf("process %d in both %s and %s", p.ID, prev, q)
			}
			seen[p.ID] = q
			if p.State.Queue() != q {
				t.Errorf("process %d in %s queue has state %s", p.ID, q, p.State)
			}
		}
	}
	if len(seen) != len(k.processes) {
		t.Errorf("queues hold %d processes, table holds %d", len(seen), len(k.processes))
	}
}
