package sim

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// RenderQueues writes the Ready, Running and Blocked queues as tables.
func (k *Kernel) RenderQueues(w io.Writer) {
	for _, q := range []QueueID{ReadyQueue, RunningQueue, BlockedQueue} {
		fmt.Fprintf(w, "%s Queue:\n", q)
		renderProcesses(w, k.Snapshot(q))
	}
}

func renderProcesses(w io.Writer, procs []Process) {
	if len(procs) == 0 {
		fmt.Fprintln(w, "Queue is empty.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Process ID\tArrival Time\tBurst Time\tRemaining BT\tPriority\tState")
	for _, p := range procs {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\n", p.ID, p.ArrivalTime, p.BurstTime, p.RemainingBurstTime, p.Priority, p.State)
	}
	tw.Flush()
}
