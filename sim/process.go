// Defines the Process record shared by the queue store, the schedulers and
// the paging operations. Tracks scheduling attributes, memory attributes and
// the lifecycle state label.

package sim

import "fmt"

// ProcessState is the lifecycle label of a process.
// It always agrees with the queue that holds the process.
type ProcessState string

const (
	StateReady     ProcessState = "Ready"
	StateRunning   ProcessState = "Running"
	StateBlocked   ProcessState = "Blocked"
	StateSuspended ProcessState = "Suspended" // held in the Ready queue
)

// Queue reports which queue a process in this state lives in.
func (s ProcessState) Queue() QueueID {
	switch s {
	case StateRunning:
		return RunningQueue
	case StateBlocked:
		return BlockedQueue
	default:
		return ReadyQueue
	}
}

// Process models a single simulated process.
type Process struct {
	ID int // Unique, assigned from 1, never reused

	ArrivalTime        int // Arrival time in time units
	BurstTime          int // Total CPU time required; fixed at creation
	RemainingBurstTime int // CPU time not yet consumed by Round-Robin slices
	Priority           int // Higher = more urgent

	PageSize        int // 0 until set
	MemoryAllocated int // 0 until set
	ProcessSize     int // 0 until set

	State ProcessState
}

func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, State: %s, AT: %d, BT: %d, RemainingBT: %d, Priority: %d)",
		p.ID, p.State, p.ArrivalTime, p.BurstTime, p.RemainingBurstTime, p.Priority)
}
