package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Scheduler picks work from the Ready queue and dispatches it to Running.
// Schedule returns the IDs it dispatched, in dispatch order. An empty Ready
// queue is a silent no-op: nothing is dispatched, logged or counted.
type Scheduler interface {
	Name() string
	Schedule(k *Kernel) []int
}

// Selector chooses one process out of a non-empty candidate list.
// Implementations MUST NOT modify the candidates.
type Selector interface {
	Select(candidates []*Process) *Process
}

// FCFSScheduler dispatches the earliest arrival, then the smaller ID.
type FCFSScheduler struct{}

func (s *FCFSScheduler) Name() string { return "fcfs" }

func (s *FCFSScheduler) Select(cands []*Process) *Process {
	best := cands[0]
	for _, p := range cands[1:] {
		if p.ArrivalTime < best.ArrivalTime || (p.ArrivalTime == best.ArrivalTime && p.ID < best.ID) {
			best = p
		}
	}
	return best
}

func (s *FCFSScheduler) Schedule(k *Kernel) []int {
	return dispatchOne(k, s.Name(), s)
}

// PriorityScheduler dispatches the highest priority (larger value = more
// urgent), then the earlier arrival. Remaining ties go to queue order.
type PriorityScheduler struct{}

func (s *PriorityScheduler) Name() string { return "priority" }

func (s *PriorityScheduler) Select(cands []*Process) *Process {
	best := cands[0]
	for _, p := range cands[1:] {
		if p.Priority > best.Priority || (p.Priority == best.Priority && p.ArrivalTime < best.ArrivalTime) {
			best = p
		}
	}
	return best
}

func (s *PriorityScheduler) Schedule(k *Kernel) []int {
	return dispatchOne(k, s.Name(), s)
}

// SJFScheduler dispatches the shortest original burst, then the earlier arrival.
// Warning: SJF can starve long processes when short ones keep arriving.
type SJFScheduler struct{}

func (s *SJFScheduler) Name() string { return "sjf" }

func (s *SJFScheduler) Select(cands []*Process) *Process {
	best := cands[0]
	for _, p := range cands[1:] {
		if p.BurstTime < best.BurstTime || (p.BurstTime == best.BurstTime && p.ArrivalTime < best.ArrivalTime) {
			best = p
		}
	}
	return best
}

func (s *SJFScheduler) Schedule(k *Kernel) []int {
	return dispatchOne(k, s.Name(), s)
}

// RoundRobinScheduler runs one full quantum round over Ready. Every process
// present when the round starts is visited exactly once, in queue order: a
// remaining burst above the kernel's time quantum is reduced by the quantum
// and the process stays Ready; anything else is dispatched.
type RoundRobinScheduler struct{}

func (s *RoundRobinScheduler) Name() string { return "rr" }

func (s *RoundRobinScheduler) Schedule(k *Kernel) []int {
	cands := k.readyProcesses()
	if len(cands) == 0 {
		return nil
	}
	k.Metrics.SchedulerRuns[s.Name()]++
	return roundRobin(k, cands)
}

// roundRobin walks cands, a copy of the ready order, so dispatches that
// shrink the Ready queue never disturb the traversal.
func roundRobin(k *Kernel, cands []*Process) []int {
	quantum := k.config.TimeQuantum
	var dispatched []int
	for _, p := range cands {
		if p.RemainingBurstTime > quantum {
			p.RemainingBurstTime -= quantum
			k.Metrics.RoundRobinSlices++
			logrus.Debugf("rr: process %d sliced, remaining %d", p.ID, p.RemainingBurstTime)
			continue
		}
		if err := k.Dispatch(p.ID); err != nil {
			panic(fmt.Sprintf("roundRobin: candidate %d left Ready mid-round: %v", p.ID, err))
		}
		dispatched = append(dispatched, p.ID)
	}
	return dispatched
}

// MultilevelQueueScheduler splits Ready into a high sub-queue (priority at
// or above the kernel's threshold) and a low one, runs Priority scheduling
// on the high sub-queue and a Round-Robin round on the low one. Ready is
// left as the high remainder followed by the low remainder.
type MultilevelQueueScheduler struct{}

func (s *MultilevelQueueScheduler) Name() string { return "mlq" }

func (s *MultilevelQueueScheduler) Schedule(k *Kernel) []int {
	cands := k.readyProcesses()
	if len(cands) == 0 {
		return nil
	}
	k.Metrics.SchedulerRuns[s.Name()]++

	var high, low []*Process
	for _, p := range cands {
		if p.Priority >= k.config.MLQThreshold {
			high = append(high, p)
		} else {
			low = append(low, p)
		}
	}
	order := make([]int, 0, len(cands))
	for _, p := range high {
		order = append(order, p.ID)
	}
	for _, p := range low {
		order = append(order, p.ID)
	}
	k.queues[ReadyQueue].Replace(order)

	var dispatched []int
	if len(high) > 0 {
		p := (&PriorityScheduler{}).Select(high)
		_ = k.Dispatch(p.ID)
		dispatched = append(dispatched, p.ID)
	}
	if len(low) > 0 {
		dispatched = append(dispatched, roundRobin(k, low)...)
	}
	return dispatched
}

// dispatchOne dispatches the single process sel picks from Ready.
func dispatchOne(k *Kernel, name string, sel Selector) []int {
	cands := k.readyProcesses()
	if len(cands) == 0 {
		return nil
	}
	p := sel.Select(cands)
	k.Metrics.SchedulerRuns[name]++
	logrus.Debugf("%s: selected process %d", name, p.ID)
	if err := k.Dispatch(p.ID); err != nil {
		panic(fmt.Sprintf("%s: selected process %d not in Ready: %v", name, p.ID, err))
	}
	return []int{p.ID}
}

// readyProcesses returns the live Ready records in queue order.
func (k *Kernel) readyProcesses() []*Process {
	ids := k.queues[ReadyQueue].IDs()
	out := make([]*Process, len(ids))
	for i, id := range ids {
		out[i] = k.processes[id]
	}
	return out
}

// validSchedulers maps accepted scheduler names.
var validSchedulers = map[string]bool{
	"fcfs":     true,
	"priority": true,
	"sjf":      true,
	"rr":       true,
	"mlq":      true,
}

// IsValidScheduler returns true if name is a recognized scheduler.
func IsValidScheduler(name string) bool {
	return validSchedulers[name]
}

// SchedulerNames returns the recognized scheduler names, sorted.
func SchedulerNames() []string {
	names := make([]string, 0, len(validSchedulers))
	for name := range validSchedulers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScheduler creates a Scheduler by name.
// Valid names: "fcfs", "priority", "sjf", "rr", "mlq".
// Panics on unrecognized names.
func NewScheduler(name string) Scheduler {
	if !IsValidScheduler(name) {
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
	switch name {
	case "fcfs":
		return &FCFSScheduler{}
	case "priority":
		return &PriorityScheduler{}
	case "sjf":
		return &SJFScheduler{}
	case "rr":
		return &RoundRobinScheduler{}
	case "mlq":
		return &MultilevelQueueScheduler{}
	default:
		panic(fmt.Sprintf("unhandled scheduler %q", name))
	}
}
