// sim/kernel.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ActionLog receives one human-readable line per kernel action.
// Implementations live in sim/trace.
type ActionLog interface {
	Record(event string)
}

type discardLog struct{}

func (discardLog) Record(string) {}

// Kernel is the queue store: it owns every process record and the three
// disjoint Ready, Running and Blocked queues. All state changes go through
// its methods; a process moves between queues only via move.
//
// Thread-safety: NOT thread-safe. A kernel must be driven from one goroutine.
type Kernel struct {
	config    KernelConfig
	processes map[int]*Process
	queues    [3]ProcessQueue // indexed by QueueID
	lastID    int
	log       ActionLog
	rng       *PartitionedRNG

	Metrics *Metrics
}

// NewKernel creates an empty kernel. A nil log discards actions.
// Panics if cfg is invalid; validate user-supplied configs first.
func NewKernel(cfg KernelConfig, log ActionLog) *Kernel {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("NewKernel: %v", err))
	}
	if log == nil {
		log = discardLog{}
	}
	return &Kernel{
		config:    cfg,
		processes: make(map[int]*Process),
		log:       log,
		rng:       NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		Metrics:   NewMetrics(),
	}
}

// Config returns the configuration the kernel was built with.
func (k *Kernel) Config() KernelConfig {
	return k.config
}

// RNG returns the kernel's partitioned random source.
func (k *Kernel) RNG() *PartitionedRNG {
	return k.rng
}

func (k *Kernel) record(format string, args ...any) {
	k.log.Record(fmt.Sprintf(format, args...))
}

// Create allocates the next process ID and inserts a Ready process.
func (k *Kernel) Create(arrivalTime, burstTime, priority int) int {
	k.lastID++
	p := &Process{
		ID:                 k.lastID,
		ArrivalTime:        arrivalTime,
		BurstTime:          burstTime,
		RemainingBurstTime: burstTime,
		Priority:           priority,
		State:              StateReady,
	}
	k.processes[p.ID] = p
	k.queues[ReadyQueue].Enqueue(p.ID)
	k.Metrics.Created++
	k.record("Created Process %d with AT=%d, BT=%d, Priority=%d", p.ID, arrivalTime, burstTime, priority)
	return p.ID
}

// CreateRandom creates n processes with AT and BT in [0, 100) and priority
// in [0, 10), drawn from the process-gen RNG subsystem.
func (k *Kernel) CreateRandom(n int) ([]int, error) {
	if n < 0 {
		return nil, invalidf("process count must be >= 0, got %d", n)
	}
	rng := k.rng.ForSubsystem(SubsystemProcessGen)
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		at := rng.Intn(100)
		bt := rng.Intn(100)
		pri := rng.Intn(10)
		ids = append(ids, k.Create(at, bt, pri))
	}
	k.record("Automatically created %d processes with random values.", n)
	return ids, nil
}

// Destroy removes a process from the Ready queue.
// Processes in Running or Blocked cannot be destroyed.
func (k *Kernel) Destroy(id int) error {
	if _, err := k.ready(id); err != nil {
		return err
	}
	k.queues[ReadyQueue].Remove(id)
	delete(k.processes, id)
	k.Metrics.Destroyed++
	k.record("Destroyed Process %d", id)
	return nil
}

// Find returns a copy of process id if it is in queue q.
func (k *Kernel) Find(q QueueID, id int) (Process, bool) {
	p := k.lookup(q, id)
	if p == nil {
		return Process{}, false
	}
	return *p, true
}

// Len returns the number of processes in queue q.
func (k *Kernel) Len(q QueueID) int {
	return k.queues[q].Len()
}

// Snapshot returns copies of the processes in queue q, in queue order.
func (k *Kernel) Snapshot(q QueueID) []Process {
	ids := k.queues[q].IDs()
	out := make([]Process, len(ids))
	for i, id := range ids {
		out[i] = *k.processes[id]
	}
	return out
}

func (k *Kernel) lookup(q QueueID, id int) *Process {
	if !k.queues[q].Contains(id) {
		return nil
	}
	return k.processes[id]
}

// ready returns the live record for id if it is in the Ready queue.
func (k *Kernel) ready(id int) (*Process, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	p := k.lookup(ReadyQueue, id)
	if p == nil {
		return nil, notFound(id, ReadyQueue)
	}
	return p, nil
}

// move relabels process id with state and transfers it from one queue to
// the back of another. It is the only way a process changes queue.
func (k *Kernel) move(from, to QueueID, id int, state ProcessState) error {
	if state.Queue() != to {
		panic(fmt.Sprintf("move: state %s does not belong in %s queue", state, to))
	}
	if err := checkID(id); err != nil {
		return err
	}
	p := k.lookup(from, id)
	if p == nil {
		return notFound(id, from)
	}
	p.State = state
	k.queues[from].Remove(id)
	k.queues[to].Enqueue(id)

	switch state {
	case StateRunning:
		k.Metrics.Dispatched++
	case StateSuspended:
		k.Metrics.Suspended++
	case StateBlocked:
		k.Metrics.Blocked++
	case StateReady:
		k.Metrics.Woken++
	}
	logrus.Debugf("process %d: %s -> %s (%s)", id, from, to, state)
	k.record("Process %d moved to %s", id, state)
	return nil
}

// Dispatch moves a Ready process to Running.
func (k *Kernel) Dispatch(id int) error {
	return k.move(ReadyQueue, RunningQueue, id, StateRunning)
}

// Suspend moves a Running process back to Ready, labelled Suspended.
func (k *Kernel) Suspend(id int) error {
	return k.move(RunningQueue, ReadyQueue, id, StateSuspended)
}

// Block moves a Running process to Blocked.
func (k *Kernel) Block(id int) error {
	return k.move(RunningQueue, BlockedQueue, id, StateBlocked)
}

// Resume dispatches the process at the front of the Ready queue.
// Returns false if Ready is empty.
func (k *Kernel) Resume() (int, bool) {
	id, ok := k.queues[ReadyQueue].Peek()
	if !ok {
		return 0, false
	}
	// front of a non-empty queue is always movable
	_ = k.Dispatch(id)
	return id, true
}

// Wakeup moves the process at the front of the Blocked queue to Ready.
// Returns false if Blocked is empty.
func (k *Kernel) Wakeup() (int, bool) {
	id, ok := k.queues[BlockedQueue].Peek()
	if !ok {
		return 0, false
	}
	_ = k.move(BlockedQueue, ReadyQueue, id, StateReady)
	return id, true
}

// SetPriority changes the priority of a Ready process.
func (k *Kernel) SetPriority(id, priority int) error {
	p, err := k.ready(id)
	if err != nil {
		return err
	}
	p.Priority = priority
	k.Metrics.PriorityChanges++
	k.record("Changed priority of Process %d to %d", id, priority)
	return nil
}

// SetPageSize sets the page size of a Ready process. The size must be positive.
func (k *Kernel) SetPageSize(id, pageSize int) error {
	p, err := k.ready(id)
	if err != nil {
		return err
	}
	if pageSize <= 0 {
		return invalidf("page size must be > 0, got %d", pageSize)
	}
	p.PageSize = pageSize
	k.record("Page size of process %d set to %d", id, pageSize)
	return nil
}

// SetMemory stores the memory attributes of a Ready process.
func (k *Kernel) SetMemory(id, memoryAllocated, processSize int) error {
	p, err := k.ready(id)
	if err != nil {
		return err
	}
	if memoryAllocated < 0 || processSize < 0 {
		return invalidf("memory (%d) and process size (%d) must be >= 0", memoryAllocated, processSize)
	}
	p.MemoryAllocated = memoryAllocated
	p.ProcessSize = processSize
	return nil
}

// Communicate records a message from one Ready process to another.
func (k *Kernel) Communicate(sender, receiver int, message string) error {
	if _, err := k.ready(sender); err != nil {
		return err
	}
	if _, err := k.ready(receiver); err != nil {
		return err
	}
	k.Metrics.Messages++
	k.record("Process %d communicated with Process %d: %s", sender, receiver, message)
	return nil
}
