package sim

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Command is one operator action against the kernel, the unit a scenario
// or menu is made of. Execute applies the action and writes its
// human-readable outcome to out.
type Command interface {
	Name() string
	Execute(k *Kernel, out io.Writer) error
}

// CreateCommand creates one process.
type CreateCommand struct {
	ArrivalTime int
	BurstTime   int
	Priority    int
}

func (c *CreateCommand) Name() string { return "create" }

func (c *CreateCommand) Execute(k *Kernel, out io.Writer) error {
	id := k.Create(c.ArrivalTime, c.BurstTime, c.Priority)
	fmt.Fprintf(out, "Created process %d.\n", id)
	return nil
}

// CreateRandomCommand creates Count processes with random attributes.
type CreateRandomCommand struct {
	Count int
}

func (c *CreateRandomCommand) Name() string { return "create-random" }

func (c *CreateRandomCommand) Execute(k *Kernel, out io.Writer) error {
	ids, err := k.CreateRandom(c.Count)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Created %d processes: %v\n", len(ids), ids)
	return nil
}

// DestroyCommand destroys a Ready process.
type DestroyCommand struct {
	PID int
}

func (c *DestroyCommand) Name() string { return "destroy" }

func (c *DestroyCommand) Execute(k *Kernel, out io.Writer) error {
	if err := k.Destroy(c.PID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Destroyed process %d.\n", c.PID)
	return nil
}

// MoveCommand performs one of the explicit state transitions on PID:
// "dispatch", "suspend" or "block".
type MoveCommand struct {
	Op  string
	PID int
}

func (c *MoveCommand) Name() string { return c.Op }

func (c *MoveCommand) Execute(k *Kernel, out io.Writer) error {
	var err error
	switch c.Op {
	case "dispatch":
		err = k.Dispatch(c.PID)
	case "suspend":
		err = k.Suspend(c.PID)
	case "block":
		err = k.Block(c.PID)
	default:
		panic(fmt.Sprintf("MoveCommand: unknown op %q", c.Op))
	}
	if err != nil {
		return err
	}
	p, _ := k.Find(stateQueueAfter(c.Op), c.PID)
	fmt.Fprintf(out, "Process %d is now %s.\n", c.PID, p.State)
	return nil
}

func stateQueueAfter(op string) QueueID {
	switch op {
	case "dispatch":
		return RunningQueue
	case "block":
		return BlockedQueue
	default:
		return ReadyQueue
	}
}

// ResumeCommand dispatches the front of the Ready queue.
type ResumeCommand struct{}

func (c *ResumeCommand) Name() string { return "resume" }

func (c *ResumeCommand) Execute(k *Kernel, out io.Writer) error {
	if id, ok := k.Resume(); ok {
		fmt.Fprintf(out, "Resumed process %d.\n", id)
		return nil
	}
	fmt.Fprintln(out, "Ready queue is empty.")
	return nil
}

// WakeupCommand moves the front of the Blocked queue to Ready.
type WakeupCommand struct{}

func (c *WakeupCommand) Name() string { return "wakeup" }

func (c *WakeupCommand) Execute(k *Kernel, out io.Writer) error {
	if id, ok := k.Wakeup(); ok {
		fmt.Fprintf(out, "Woke up process %d.\n", id)
		return nil
	}
	fmt.Fprintln(out, "Blocked queue is empty.")
	return nil
}

// PriorityCommand changes the priority of a Ready process.
type PriorityCommand struct {
	PID      int
	Priority int
}

func (c *PriorityCommand) Name() string { return "priority" }

func (c *PriorityCommand) Execute(k *Kernel, out io.Writer) error {
	if err := k.SetPriority(c.PID, c.Priority); err != nil {
		return err
	}
	fmt.Fprintf(out, "Priority of process %d has been changed to %d\n", c.PID, c.Priority)
	return nil
}

// CommunicateCommand sends a message between two Ready processes.
type CommunicateCommand struct {
	Sender   int
	Receiver int
	Message  string
}

func (c *CommunicateCommand) Name() string { return "communicate" }

func (c *CommunicateCommand) Execute(k *Kernel, out io.Writer) error {
	if err := k.Communicate(c.Sender, c.Receiver, c.Message); err != nil {
		return err
	}
	fmt.Fprintf(out, "Process %d sent a message to Process %d: %s\n", c.Sender, c.Receiver, c.Message)
	return nil
}

// ScheduleCommand runs one scheduling policy.
type ScheduleCommand struct {
	Scheduler Scheduler
}

func (c *ScheduleCommand) Name() string { return "schedule" }

func (c *ScheduleCommand) Execute(k *Kernel, out io.Writer) error {
	ids := c.Scheduler.Schedule(k)
	if len(ids) == 0 {
		fmt.Fprintf(out, "%s: nothing dispatched.\n", c.Scheduler.Name())
		return nil
	}
	fmt.Fprintf(out, "%s: dispatched %v\n", c.Scheduler.Name(), ids)
	return nil
}

// PageSizeCommand sets the page size of a Ready process.
type PageSizeCommand struct {
	PID      int
	PageSize int
}

func (c *PageSizeCommand) Name() string { return "page-size" }

func (c *PageSizeCommand) Execute(k *Kernel, out io.Writer) error {
	if err := k.SetPageSize(c.PID, c.PageSize); err != nil {
		return err
	}
	fmt.Fprintf(out, "Page size of process %d has been set to %d\n", c.PID, c.PageSize)
	return nil
}

// CalculatePagesCommand computes the page-table layout of a Ready process.
type CalculatePagesCommand struct {
	PID             int
	MemoryAllocated int
	ProcessSize     int
}

func (c *CalculatePagesCommand) Name() string { return "calculate-pages" }

func (c *CalculatePagesCommand) Execute(k *Kernel, out io.Writer) error {
	layout, err := k.CalculatePages(c.PID, c.MemoryAllocated, c.ProcessSize)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Memory needed for process %d is %d\n", c.PID, c.MemoryAllocated)
	fmt.Fprintf(out, "Number of pages in the process: %d\n", layout.Pages)
	fmt.Fprintf(out, "Number of frames in memory for process %d : %d\n", c.PID, layout.Frames)
	fmt.Fprintf(out, "Number of entries: %d\n", layout.Entries)
	return nil
}

// PagingCommand reports how many pages a Ready process requires.
type PagingCommand struct {
	PID int
}

func (c *PagingCommand) Name() string { return "paging" }

func (c *PagingCommand) Execute(k *Kernel, out io.Writer) error {
	n, err := k.PageCount(c.PID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Process %d requires %d pages.\n", c.PID, n)
	return nil
}

// LRUCommand runs an LRU replacement simulation. When References is empty,
// RandomReferences page numbers in [0, Pages) are drawn from the kernel RNG.
type LRUCommand struct {
	Frames           int
	References       []int
	RandomReferences int
	Pages            int
}

func (c *LRUCommand) Name() string { return "lru" }

func (c *LRUCommand) Execute(k *Kernel, out io.Writer) error {
	refs := c.References
	if len(refs) == 0 {
		refs = k.RNG().RandomReferences(c.RandomReferences, c.Pages)
		logrus.Debugf("lru: drew %d random references", len(refs))
	}
	res, err := k.SimulateLRU(c.Frames, refs)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Final frame contents: %s\n", res)
	fmt.Fprintf(out, "Hits: %d, Faults: %d, Evictions: %d\n", res.Hits, res.Faults, res.Evictions)
	return nil
}
