// Package scenario loads YAML scenario files: a kernel configuration plus an
// ordered list of operator steps that compile to sim.Commands.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/eagle-os/eagle-sim/sim"
)

// Spec is the top-level scenario file.
type Spec struct {
	Version string     `yaml:"version"`
	Seed    *int64     `yaml:"seed,omitempty"`
	Kernel  KernelSpec `yaml:"kernel,omitempty"`
	Steps   []Step     `yaml:"steps"`
}

// KernelSpec overrides kernel defaults. Zero values keep the default.
type KernelSpec struct {
	TimeQuantum  int  `yaml:"time_quantum,omitempty"`
	FrameSize    int  `yaml:"frame_size,omitempty"`
	MLQThreshold *int `yaml:"mlq_threshold,omitempty"`
}

// Step is one operator action. Op selects which of the other fields apply.
type Step struct {
	Op string `yaml:"op"`

	PID int `yaml:"pid,omitempty"`

	ArrivalTime int `yaml:"arrival_time,omitempty"`
	BurstTime   int `yaml:"burst_time,omitempty"`
	Priority    int `yaml:"priority,omitempty"`
	Count       int `yaml:"count,omitempty"`

	Sender   int    `yaml:"sender,omitempty"`
	Receiver int    `yaml:"receiver,omitempty"`
	Message  string `yaml:"message,omitempty"`

	Policy string `yaml:"policy,omitempty"`

	PageSize        int `yaml:"page_size,omitempty"`
	MemoryAllocated int `yaml:"memory,omitempty"`
	ProcessSize     int `yaml:"process_size,omitempty"`

	Frames           int   `yaml:"frames,omitempty"`
	References       []int `yaml:"references,omitempty"`
	RandomReferences int   `yaml:"random_references,omitempty"`
	Pages            int   `yaml:"pages,omitempty"`
}

// Valid value registries.
var (
	validVersions = map[string]bool{"": true, "1": true}

	// ops that act on a single process through pid
	pidOps = map[string]bool{
		"destroy": true, "suspend": true, "block": true, "dispatch": true,
		"priority": true, "page-size": true, "calculate-pages": true, "paging": true,
	}
	validOps = map[string]bool{
		"create": true, "create-random": true, "resume": true, "wakeup": true,
		"communicate": true, "schedule": true, "lru": true,
	}
)

func init() {
	for op := range pidOps {
		validOps[op] = true
	}
}

// Load reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario from YAML bytes with strict field checking.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if spec.Version == "" {
		logrus.Warn("scenario has no version; assuming \"1\"")
		spec.Version = "1"
	}
	return &spec, nil
}

// KernelConfig merges the scenario's overrides into the default config.
func (s *Spec) KernelConfig() sim.KernelConfig {
	cfg := sim.DefaultKernelConfig()
	if s.Seed != nil {
		cfg.Seed = *s.Seed
	}
	if s.Kernel.TimeQuantum != 0 {
		cfg.TimeQuantum = s.Kernel.TimeQuantum
	}
	if s.Kernel.FrameSize != 0 {
		cfg.FrameSize = s.Kernel.FrameSize
	}
	if s.Kernel.MLQThreshold != nil {
		cfg.MLQThreshold = *s.Kernel.MLQThreshold
	}
	return cfg
}

// Validate checks the kernel section and every step.
func (s *Spec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unknown scenario version %q; valid: 1", s.Version)
	}
	if err := s.KernelConfig().Validate(); err != nil {
		return fmt.Errorf("kernel: %w", err)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step required")
	}
	for i := range s.Steps {
		if err := validateStep(&s.Steps[i], i); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(st *Step, idx int) error {
	prefix := fmt.Sprintf("steps[%d]", idx)
	if !validOps[st.Op] {
		return fmt.Errorf("%s: unknown op %q", prefix, st.Op)
	}
	if pidOps[st.Op] && st.PID <= 0 {
		return fmt.Errorf("%s: %s requires pid > 0, got %d", prefix, st.Op, st.PID)
	}
	switch st.Op {
	case "create-random":
		if st.Count <= 0 {
			return fmt.Errorf("%s: count must be positive, got %d", prefix, st.Count)
		}
	case "communicate":
		if st.Sender <= 0 || st.Receiver <= 0 {
			return fmt.Errorf("%s: sender and receiver must be > 0, got %d and %d", prefix, st.Sender, st.Receiver)
		}
	case "schedule":
		if !sim.IsValidScheduler(st.Policy) {
			return fmt.Errorf("%s: unknown policy %q; valid: %v", prefix, st.Policy, sim.SchedulerNames())
		}
	case "page-size":
		if st.PageSize <= 0 {
			return fmt.Errorf("%s: page_size must be positive, got %d", prefix, st.PageSize)
		}
	case "calculate-pages":
		if st.MemoryAllocated < 0 || st.ProcessSize < 0 {
			return fmt.Errorf("%s: memory and process_size must be non-negative", prefix)
		}
	case "lru":
		if st.Frames < 0 {
			return fmt.Errorf("%s: frames must be non-negative, got %d", prefix, st.Frames)
		}
		if len(st.References) == 0 && (st.RandomReferences <= 0 || st.Pages <= 0) {
			return fmt.Errorf("%s: lru needs references, or random_references and pages", prefix)
		}
	}
	return nil
}

// Commands compiles the steps into kernel commands, in order.
// Call Validate first; invalid steps panic.
func (s *Spec) Commands() []sim.Command {
	cmds := make([]sim.Command, 0, len(s.Steps))
	for _, st := range s.Steps {
		cmds = append(cmds, st.Command())
	}
	return cmds
}

// Command converts one validated step into a sim.Command.
func (st Step) Command() sim.Command {
	switch st.Op {
	case "create":
		return &sim.CreateCommand{ArrivalTime: st.ArrivalTime, BurstTime: st.BurstTime, Priority: st.Priority}
	case "create-random":
		return &sim.CreateRandomCommand{Count: st.Count}
	case "destroy":
		return &sim.DestroyCommand{PID: st.PID}
	case "suspend", "block", "dispatch":
		return &sim.MoveCommand{Op: st.Op, PID: st.PID}
	case "resume":
		return &sim.ResumeCommand{}
	case "wakeup":
		return &sim.WakeupCommand{}
	case "priority":
		return &sim.PriorityCommand{PID: st.PID, Priority: st.Priority}
	case "communicate":
		return &sim.CommunicateCommand{Sender: st.Sender, Receiver: st.Receiver, Message: st.Message}
	case "schedule":
		return &sim.ScheduleCommand{Scheduler: sim.NewScheduler(st.Policy)}
	case "page-size":
		return &sim.PageSizeCommand{PID: st.PID, PageSize: st.PageSize}
	case "calculate-pages":
		return &sim.CalculatePagesCommand{PID: st.PID, MemoryAllocated: st.MemoryAllocated, ProcessSize: st.ProcessSize}
	case "paging":
		return &sim.PagingCommand{PID: st.PID}
	case "lru":
		return &sim.LRUCommand{Frames: st.Frames, References: st.References, RandomReferences: st.RandomReferences, Pages: st.Pages}
	default:
		panic(fmt.Sprintf("unhandled op %q", st.Op))
	}
}
