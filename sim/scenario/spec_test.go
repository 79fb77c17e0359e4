package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eagle-os/eagle-sim/sim"
	"github.com/eagle-os/eagle-sim/sim/trace"
)

const classicScenario = `
version: "1"
seed: 7
kernel:
  time_quantum: 10
  frame_size: 256
  mlq_threshold: 5
steps:
  - op: create
    arrival_time: 0
    burst_time: 25
    priority: 3
  - op: create
    arrival_time: 2
    burst_time: 8
    priority: 7
  - op: schedule
    policy: rr
  - op: page-size
    pid: 1
    page_size: 64
  - op: calculate-pages
    pid: 1
    memory: 1000
    process_size: 300
  - op: paging
    pid: 1
  - op: lru
    frames: 3
    references: [1, 2, 3, 4, 1, 2, 5]
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ClassicScenario_RunsEndToEnd(t *testing.T) {
	// GIVEN a scenario file with process, scheduling and memory steps
	spec, err := Load(writeScenario(t, classicScenario))
	require.NoError(t, err)
	require.NoError(t, spec.Validate())

	// WHEN every command runs against a kernel built from the scenario
	rec := trace.NewRecorder()
	k := sim.NewKernel(spec.KernelConfig(), rec)
	var out bytes.Buffer
	for _, c := range spec.Commands() {
		require.NoError(t, c.Execute(k, &out), c.Name())
	}

	// THEN RR dispatched the short process and sliced the long one
	ready := k.Snapshot(sim.ReadyQueue)
	require.Len(t, ready, 1)
	assert.Equal(t, 15, ready[0].RemainingBurstTime)
	assert.Equal(t, 1, k.Len(sim.RunningQueue))
	assert.Contains(t, out.String(), "Process 1 requires 5 pages.")
	assert.Contains(t, out.String(), "Final frame contents: 5 1 2")
	assert.Equal(t, int64(7), spec.KernelConfig().Seed)
}

func TestParse_UnknownField_Rejected(t *testing.T) {
	_, err := Parse([]byte("version: \"1\"\nsteps:\n  - op: create\n    burst: 5\n"))
	assert.Error(t, err, "typo'd key must be rejected")
}

func TestParse_MissingVersion_DefaultsToOne(t *testing.T) {
	spec, err := Parse([]byte("steps:\n  - op: resume\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", spec.Version)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestKernelConfig_ZeroValuesKeepDefaults(t *testing.T) {
	spec := &Spec{}
	assert.Equal(t, sim.DefaultKernelConfig(), spec.KernelConfig())

	zero := 0
	spec.Kernel.MLQThreshold = &zero
	assert.Equal(t, 0, spec.KernelConfig().MLQThreshold, "explicit threshold 0 is honoured")
}

func TestValidate_RejectsBadSteps(t *testing.T) {
	tests := []struct {
		name string
		step Step
	}{
		{"unknown op", Step{Op: "fork"}},
		{"destroy without pid", Step{Op: "destroy"}},
		{"dispatch negative pid", Step{Op: "dispatch", PID: -1}},
		{"unknown policy", Step{Op: "schedule", Policy: "lottery"}},
		{"zero page size", Step{Op: "page-size", PID: 1}},
		{"create-random zero count", Step{Op: "create-random"}},
		{"communicate missing receiver", Step{Op: "communicate", Sender: 1}},
		{"lru negative frames", Step{Op: "lru", Frames: -1, References: []int{1}}},
		{"lru without references", Step{Op: "lru", Frames: 3}},
		{"calculate negative memory", Step{Op: "calculate-pages", PID: 1, MemoryAllocated: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &Spec{Version: "1", Steps: []Step{tt.step}}
			assert.Error(t, spec.Validate())
		})
	}
}

func TestValidate_RejectsBadKernelAndVersion(t *testing.T) {
	spec := &Spec{Version: "1", Kernel: KernelSpec{TimeQuantum: -4}, Steps: []Step{{Op: "resume"}}}
	assert.Error(t, spec.Validate())

	spec = &Spec{Version: "9", Steps: []Step{{Op: "resume"}}}
	assert.Error(t, spec.Validate())

	spec = &Spec{Version: "1"}
	assert.Error(t, spec.Validate(), "empty step list")
}

func TestStep_Command_CoversEveryOp(t *testing.T) {
	// Every op accepted by Validate compiles to a command
	for op := range validOps {
		st := Step{Op: op, PID: 1, Policy: "fcfs", Count: 1, Sender: 1, Receiver: 1, PageSize: 1, References: []int{1}}
		require.NoError(t, validateStep(&st, 0), op)
		assert.NotNil(t, st.Command(), op)
	}
}

func TestStep_Command_RandomLRU(t *testing.T) {
	st := Step{Op: "lru", Frames: 2, RandomReferences: 10, Pages: 4}
	require.NoError(t, validateStep(&st, 0))
	cmd, ok := st.Command().(*sim.LRUCommand)
	require.True(t, ok)
	assert.Equal(t, 10, cmd.RandomReferences)
}

func TestLoad_BundledDemoScenario_Validates(t *testing.T) {
	spec, err := Load(filepath.Join("..", "..", "scenarios", "demo.yaml"))
	require.NoError(t, err)
	require.NoError(t, spec.Validate())
	assert.Len(t, spec.Commands(), len(spec.Steps))
}

func TestStep_LRU_LargeFrameCount_Runs(t *testing.T) {
	st := Step{Op: "lru", Frames: 1 << 40, References: []int{4, 4, 2}}
	require.NoError(t, validateStep(&st, 0))

	var out bytes.Buffer
	k := sim.NewKernel(sim.DefaultKernelConfig(), nil)
	require.NoError(t, st.Command().Execute(k, &out))

	assert.Contains(t, out.String(), "Final frame contents: 4 2")
}
