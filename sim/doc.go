// Package sim provides the core of the eagle-sim kernel simulator: a process
// queue store, five CPU-scheduling policies, and paging operations over a
// fixed frame pool. The simulation is discrete and single-threaded; every
// operation runs to completion when called.
//
// # Reading Guide
//
// Start with these files:
//   - process.go: the Process record and its lifecycle states
//   - kernel.go: the queue store (Ready, Running, Blocked) and every state move
//   - scheduler.go: FCFS, Priority, SJF, Round-Robin and Multilevel-Queue
//   - paging.go: page counts, page-table layout and LRU replacement
//   - command.go: operator actions, the unit scenarios are built from
//
// # Architecture
//
// Leaf sub-packages with no dependency on sim/:
//   - sim/paging/: page arithmetic and the LRU replacement engine
//   - sim/trace/: action-log sinks (in-memory recorder, append-only file)
//
// sim/scenario/ sits above sim/ and compiles YAML scenario files into Commands.
//
// # Key Interfaces
//
//   - ActionLog: receives one line per kernel action
//   - Scheduler: dispatches work from the Ready queue
//   - Selector: picks one process out of a candidate list
//   - Command: one operator action against the kernel
package sim
