// Package sim provides the core scheduling replay engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: Process record (static inputs, computed outputs) and Segment
//   - scheduler.go: the closed Algorithm variant (FCFS, SJN, Priority, RoundRobin)
//   - simulator.go: Run, the shared clock, dispatch/execute/complete bookkeeping
//   - fcfs.go, nonpreemptive.go, round_robin.go: the four policies
//
// # Model
//
// A run is a deterministic, single-threaded replay over a logical integer time axis
// with exactly one CPU. Run validates its input, copies it, and returns a Schedule;
// the caller's process slice is never written. Independent runs may therefore share
// an input slice, including from different goroutines.
//
// # Sub-packages
//   - sim/trace/: decision trace recording (dispatch, preemption, idle)
//   - sim/workload/: process-set loading (YAML, CSV) and synthetic generation
//   - sim/report/: Gantt and table rendering of a finished Schedule
package sim
