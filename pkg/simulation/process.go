package simulation

import (
	"fmt"

	"github.com/sherine-k/schedsim/pkg/config"
)

// unset marks a time field that has not been written by a policy yet.
const unset = -1

// Process is a single process record. The input fields are fixed at creation;
// the remaining fields are written by exactly one policy run.
type Process struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrivalTime"`
	BurstTime   int    `json:"burst_time" yaml:"burstTime"`
	Priority    int    `json:"priority" yaml:"priority"`

	RemainingTime  int `json:"remaining_time" yaml:"remainingTime"`
	StartTime      int `json:"start_time" yaml:"startTime"`
	CompletionTime int `json:"completion_time" yaml:"completionTime"`
	TurnaroundTime int `json:"turnaround_time" yaml:"turnaroundTime"`
	WaitingTime    int `json:"waiting_time" yaml:"waitingTime"`
	ResponseTime   int `json:"response_time" yaml:"responseTime"`
}

// NewProcesses builds process records from workload definitions. IDs follow
// the 1-based position in specs.
func NewProcesses(specs []config.ProcessSpec) []Process {
	processes := make([]Process, len(specs))
	for i, spec := range specs {
		p := Process{
			ID:          i + 1,
			Name:        spec.Name,
			ArrivalTime: spec.Arrival,
			BurstTime:   spec.Burst,
			Priority:    spec.Priority,
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("P%d", p.ID)
		}
		p.Reset()
		processes[i] = p
	}
	return processes
}

// Reset clears every simulation output so the record can be run again.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.StartTime = unset
	p.CompletionTime = unset
	p.TurnaroundTime = unset
	p.WaitingTime = unset
	p.ResponseTime = unset
}

// Completed reports whether a policy has finalized this record.
func (p *Process) Completed() bool {
	return p.CompletionTime != unset
}

// dispatch records the first time the process is given the CPU.
func (p *Process) dispatch(now int) {
	if p.StartTime == unset {
		p.StartTime = now
		p.ResponseTime = now - p.ArrivalTime
	}
}

// complete finalizes the derived time fields at completion time now.
func (p *Process) complete(now int) {
	p.RemainingTime = 0
	p.CompletionTime = now
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

// cloneProcesses returns fresh copies of processes with outputs reset.
func cloneProcesses(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	for i := range out {
		out[i].Reset()
	}
	return out
}
