package simulation

import "github.com/sherine-k/schedsim/pkg/config"

// nonPreemptivePriority runs the arrived process with the lowest priority
// value to completion. Processes are scanned in input order. After an idle
// gap the earliest arrival runs first regardless of priority.
type nonPreemptivePriority struct{}

func (nonPreemptivePriority) Algorithm() config.Algorithm { return config.AlgorithmNPP }

func (nonPreemptivePriority) Schedule(processes []Process) *Timeline {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	return runToCompletion(processes, order, highestPriority, earliestArrival)
}

func highestPriority(processes []Process, eligible []int) int {
	best := -1
	for _, idx := range eligible {
		if best < 0 || processes[idx].Priority < processes[best].Priority {
			best = idx
		}
	}
	return best
}
