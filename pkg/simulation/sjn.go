package simulation

import (
	"sort"

	"github.com/sherine-k/schedsim/pkg/config"
)

// shortestJobNext runs the shortest arrived job to completion.
type shortestJobNext struct{}

func (shortestJobNext) Algorithm() config.Algorithm { return config.AlgorithmSJN }

func (shortestJobNext) Schedule(processes []Process) *Timeline {
	order := arrivalOrder(processes)
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := processes[order[a]], processes[order[b]]
		if pa.ArrivalTime == pb.ArrivalTime {
			return pa.BurstTime < pb.BurstTime
		}
		return pa.ArrivalTime < pb.ArrivalTime
	})
	return runToCompletion(processes, order, shortestBurst, nil)
}

func shortestBurst(processes []Process, eligible []int) int {
	best := -1
	for _, idx := range eligible {
		if best < 0 || processes[idx].BurstTime < processes[best].BurstTime {
			best = idx
		}
	}
	return best
}
