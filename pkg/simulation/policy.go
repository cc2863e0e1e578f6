package simulation

import (
	"fmt"
	"sort"

	"github.com/sherine-k/schedsim/pkg/config"
)

// Policy is a scheduling algorithm. Schedule runs the processes to completion,
// writing their output fields in place, and returns the resulting timeline.
type Policy interface {
	Algorithm() config.Algorithm
	Schedule(processes []Process) *Timeline
}

// NewPolicy returns the policy for alg. quantum is only used by round robin.
func NewPolicy(alg config.Algorithm, quantum int) (Policy, error) {
	switch alg {
	case config.AlgorithmSJN:
		return shortestJobNext{}, nil
	case config.AlgorithmNPP:
		return nonPreemptivePriority{}, nil
	case config.AlgorithmRR:
		if quantum <= 0 {
			return nil, fmt.Errorf("%w (got %d)", ErrInvalidQuantum, quantum)
		}
		return roundRobin{quantum: quantum}, nil
	case config.AlgorithmSRT:
		return shortestRemainingTime{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// selector picks one of the candidate indices into processes. candidates is
// never empty and is in scan order; ties must go to the earliest entry.
type selector func(processes []Process, eligible []int) int

// runToCompletion drives a non-preemptive policy: once selected, a process
// holds the CPU until it finishes. order is the scan order of the arena.
//
// When nothing has arrived yet the CPU idles until the earliest pending
// arrival. If afterIdle is nil the selection is made again at that time,
// otherwise afterIdle picks from the pending set and that process runs
// without consulting pick.
func runToCompletion(processes []Process, order []int, pick, afterIdle selector) *Timeline {
	timeline := NewTimeline()
	pending := append([]int(nil), order...)
	eligible := make([]int, 0, len(pending))
	now := 0

	for len(pending) > 0 {
		eligible = eligible[:0]
		for _, idx := range pending {
			if processes[idx].ArrivalTime <= now {
				eligible = append(eligible, idx)
			}
		}

		var next int
		if len(eligible) > 0 {
			next = pick(processes, eligible)
		} else {
			arrival := processes[earliestArrival(processes, pending)].ArrivalTime
			timeline.Idle(now, arrival)
			now = arrival
			if afterIdle == nil {
				continue
			}
			next = afterIdle(processes, pending)
		}

		p := &processes[next]
		p.dispatch(now)
		timeline.Append(p.ID, now, now+p.BurstTime)
		now += p.BurstTime
		p.complete(now)

		pending = removeIndex(pending, next)
	}

	return timeline
}

// earliestArrival returns the first candidate with the smallest arrival time.
func earliestArrival(processes []Process, candidates []int) int {
	best := -1
	for _, idx := range candidates {
		if best < 0 || processes[idx].ArrivalTime < processes[best].ArrivalTime {
			best = idx
		}
	}
	return best
}

func removeIndex(indices []int, idx int) []int {
	for i, v := range indices {
		if v == idx {
			return append(indices[:i], indices[i+1:]...)
		}
	}
	return indices
}

// arrivalOrder returns arena indices stable-sorted by arrival time.
func arrivalOrder(processes []Process) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return processes[order[a]].ArrivalTime < processes[order[b]].ArrivalTime
	})
	return order
}
