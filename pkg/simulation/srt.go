package simulation

import "github.com/sherine-k/schedsim/pkg/config"

// shortestRemainingTime re-decides the occupant every time unit, giving the
// CPU to the arrived process with the least remaining work.
type shortestRemainingTime struct{}

func (shortestRemainingTime) Algorithm() config.Algorithm { return config.AlgorithmSRT }

func (shortestRemainingTime) Schedule(processes []Process) *Timeline {
	order := arrivalOrder(processes)
	timeline := NewTimeline()
	eligible := make([]int, 0, len(order))
	completed := 0
	now := 0

	for completed < len(processes) {
		eligible = eligible[:0]
		for _, idx := range order {
			p := processes[idx]
			if p.RemainingTime > 0 && p.ArrivalTime <= now {
				eligible = append(eligible, idx)
			}
		}

		idx := shortestRemaining(processes, eligible)
		if idx < 0 {
			timeline.Idle(now, now+1)
			now++
			continue
		}

		p := &processes[idx]
		p.dispatch(now)
		timeline.Append(p.ID, now, now+1)
		p.RemainingTime--
		now++

		if p.RemainingTime == 0 {
			p.complete(now)
			completed++
		}
	}

	return timeline
}

func shortestRemaining(processes []Process, eligible []int) int {
	best := -1
	for _, idx := range eligible {
		if best < 0 || processes[idx].RemainingTime < processes[best].RemainingTime {
			best = idx
		}
	}
	return best
}
