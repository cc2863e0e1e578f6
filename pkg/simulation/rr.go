package simulation

import "github.com/sherine-k/schedsim/pkg/config"

// roundRobin gives each ready process at most quantum units before moving it
// to the tail of a FIFO ready queue.
type roundRobin struct {
	quantum int
}

func (roundRobin) Algorithm() config.Algorithm { return config.AlgorithmRR }

func (r roundRobin) Schedule(processes []Process) *Timeline {
	order := arrivalOrder(processes)
	timeline := NewTimeline()
	queue := make([]int, 0, len(order))
	next := 0
	now := 0

	admit := func() {
		for next < len(order) && processes[order[next]].ArrivalTime <= now {
			queue = append(queue, order[next])
			next++
		}
	}

	admit()
	for len(queue) > 0 || next < len(order) {
		if len(queue) == 0 {
			arrival := processes[order[next]].ArrivalTime
			timeline.Idle(now, arrival)
			now = arrival
			admit()
			continue
		}

		idx := queue[0]
		queue = queue[1:]
		p := &processes[idx]
		p.dispatch(now)

		slice := min(r.quantum, p.RemainingTime)
		timeline.Append(p.ID, now, now+slice)
		now += slice
		p.RemainingTime -= slice

		// Arrivals during the slice queue ahead of the preempted process.
		admit()
		if p.RemainingTime > 0 {
			queue = append(queue, idx)
		} else {
			p.complete(now)
		}
	}

	return timeline
}
