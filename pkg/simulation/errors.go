package simulation

import (
	"errors"
	"fmt"

	"github.com/sherine-k/schedsim/pkg/config"
)

var (
	ErrNoProcesses          = errors.New("no processes to schedule")
	ErrInvalidBurst         = errors.New("burst time must be greater than 0")
	ErrNegativeArrival      = errors.New("arrival time must not be negative")
	ErrInvalidQuantum       = errors.New("time quantum must be greater than 0")
	ErrUnknownAlgorithm     = config.ErrUnknownAlgorithm
	ErrNoCompletedProcesses = errors.New("no completed processes to aggregate")
	ErrInvariantViolation   = errors.New("scheduling invariant violated")
	ErrHorizonExceeded      = errors.New("workload exceeds the simulation horizon")
)

// Validate rejects a process set that no policy can simulate.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	for _, p := range processes {
		if p.BurstTime <= 0 {
			return fmt.Errorf("process %s: %w (got %d)", p.Name, ErrInvalidBurst, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("process %s: %w (got %d)", p.Name, ErrNegativeArrival, p.ArrivalTime)
		}
	}
	return nil
}

// CheckHorizon rejects a workload whose worst-case makespan, the latest
// arrival plus the total burst, is above limit. A limit <= 0 disables the check.
func CheckHorizon(processes []Process, limit int) error {
	if limit <= 0 {
		return nil
	}

	latest, work := 0, 0
	for _, p := range processes {
		if p.ArrivalTime > limit || p.BurstTime > limit {
			return fmt.Errorf("process %s: %w (limit %d)", p.Name, ErrHorizonExceeded, limit)
		}
		latest = max(latest, p.ArrivalTime)
		work += p.BurstTime
		if work > limit {
			return fmt.Errorf("%w: total burst is above %d", ErrHorizonExceeded, limit)
		}
	}
	if latest+work > limit {
		return fmt.Errorf("%w: latest arrival %d plus total burst %d is above %d", ErrHorizonExceeded, latest, work, limit)
	}
	return nil
}

// checkInvariants verifies a finished run. Any failure here is a defect in a
// policy, so the run is discarded.
func checkInvariants(processes []Process, timeline *Timeline) error {
	if err := timeline.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}

	segments := timeline.Segments()
	if len(segments) > 0 && segments[0].Start != 0 {
		return fmt.Errorf("%w: timeline starts at %d, want 0", ErrInvariantViolation, segments[0].Start)
	}

	lastCompletion := 0
	for _, p := range processes {
		if !p.Completed() {
			return fmt.Errorf("%w: process %d never completed", ErrInvariantViolation, p.ID)
		}
		if p.CompletionTime < p.ArrivalTime+p.BurstTime {
			return fmt.Errorf("%w: process %d completed at %d before arrival %d + burst %d",
				ErrInvariantViolation, p.ID, p.CompletionTime, p.ArrivalTime, p.BurstTime)
		}
		if p.TurnaroundTime != p.CompletionTime-p.ArrivalTime {
			return fmt.Errorf("%w: process %d turnaround %d != %d - %d",
				ErrInvariantViolation, p.ID, p.TurnaroundTime, p.CompletionTime, p.ArrivalTime)
		}
		if p.WaitingTime != p.TurnaroundTime-p.BurstTime || p.WaitingTime < 0 {
			return fmt.Errorf("%w: process %d waiting time %d is inconsistent", ErrInvariantViolation, p.ID, p.WaitingTime)
		}
		if ran := timeline.RunTime(p.ID); ran != p.BurstTime {
			return fmt.Errorf("%w: process %d ran %d units, burst is %d", ErrInvariantViolation, p.ID, ran, p.BurstTime)
		}
		if p.CompletionTime > lastCompletion {
			lastCompletion = p.CompletionTime
		}
	}

	if timeline.End() != lastCompletion {
		return fmt.Errorf("%w: timeline ends at %d, last completion is %d", ErrInvariantViolation, timeline.End(), lastCompletion)
	}
	return nil
}
