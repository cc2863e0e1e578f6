package simulation

import (
	"math/rand"
	"testing"

	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func procs(specs ...config.ProcessSpec) []Process {
	return NewProcesses(specs)
}

func spec(arrival, burst, priority int) config.ProcessSpec {
	return config.ProcessSpec{Arrival: arrival, Burst: burst, Priority: priority}
}

func seg(id, start, end int) Segment {
	return Segment{ProcessID: id, Start: start, End: end}
}

func run(t *testing.T, alg config.Algorithm, quantum int, processes []Process) *Result {
	t.Helper()
	result, err := Run(alg, quantum, processes)
	require.NoError(t, err)
	return result
}

func completions(result *Result) map[int]int {
	out := make(map[int]int, len(result.Processes))
	for _, p := range result.Processes {
		out[p.ID] = p.CompletionTime
	}
	return out
}

func TestShortestJobNext(t *testing.T) {
	tests := []struct {
		name        string
		processes   []Process
		timeline    []Segment
		completions map[int]int
	}{
		{
			name:        "running job is not preempted by shorter arrivals",
			processes:   procs(spec(0, 5, 0), spec(1, 3, 0), spec(2, 1, 0)),
			timeline:    []Segment{seg(1, 0, 5), seg(3, 5, 6), seg(2, 6, 9)},
			completions: map[int]int{1: 5, 2: 9, 3: 6},
		},
		{
			name:        "idle until first arrival",
			processes:   procs(spec(3, 2, 0)),
			timeline:    []Segment{seg(IdleID, 0, 3), seg(1, 3, 5)},
			completions: map[int]int{1: 5},
		},
		{
			name:        "equal bursts go to the earlier arrival order",
			processes:   procs(spec(0, 4, 0), spec(0, 2, 0), spec(0, 2, 0)),
			timeline:    []Segment{seg(2, 0, 2), seg(3, 2, 4), seg(1, 4, 8)},
			completions: map[int]int{1: 8, 2: 2, 3: 4},
		},
		{
			name:        "idle gap between jobs",
			processes:   procs(spec(0, 2, 0), spec(6, 3, 0), spec(7, 1, 0)),
			timeline:    []Segment{seg(1, 0, 2), seg(IdleID, 2, 6), seg(2, 6, 9), seg(3, 9, 10)},
			completions: map[int]int{1: 2, 2: 9, 3: 10},
		},
		{
			name:        "shortest burst is chosen again after an idle jump",
			processes:   procs(spec(2, 4, 0), spec(2, 1, 0)),
			timeline:    []Segment{seg(IdleID, 0, 2), seg(2, 2, 3), seg(1, 3, 7)},
			completions: map[int]int{1: 7, 2: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := run(t, config.AlgorithmSJN, 0, tt.processes)
			assert.Equal(t, tt.timeline, result.Timeline)
			assert.Equal(t, tt.completions, completions(result))
		})
	}
}

func TestShortestJobNext_Averages(t *testing.T) {
	result := run(t, config.AlgorithmSJN, 0, procs(spec(0, 5, 0), spec(1, 3, 0), spec(2, 1, 0)))

	// waits: P1 0, P2 9-1-3, P3 6-2-1
	assert.InDelta(t, 8.0/3.0, result.Metrics.AverageWaitingTime, 1e-9)
	assert.InDelta(t, (5.0+8.0+4.0)/3.0, result.Metrics.AverageTurnaroundTime, 1e-9)
	assert.Equal(t, []int{1, 3, 2}, result.CompletionOrder)
}

func TestShortestJobNext_Idempotent(t *testing.T) {
	processes := procs(spec(2, 6, 0), spec(0, 3, 0), spec(4, 1, 0), spec(4, 2, 0), spec(20, 5, 0))

	first := run(t, config.AlgorithmSJN, 0, processes)
	second := run(t, config.AlgorithmSJN, 0, processes)

	assert.Equal(t, first, second)
	for _, p := range processes {
		assert.False(t, p.Completed(), "input records must not be mutated")
	}
}

func TestNonPreemptivePriority(t *testing.T) {
	tests := []struct {
		name        string
		processes   []Process
		timeline    []Segment
		completions map[int]int
	}{
		{
			name:        "lowest value wins, ties by input order",
			processes:   procs(spec(0, 4, 3), spec(1, 3, 1), spec(2, 2, 1)),
			timeline:    []Segment{seg(1, 0, 4), seg(2, 4, 7), seg(3, 7, 9)},
			completions: map[int]int{1: 4, 2: 7, 3: 9},
		},
		{
			name:        "input order is scanned, not arrival order",
			processes:   procs(spec(1, 2, 2), spec(0, 1, 5), spec(1, 2, 2)),
			timeline:    []Segment{seg(2, 0, 1), seg(1, 1, 3), seg(3, 3, 5)},
			completions: map[int]int{1: 3, 2: 1, 3: 5},
		},
		{
			name:        "idle gap mid run",
			processes:   procs(spec(0, 2, 1), spec(5, 1, 1)),
			timeline:    []Segment{seg(1, 0, 2), seg(IdleID, 2, 5), seg(2, 5, 6)},
			completions: map[int]int{1: 2, 2: 6},
		},
		{
			name:        "after an idle jump the earliest arrival runs first",
			processes:   procs(spec(5, 2, 3), spec(5, 2, 1)),
			timeline:    []Segment{seg(IdleID, 0, 5), seg(1, 5, 7), seg(2, 7, 9)},
			completions: map[int]int{1: 7, 2: 9},
		},
		{
			name:        "after an idle jump the earlier arrival beats a better priority",
			processes:   procs(spec(0, 1, 1), spec(4, 2, 9), spec(3, 2, 5), spec(4, 1, 0)),
			timeline:    []Segment{seg(1, 0, 1), seg(IdleID, 1, 3), seg(3, 3, 5), seg(4, 5, 6), seg(2, 6, 8)},
			completions: map[int]int{1: 1, 2: 8, 3: 5, 4: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := run(t, config.AlgorithmNPP, 0, tt.processes)
			assert.Equal(t, tt.timeline, result.Timeline)
			assert.Equal(t, tt.completions, completions(result))
		})
	}
}

func TestRoundRobin(t *testing.T) {
	tests := []struct {
		name        string
		quantum     int
		processes   []Process
		timeline    []Segment
		completions map[int]int
	}{
		{
			name:        "two processes quantum 2",
			quantum:     2,
			processes:   procs(spec(0, 5, 0), spec(1, 3, 0)),
			timeline:    []Segment{seg(1, 0, 2), seg(2, 2, 4), seg(1, 4, 6), seg(2, 6, 7), seg(1, 7, 8)},
			completions: map[int]int{1: 8, 2: 7},
		},
		{
			name:        "arrival at the preemption point queues first",
			quantum:     2,
			processes:   procs(spec(0, 4, 0), spec(2, 2, 0)),
			timeline:    []Segment{seg(1, 0, 2), seg(2, 2, 4), seg(1, 4, 6)},
			completions: map[int]int{1: 6, 2: 4},
		},
		{
			name:        "consecutive slices of a lone process merge",
			quantum:     2,
			processes:   procs(spec(0, 5, 0)),
			timeline:    []Segment{seg(1, 0, 5)},
			completions: map[int]int{1: 5},
		},
		{
			name:        "idle until next arrival",
			quantum:     2,
			processes:   procs(spec(0, 1, 0), spec(4, 2, 0)),
			timeline:    []Segment{seg(1, 0, 1), seg(IdleID, 1, 4), seg(2, 4, 6)},
			completions: map[int]int{1: 1, 2: 6},
		},
		{
			name:        "late start",
			quantum:     3,
			processes:   procs(spec(2, 4, 0), spec(3, 2, 0)),
			timeline:    []Segment{seg(IdleID, 0, 2), seg(1, 2, 5), seg(2, 5, 7), seg(1, 7, 8)},
			completions: map[int]int{1: 8, 2: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := run(t, config.AlgorithmRR, tt.quantum, tt.processes)
			assert.Equal(t, tt.timeline, result.Timeline)
			assert.Equal(t, tt.completions, completions(result))
			assert.Equal(t, tt.quantum, result.Quantum)
		})
	}
}

func TestShortestRemainingTime(t *testing.T) {
	tests := []struct {
		name        string
		processes   []Process
		timeline    []Segment
		completions map[int]int
	}{
		{
			name:        "equal bursts arriving together go in arrival order",
			processes:   procs(spec(0, 3, 0), spec(0, 3, 0)),
			timeline:    []Segment{seg(1, 0, 3), seg(2, 3, 6)},
			completions: map[int]int{1: 3, 2: 6},
		},
		{
			name:        "equal remaining time keeps the earlier arrival",
			processes:   procs(spec(0, 2, 0), spec(1, 1, 0)),
			timeline:    []Segment{seg(1, 0, 2), seg(2, 2, 3)},
			completions: map[int]int{1: 2, 2: 3},
		},
		{
			name:        "shorter arrivals preempt",
			processes:   procs(spec(0, 7, 0), spec(2, 4, 0), spec(4, 1, 0), spec(5, 4, 0)),
			timeline:    []Segment{seg(1, 0, 2), seg(2, 2, 4), seg(3, 4, 5), seg(2, 5, 7), seg(4, 7, 11), seg(1, 11, 16)},
			completions: map[int]int{1: 16, 2: 7, 3: 5, 4: 11},
		},
		{
			name:        "idle ticks merge into one segment",
			processes:   procs(spec(3, 1, 0), spec(6, 2, 0)),
			timeline:    []Segment{seg(IdleID, 0, 3), seg(1, 3, 4), seg(IdleID, 4, 6), seg(2, 6, 8)},
			completions: map[int]int{1: 4, 2: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := run(t, config.AlgorithmSRT, 0, tt.processes)
			assert.Equal(t, tt.timeline, result.Timeline)
			assert.Equal(t, tt.completions, completions(result))
		})
	}
}

func TestResponseTime(t *testing.T) {
	result := run(t, config.AlgorithmRR, 2, procs(spec(0, 5, 0), spec(1, 3, 0)))

	p1, p2 := result.Processes[0], result.Processes[1]
	assert.Equal(t, 0, p1.StartTime)
	assert.Equal(t, 0, p1.ResponseTime)
	assert.Equal(t, 2, p2.StartTime)
	assert.Equal(t, 1, p2.ResponseTime)
}

func TestNewPolicy(t *testing.T) {
	_, err := NewPolicy(config.AlgorithmRR, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantum)

	_, err = NewPolicy(config.AlgorithmRR, -3)
	assert.ErrorIs(t, err, ErrInvalidQuantum)

	_, err = NewPolicy("fcfs", 1)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	for _, alg := range config.Algorithms {
		p, err := NewPolicy(alg, 1)
		require.NoError(t, err)
		assert.Equal(t, alg, p.Algorithm())
	}
}

func TestRun_RejectsInvalidInput(t *testing.T) {
	_, err := Run(config.AlgorithmSJN, 0, nil)
	assert.ErrorIs(t, err, ErrNoProcesses)

	_, err = Run(config.AlgorithmSRT, 0, procs(spec(0, 0, 0)))
	assert.ErrorIs(t, err, ErrInvalidBurst)

	_, err = Run(config.AlgorithmNPP, 0, procs(spec(-1, 2, 0)))
	assert.ErrorIs(t, err, ErrNegativeArrival)

	_, err = Run(config.AlgorithmRR, 0, procs(spec(0, 2, 0)))
	assert.ErrorIs(t, err, ErrInvalidQuantum)
}

// TestPolicies_Properties checks the shared timeline and metric invariants
// over random workloads for every policy.
func TestPolicies_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(8)
		specs := make([]config.ProcessSpec, n)
		for i := range specs {
			specs[i] = spec(rng.Intn(15), 1+rng.Intn(6), rng.Intn(4))
		}
		processes := NewProcesses(specs)
		quantum := 1 + rng.Intn(4)

		for _, alg := range config.Algorithms {
			result := run(t, alg, quantum, processes)

			timeline := &Timeline{segments: result.Timeline}
			require.NoError(t, timeline.Validate(), "%s round %d", alg, round)
			require.Equal(t, 0, result.Timeline[0].Start)

			lastCompletion := 0
			for _, p := range result.Processes {
				assert.Equal(t, p.BurstTime, timeline.RunTime(p.ID), "%s P%d run time", alg, p.ID)
				assert.Equal(t, p.TurnaroundTime-p.BurstTime, p.WaitingTime)
				assert.GreaterOrEqual(t, p.WaitingTime, 0)
				assert.Equal(t, p.ArrivalTime+p.TurnaroundTime, p.CompletionTime)
				assert.GreaterOrEqual(t, p.ResponseTime, 0)
				assert.LessOrEqual(t, p.ResponseTime, p.WaitingTime)
				if p.CompletionTime > lastCompletion {
					lastCompletion = p.CompletionTime
				}
			}
			assert.Equal(t, lastCompletion, timeline.End())
			assert.Equal(t, timeline.IdleTime(), result.Metrics.IdleTime)
		}
	}
}

func TestRoundRobin_NewArrivalsBeforePreempted(t *testing.T) {
	// P2 and P3 arrive during P1's first slice; both must run before P1 again.
	result := run(t, config.AlgorithmRR, 3, procs(spec(0, 6, 0), spec(1, 2, 0), spec(2, 2, 0)))

	assert.Equal(t, []Segment{seg(1, 0, 3), seg(2, 3, 5), seg(3, 5, 7), seg(1, 7, 10)}, result.Timeline)
}
