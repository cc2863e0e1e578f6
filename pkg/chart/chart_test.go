package chart

import (
	"os"
	"strings"
	"testing"

	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetNoColor(true)
	os.Exit(m.Run())
}

func mustRun(t *testing.T, alg config.Algorithm, quantum int, specs ...config.ProcessSpec) *simulation.Result {
	t.Helper()
	result, err := simulation.Run(alg, quantum, simulation.NewProcesses(specs))
	require.NoError(t, err)
	return result
}

func sjnExample(t *testing.T) *simulation.Result {
	return mustRun(t, config.AlgorithmSJN, 0,
		config.ProcessSpec{Arrival: 0, Burst: 5},
		config.ProcessSpec{Arrival: 1, Burst: 3},
		config.ProcessSpec{Arrival: 2, Burst: 1},
	)
}

func TestGenerateGantt(t *testing.T) {
	out := NewGenerator().GenerateGantt(sjnExample(t))

	assert.Contains(t, out, "Gantt Chart - Shortest Job Next (SJN)")
	assert.Contains(t, out, "| P1 | P3 | P2 |")
	assert.Contains(t, out, "0    5    6    9")
	assert.NotContains(t, out, "Time quantum")
}

func TestGenerateGantt_IdleAndQuantum(t *testing.T) {
	result := mustRun(t, config.AlgorithmRR, 2,
		config.ProcessSpec{Name: "db", Arrival: 3, Burst: 4},
	)
	out := NewGenerator().GenerateGantt(result)

	assert.Contains(t, out, "| IDLE | db |")
	assert.Contains(t, out, "Time quantum: 2")
}

func TestGenerateGantt_Empty(t *testing.T) {
	out := NewGenerator().GenerateGantt(&simulation.Result{Algorithm: config.AlgorithmSRT})
	assert.Contains(t, out, "No segments to display")
}

func TestGenerateMetricsTable(t *testing.T) {
	out := NewGenerator().GenerateMetricsTable(sjnExample(t))

	for _, want := range []string{"Process", "Turnaround", "Response", "Average", "5.67", "2.67", "Makespan:        9", "CPU utilization: 100.00%"} {
		assert.Contains(t, out, want)
	}

	// rows follow completion order
	p3 := strings.Index(out, "P3")
	p2 := strings.Index(out, "P2")
	require.Positive(t, p3)
	assert.Less(t, p3, p2)
}

func TestGenerateQueueChart(t *testing.T) {
	points := []simulation.TimePoint{
		{Time: 0, Running: simulation.IdleID, Ready: 0},
		{Time: 1, Running: 1, Ready: 2},
		{Time: 2, Running: 1, Ready: 1},
	}
	out := NewGenerator().GenerateQueueChart(points)

	assert.Contains(t, out, "  2 | *")
	assert.Contains(t, out, "  1 | **")
	assert.Contains(t, out, "CPU |.██")
	assert.NotContains(t, out, "sampled")

	assert.Equal(t, "No data to display", NewGenerator().GenerateQueueChart(nil))
}

func TestGenerateQueueChart_Sampled(t *testing.T) {
	points := make([]simulation.TimePoint, 200)
	for i := range points {
		points[i] = simulation.TimePoint{Time: i, Running: 1}
	}
	out := NewGenerator().GenerateQueueChart(points)

	assert.Contains(t, out, "(200 time units sampled to 74 columns)")
	assert.Contains(t, out, "CPU |"+strings.Repeat("█", 74)+"\n")
}

func TestGenerateEventSummaryAndWarnings(t *testing.T) {
	cfg := &config.Config{
		Algorithm:            config.AlgorithmSJN,
		WaitWarningThreshold: 4,
		Processes: []config.ProcessSpec{
			{Arrival: 0, Burst: 5},
			{Arrival: 1, Burst: 3},
			{Arrival: 2, Burst: 1},
		},
	}
	sim := simulation.NewSimulator(cfg, nil)
	require.NoError(t, sim.Run())

	g := NewGenerator()
	summary := g.GenerateEventSummary(sim.GetEvents())
	assert.Contains(t, summary, "Total Events: 10")
	assert.Contains(t, summary, "  - Completions: 3")
	assert.Contains(t, summary, "  - Long waits: 1")

	warnings := g.GenerateWarnings(sim.GetWarnings())
	assert.Contains(t, warnings, "[t=   9] P2 waited 5 units (threshold 4)")
	assert.Contains(t, warnings, "Total Warnings: 1")

	assert.Contains(t, g.GenerateWarnings(nil), "No warnings!")
}

func TestGenerateDetailedTimeline(t *testing.T) {
	events := []simulation.Event{
		{Time: 0, Type: simulation.EventTypeArrival, Message: "P1 arrived (burst 2)"},
		{Time: 0, Type: simulation.EventTypeDispatch, Message: "P1 dispatched"},
		{Time: 2, Type: simulation.EventTypeComplete, Message: "P1 completed"},
	}
	g := NewGenerator()

	out := g.GenerateDetailedTimeline(events, 2)
	assert.Contains(t, out, "Detailed Timeline (showing first 2 events)")
	assert.Contains(t, out, "[t=   0] + P1 dispatched")
	assert.NotContains(t, out, "P1 completed")
	assert.Contains(t, out, "... and 1 more events")

	out = g.GenerateDetailedTimeline(events, 0)
	assert.Contains(t, out, "[t=   2] - P1 completed")
	assert.NotContains(t, out, "more events")
}

func TestGenerateComparison(t *testing.T) {
	specs := []config.ProcessSpec{
		{Arrival: 0, Burst: 8, Priority: 1},
		{Arrival: 1, Burst: 1, Priority: 2},
		{Arrival: 2, Burst: 1, Priority: 3},
	}
	results, err := simulation.Compare(2, simulation.NewProcesses(specs))
	require.NoError(t, err)

	out := NewGenerator().GenerateComparison(results)
	assert.Contains(t, out, "Policy Comparison")
	assert.Contains(t, out, "Round Robin (RR) q=2")
	assert.Contains(t, out, "Lowest average waiting time: Shortest Remaining Time (SRT)")

	assert.Contains(t, NewGenerator().GenerateComparison(nil), "No results to compare")
}
