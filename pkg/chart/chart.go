package chart

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

const (
	chartWidth  = 80
	chartHeight = 20
	idleLabel   = "IDLE"
)

// Generator generates ASCII charts
type Generator struct {
	width  int
	height int
}

// NewGenerator creates a new chart generator
func NewGenerator() *Generator {
	return &Generator{
		width:  chartWidth,
		height: chartHeight,
	}
}

func (g *Generator) writeHeader(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(BoldCyan(title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")
}

func processNames(processes []simulation.Process) map[int]string {
	names := make(map[int]string, len(processes)+1)
	names[simulation.IdleID] = idleLabel
	for _, p := range processes {
		names[p.ID] = p.Name
	}
	return names
}

// GenerateGantt renders the timeline as a row of labelled cells with the
// segment boundaries printed underneath.
func (g *Generator) GenerateGantt(result *simulation.Result) string {
	var sb strings.Builder
	g.writeHeader(&sb, "Gantt Chart - "+result.Algorithm.Title())

	if len(result.Timeline) == 0 {
		sb.WriteString("No segments to display\n")
		return sb.String()
	}

	names := processNames(result.Processes)

	var bar strings.Builder
	bar.WriteString("|")
	axis := []rune(strconv.Itoa(result.Timeline[0].Start))
	boundary := 0

	for _, seg := range result.Timeline {
		label := names[seg.ProcessID]
		labelLen := utf8.RuneCountInString(label)
		end := strconv.Itoa(seg.End)

		// The cell must fit both the label and the end time printed below it
		width := labelLen + 2
		if w := len(end) + 1; w > width {
			width = w
		}
		left := (width - labelLen) / 2
		right := width - labelLen - left

		bar.WriteString(strings.Repeat(" ", left))
		bar.WriteString(processColor(seg.ProcessID)(label))
		bar.WriteString(strings.Repeat(" ", right))
		bar.WriteString("|")

		boundary += width + 1
		for len(axis) < boundary {
			axis = append(axis, ' ')
		}
		axis = append(axis, []rune(end)...)
	}

	sb.WriteString(bar.String())
	sb.WriteString("\n")
	sb.WriteString(string(axis))
	sb.WriteString("\n")

	if result.Quantum > 0 {
		sb.WriteString(Dim(fmt.Sprintf("\nTime quantum: %d\n", result.Quantum)))
	}
	sb.WriteString("\n")

	return sb.String()
}

// GenerateMetricsTable renders per-process times in completion order with the
// averages in the footer, followed by the CPU-level figures.
func (g *Generator) GenerateMetricsTable(result *simulation.Result) string {
	var sb strings.Builder
	g.writeHeader(&sb, "Process Metrics")

	byID := make(map[int]simulation.Process, len(result.Processes))
	for _, p := range result.Processes {
		byID[p.ID] = p
	}

	table := tablewriter.NewWriter(&sb)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Priority", "Start", "Completion", "Turnaround", "Waiting", "Response"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, id := range result.CompletionOrder {
		p := byID[id]
		table.Append([]string{
			p.Name,
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.StartTime),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.TurnaroundTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.ResponseTime),
		})
	}

	m := result.Metrics
	table.SetFooter([]string{"Average", "", "", "", "", "",
		fmt.Sprintf("%.2f", m.AverageTurnaroundTime),
		fmt.Sprintf("%.2f", m.AverageWaitingTime),
		fmt.Sprintf("%.2f", m.AverageResponseTime),
	})
	table.Render()

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Makespan:        %d\n", m.Makespan))
	sb.WriteString(fmt.Sprintf("Busy time:       %d\n", m.BusyTime))
	sb.WriteString(fmt.Sprintf("Idle time:       %d\n", m.IdleTime))
	sb.WriteString(fmt.Sprintf("CPU utilization: %.2f%%\n", m.CPUUtilization*100))
	sb.WriteString(fmt.Sprintf("Throughput:      %.3f processes/unit\n", m.Throughput))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateQueueChart generates an ASCII chart showing the ready queue length
// and CPU occupancy over time
func (g *Generator) GenerateQueueChart(timePoints []simulation.TimePoint) string {
	if len(timePoints) == 0 {
		return "No data to display"
	}

	var sb strings.Builder
	g.writeHeader(&sb, "Ready Queue Over Time")

	plotWidth := g.width - 6
	columns := len(timePoints)
	if columns > plotWidth {
		columns = plotWidth
	}

	// Long runs are sampled down to the plot width
	pointAt := func(x int) simulation.TimePoint {
		if len(timePoints) <= plotWidth {
			return timePoints[x]
		}
		pointIndex := int(float64(x) / float64(plotWidth-1) * float64(len(timePoints)-1))
		if pointIndex >= len(timePoints) {
			pointIndex = len(timePoints) - 1
		}
		return timePoints[pointIndex]
	}

	maxReady := 0
	for _, tp := range timePoints {
		if tp.Ready > maxReady {
			maxReady = tp.Ready
		}
	}
	if maxReady > g.height {
		maxReady = g.height
	}

	// Draw ready queue rows (maxReady down to 1)
	for row := maxReady; row >= 1; row-- {
		sb.WriteString(fmt.Sprintf("%3d |", row))
		for x := 0; x < columns; x++ {
			if pointAt(x).Ready >= row {
				sb.WriteString("*")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	if maxReady > 0 {
		sb.WriteString("    ")
		sb.WriteString(strings.Repeat("-", columns+1))
		sb.WriteString("\n")
	}

	// CPU occupancy row
	sb.WriteString("CPU |")
	for x := 0; x < columns; x++ {
		if pointAt(x).Running == simulation.IdleID {
			sb.WriteString(".")
		} else {
			sb.WriteString("█")
		}
	}
	sb.WriteString("\n")

	// X-axis
	sb.WriteString("    +")
	sb.WriteString(strings.Repeat("-", columns))
	sb.WriteString("\n")

	// X-axis labels - a time mark every 10 columns
	labelLine := make([]rune, columns)
	for i := range labelLine {
		labelLine[i] = ' '
	}
	for x := 0; x < columns; x += 10 {
		marker := strconv.Itoa(pointAt(x).Time)
		if x+len(marker) > columns {
			break
		}
		for i, ch := range marker {
			labelLine[x+i] = ch
		}
	}
	sb.WriteString("     ")
	sb.WriteString(strings.TrimRight(string(labelLine), " "))
	sb.WriteString("\n")

	// Legend
	sb.WriteString("\n")
	sb.WriteString("Legend:\n")
	sb.WriteString("    * - Process ready but not running\n")
	sb.WriteString("    █ - CPU busy\n")
	sb.WriteString("    . - CPU idle\n")
	if len(timePoints) > plotWidth {
		sb.WriteString(fmt.Sprintf("  (%d time units sampled to %d columns)\n", len(timePoints), plotWidth))
	}
	sb.WriteString("\n")

	return sb.String()
}

// GenerateEventSummary generates a summary of events
func (g *Generator) GenerateEventSummary(events []simulation.Event) string {
	var sb strings.Builder
	g.writeHeader(&sb, "Event Summary")

	// Group events by type
	eventsByType := make(map[simulation.EventType]int)
	for _, event := range events {
		eventsByType[event.Type]++
	}

	sb.WriteString(fmt.Sprintf("Total Events: %d\n", len(events)))
	sb.WriteString(fmt.Sprintf("  - Arrivals: %d\n", eventsByType[simulation.EventTypeArrival]))
	sb.WriteString(fmt.Sprintf("  - Dispatches: %d\n", eventsByType[simulation.EventTypeDispatch]))
	sb.WriteString(fmt.Sprintf("  - Preemptions: %d\n", eventsByType[simulation.EventTypePreempt]))
	sb.WriteString(fmt.Sprintf("  - Completions: %d\n", eventsByType[simulation.EventTypeComplete]))
	sb.WriteString(fmt.Sprintf("  - Idle periods: %d\n", eventsByType[simulation.EventTypeIdle]))
	sb.WriteString(fmt.Sprintf("  - Long waits: %d\n", eventsByType[simulation.EventTypeLongWait]))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateWarnings generates a list of warnings
func (g *Generator) GenerateWarnings(warnings []simulation.Event) string {
	var sb strings.Builder
	g.writeHeader(&sb, "Warnings")

	if len(warnings) == 0 {
		sb.WriteString(Green("No warnings!"))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, warning := range warnings {
		sb.WriteString(fmt.Sprintf("[t=%4d] %s\n", warning.Time, Yellow(warning.Message)))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total Warnings: %d\n", len(warnings)))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateDetailedTimeline generates a detailed timeline of events
func (g *Generator) GenerateDetailedTimeline(events []simulation.Event, limit int) string {
	var sb strings.Builder

	title := "Detailed Timeline"
	if limit > 0 && limit < len(events) {
		title += fmt.Sprintf(" (showing first %d events)", limit)
	}
	g.writeHeader(&sb, title)

	displayCount := len(events)
	if limit > 0 && limit < displayCount {
		displayCount = limit
	}

	for i := 0; i < displayCount; i++ {
		event := events[i]

		typeIcon := " "
		switch event.Type {
		case simulation.EventTypeArrival:
			typeIcon = "A"
		case simulation.EventTypeDispatch:
			typeIcon = "+"
		case simulation.EventTypePreempt:
			typeIcon = "~"
		case simulation.EventTypeComplete:
			typeIcon = "-"
		case simulation.EventTypeIdle:
			typeIcon = "."
		case simulation.EventTypeLongWait:
			typeIcon = "!"
		}

		sb.WriteString(fmt.Sprintf("[t=%4d] %s %s\n", event.Time, typeIcon, event.Message))
	}

	if limit > 0 && limit < len(events) {
		sb.WriteString(fmt.Sprintf("\n... and %d more events\n", len(events)-limit))
	}

	sb.WriteString("\n")

	return sb.String()
}

// GenerateComparison renders the aggregate figures of several runs side by side.
func (g *Generator) GenerateComparison(results []*simulation.Result) string {
	var sb strings.Builder
	g.writeHeader(&sb, "Policy Comparison")

	if len(results) == 0 {
		sb.WriteString("No results to compare\n")
		return sb.String()
	}

	best := 0
	for i, r := range results {
		if r.Metrics.AverageWaitingTime < results[best].Metrics.AverageWaitingTime {
			best = i
		}
	}

	table := tablewriter.NewWriter(&sb)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Avg Turnaround", "Avg Waiting", "Avg Response", "Makespan", "Utilization", "Throughput"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, r := range results {
		name := r.Algorithm.Title()
		if r.Quantum > 0 {
			name += fmt.Sprintf(" q=%d", r.Quantum)
		}
		m := r.Metrics
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f", m.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", m.AverageWaitingTime),
			fmt.Sprintf("%.2f", m.AverageResponseTime),
			strconv.Itoa(m.Makespan),
			fmt.Sprintf("%.2f%%", m.CPUUtilization*100),
			fmt.Sprintf("%.3f", m.Throughput),
		})
	}
	table.Render()

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Lowest average waiting time: %s\n", BoldYellow(results[best].Algorithm.Title())))
	sb.WriteString("\n")

	return sb.String()
}
