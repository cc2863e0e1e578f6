package simulation

// Metrics holds the aggregate figures of a completed run.
type Metrics struct {
	AverageTurnaroundTime float64 `json:"average_turnaround_time" yaml:"averageTurnaroundTime"`
	AverageWaitingTime    float64 `json:"average_waiting_time" yaml:"averageWaitingTime"`
	AverageResponseTime   float64 `json:"average_response_time" yaml:"averageResponseTime"`
	Makespan              int     `json:"makespan" yaml:"makespan"`
	BusyTime              int     `json:"busy_time" yaml:"busyTime"`
	IdleTime              int     `json:"idle_time" yaml:"idleTime"`
	CPUUtilization        float64 `json:"cpu_utilization" yaml:"cpuUtilization"`
	Throughput            float64 `json:"throughput" yaml:"throughput"`
}

// Aggregate reduces completed processes to averages. Records that have not
// completed are ignored; if none have, ErrNoCompletedProcesses is returned.
func Aggregate(processes []Process) (*Metrics, error) {
	var (
		count         int
		turnaroundSum int
		waitingSum    int
		responseSum   int
		busy          int
		makespan      int
	)

	for _, p := range processes {
		if !p.Completed() {
			continue
		}
		count++
		turnaroundSum += p.TurnaroundTime
		waitingSum += p.WaitingTime
		responseSum += p.ResponseTime
		busy += p.BurstTime
		if p.CompletionTime > makespan {
			makespan = p.CompletionTime
		}
	}

	if count == 0 {
		return nil, ErrNoCompletedProcesses
	}

	n := float64(count)
	m := &Metrics{
		AverageTurnaroundTime: float64(turnaroundSum) / n,
		AverageWaitingTime:    float64(waitingSum) / n,
		AverageResponseTime:   float64(responseSum) / n,
		Makespan:              makespan,
		BusyTime:              busy,
		IdleTime:              makespan - busy,
	}
	if makespan > 0 {
		m.CPUUtilization = float64(busy) / float64(makespan)
		m.Throughput = n / float64(makespan)
	}
	return m, nil
}
