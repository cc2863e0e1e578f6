package api

import (
	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

// ScheduleRequest is the body of the schedule and compare endpoints.
type ScheduleRequest struct {
	Quantum   int                  `json:"quantum"`
	Processes []config.ProcessSpec `json:"processes"`
}

// SegmentResponse is one timeline segment. Idle segments carry process_id -1.
type SegmentResponse struct {
	ProcessID int  `json:"process_id"`
	Start     int  `json:"start"`
	End       int  `json:"end"`
	Idle      bool `json:"idle"`
}

// ScheduleResponse is the outcome of one policy run.
type ScheduleResponse struct {
	Algorithm             config.Algorithm     `json:"algorithm"`
	Quantum               int                  `json:"quantum,omitempty"`
	Timeline              []SegmentResponse    `json:"timeline"`
	Processes             []simulation.Process `json:"processes"`
	CompletionOrder       []int                `json:"completion_order"`
	AverageTurnaroundTime float64              `json:"average_turnaround_time"`
	AverageWaitingTime    float64              `json:"average_waiting_time"`
	AverageResponseTime   float64              `json:"average_response_time"`
	CpuUtilization        float64              `json:"cpu_utilization"`
	Throughput            float64              `json:"throughput"`
	Makespan              int                  `json:"makespan"`
	IdleTime              int                  `json:"idle_time"`
}

// CompareResponse holds one ScheduleResponse per policy.
type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}

func newScheduleResponse(result *simulation.Result) ScheduleResponse {
	timeline := make([]SegmentResponse, len(result.Timeline))
	for i, seg := range result.Timeline {
		timeline[i] = SegmentResponse{
			ProcessID: seg.ProcessID,
			Start:     seg.Start,
			End:       seg.End,
			Idle:      seg.IsIdle(),
		}
	}

	m := result.Metrics
	return ScheduleResponse{
		Algorithm:             result.Algorithm,
		Quantum:               result.Quantum,
		Timeline:              timeline,
		Processes:             result.Processes,
		CompletionOrder:       result.CompletionOrder,
		AverageTurnaroundTime: m.AverageTurnaroundTime,
		AverageWaitingTime:    m.AverageWaitingTime,
		AverageResponseTime:   m.AverageResponseTime,
		CpuUtilization:        m.CPUUtilization,
		Throughput:            m.Throughput,
		Makespan:              m.Makespan,
		IdleTime:              m.IdleTime,
	}
}
