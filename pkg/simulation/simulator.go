package simulation

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/log"
)

// Result is the outcome of one policy run.
type Result struct {
	Algorithm       config.Algorithm `json:"algorithm" yaml:"algorithm"`
	Quantum         int              `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Processes       []Process        `json:"processes" yaml:"processes"`
	Timeline        []Segment        `json:"timeline" yaml:"timeline"`
	CompletionOrder []int            `json:"completion_order" yaml:"completionOrder"`
	Metrics         Metrics          `json:"metrics" yaml:"metrics"`
}

// Run simulates alg over fresh copies of processes. The input slice is not
// modified. quantum is only used by round robin.
func Run(alg config.Algorithm, quantum int, processes []Process) (*Result, error) {
	policy, err := NewPolicy(alg, quantum)
	if err != nil {
		return nil, err
	}
	if err := Validate(processes); err != nil {
		return nil, err
	}

	arena := cloneProcesses(processes)
	timeline := policy.Schedule(arena)
	if err := checkInvariants(arena, timeline); err != nil {
		return nil, fmt.Errorf("%s: %w", alg, err)
	}

	metrics, err := Aggregate(arena)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Algorithm:       alg,
		Processes:       arena,
		Timeline:        timeline.Segments(),
		CompletionOrder: completionOrder(arena),
		Metrics:         *metrics,
	}
	if alg == config.AlgorithmRR {
		result.Quantum = quantum
	}
	return result, nil
}

// Compare runs every policy over the same processes.
func Compare(quantum int, processes []Process) ([]*Result, error) {
	results := make([]*Result, 0, len(config.Algorithms))
	for _, alg := range config.Algorithms {
		result, err := Run(alg, quantum, processes)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func completionOrder(processes []Process) []int {
	order := make([]int, len(processes))
	for i := range processes {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return processes[order[a]].CompletionTime < processes[order[b]].CompletionTime
	})
	ids := make([]int, len(order))
	for i, idx := range order {
		ids[i] = processes[idx].ID
	}
	return ids
}

// Simulator runs a workload under the policy named in its configuration
type Simulator struct {
	config     *config.Config
	logger     *slog.Logger
	result     *Result
	events     []Event
	timePoints []TimePoint
}

// NewSimulator creates a new simulator. A nil logger discards output.
func NewSimulator(cfg *config.Config, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = log.Discard()
	}
	return &Simulator{
		config:     cfg,
		logger:     logger,
		events:     []Event{},
		timePoints: []TimePoint{},
	}
}

// Run executes the simulation
func (s *Simulator) Run() error {
	if s.config.Algorithm == "" {
		return fmt.Errorf("%w: no algorithm selected", ErrUnknownAlgorithm)
	}
	s.result = nil
	s.events = []Event{}
	s.timePoints = []TimePoint{}

	processes := NewProcesses(s.config.Workload())
	s.logger.Info("simulation started",
		log.StringAttr("algorithm", string(s.config.Algorithm)),
		log.IntAttr("processes", len(processes)),
		log.IntAttr("quantum", s.config.Quantum),
	)

	result, err := Run(s.config.Algorithm, s.config.Quantum, processes)
	if err != nil {
		s.logger.Error("simulation failed", log.ErrAttr(err))
		return err
	}
	s.result = result

	for _, seg := range result.Timeline {
		s.logger.Debug("segment",
			log.IntAttr("pid", seg.ProcessID),
			log.IntAttr("start", seg.Start),
			log.IntAttr("end", seg.End),
		)
	}

	// Derive events and time points for charting
	s.generateEvents()
	s.generateTimePoints()

	s.logger.Info("simulation finished",
		log.IntAttr("makespan", result.Metrics.Makespan),
		log.IntAttr("segments", len(result.Timeline)),
		log.IntAttr("warnings", len(s.GetWarnings())),
	)
	return nil
}

// generateEvents derives the event log from the finished timeline
func (s *Simulator) generateEvents() {
	processes := s.result.Processes
	byID := make(map[int]*Process, len(processes))
	for i := range processes {
		p := &processes[i]
		byID[p.ID] = p
		s.addEvent(Event{
			Time:      p.ArrivalTime,
			Type:      EventTypeArrival,
			ProcessID: p.ID,
			Message:   fmt.Sprintf("%s arrived (burst %d)", p.Name, p.BurstTime),
		})
	}

	for _, seg := range s.result.Timeline {
		if seg.IsIdle() {
			s.addEvent(Event{
				Time:      seg.Start,
				Type:      EventTypeIdle,
				ProcessID: IdleID,
				Message:   fmt.Sprintf("CPU idle until %d", seg.End),
			})
			continue
		}

		p := byID[seg.ProcessID]
		s.addEvent(Event{
			Time:      seg.Start,
			Type:      EventTypeDispatch,
			ProcessID: p.ID,
			Message:   fmt.Sprintf("%s dispatched", p.Name),
		})

		if seg.End == p.CompletionTime {
			s.addEvent(Event{
				Time:      seg.End,
				Type:      EventTypeComplete,
				ProcessID: p.ID,
				Message:   fmt.Sprintf("%s completed (turnaround %d, waiting %d)", p.Name, p.TurnaroundTime, p.WaitingTime),
			})
		} else {
			s.addEvent(Event{
				Time:      seg.End,
				Type:      EventTypePreempt,
				ProcessID: p.ID,
				Message:   fmt.Sprintf("%s preempted", p.Name),
			})
		}
	}

	// Check for processes that waited longer than the threshold
	if threshold := s.config.WaitWarningThreshold; threshold > 0 {
		for _, p := range processes {
			if p.WaitingTime > threshold {
				s.addEvent(Event{
					Time:      p.CompletionTime,
					Type:      EventTypeLongWait,
					ProcessID: p.ID,
					Message:   fmt.Sprintf("%s waited %d units (threshold %d)", p.Name, p.WaitingTime, threshold),
					IsWarning: true,
				})
			}
		}
	}

	sort.SliceStable(s.events, func(i, j int) bool {
		if s.events[i].Time != s.events[j].Time {
			return s.events[i].Time < s.events[j].Time
		}
		return s.events[i].rank() < s.events[j].rank()
	})
}

// generateTimePoints samples the CPU occupant and ready-queue length at every time unit
func (s *Simulator) generateTimePoints() {
	processes := s.result.Processes

	for _, seg := range s.result.Timeline {
		for t := seg.Start; t < seg.End; t++ {
			ready := 0
			for _, p := range processes {
				if p.ID != seg.ProcessID && p.ArrivalTime <= t && p.CompletionTime > t {
					ready++
				}
			}
			s.timePoints = append(s.timePoints, TimePoint{
				Time:    t,
				Running: seg.ProcessID,
				Ready:   ready,
			})
		}
	}
}

// addEvent adds an event to the event list
func (s *Simulator) addEvent(event Event) {
	s.events = append(s.events, event)
}

// GetResult returns the run outcome, or nil before a successful Run
func (s *Simulator) GetResult() *Result {
	return s.result
}

// GetEvents returns all events
func (s *Simulator) GetEvents() []Event {
	return s.events
}

// GetTimePoints returns all time points
func (s *Simulator) GetTimePoints() []TimePoint {
	return s.timePoints
}

// GetWarnings returns all warning events
func (s *Simulator) GetWarnings() []Event {
	warnings := []Event{}
	for _, event := range s.events {
		if event.IsWarning {
			warnings = append(warnings, event)
		}
	}
	return warnings
}
