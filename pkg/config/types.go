package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config represents a workload file for the scheduling simulator
type Config struct {
	Algorithm            Algorithm       `yaml:"algorithm,omitempty"`
	Quantum              int             `yaml:"quantum,omitempty"`
	Horizon              int             `yaml:"horizon,omitempty"`
	WaitWarningThreshold int             `yaml:"waitWarningThreshold,omitempty"`
	Processes            []ProcessSpec   `yaml:"processes"`
	Recurring            []RecurringSpec `yaml:"recurring,omitempty"`
}

// ProcessSpec is the input definition of a single process.
// Arrival and burst are measured in simulated time units.
type ProcessSpec struct {
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Arrival  int    `yaml:"arrival" json:"arrival_time"`
	Burst    int    `yaml:"burst" json:"burst_time"`
	Priority int    `yaml:"priority,omitempty" json:"priority,omitempty"`
}

// RecurringSpec describes a process that arrives on a cron schedule.
// One time unit is one minute from the start of the simulated week.
type RecurringSpec struct {
	Name     string `yaml:"name"`
	Schedule string `yaml:"schedule"`
	Burst    int    `yaml:"burst"`
	Priority int    `yaml:"priority,omitempty"`
}

// Algorithm names a scheduling policy
type Algorithm string

const (
	AlgorithmSJN Algorithm = "sjn"
	AlgorithmNPP Algorithm = "npp"
	AlgorithmRR  Algorithm = "rr"
	AlgorithmSRT Algorithm = "srt"
)

// Algorithms lists every supported policy in menu order.
var Algorithms = []Algorithm{AlgorithmSJN, AlgorithmNPP, AlgorithmRR, AlgorithmSRT}

// ErrUnknownAlgorithm is returned for a policy name that is not supported.
var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

var algorithmAliases = map[string]Algorithm{
	"sjn":                     AlgorithmSJN,
	"sjf":                     AlgorithmSJN,
	"shortest-job-next":       AlgorithmSJN,
	"npp":                     AlgorithmNPP,
	"priority":                AlgorithmNPP,
	"non-preemptive-priority": AlgorithmNPP,
	"rr":                      AlgorithmRR,
	"round-robin":             AlgorithmRR,
	"srt":                     AlgorithmSRT,
	"srtf":                    AlgorithmSRT,
	"shortest-remaining-time": AlgorithmSRT,
}

// ParseAlgorithm resolves a policy name or one of its aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if alg, ok := algorithmAliases[key]; ok {
		return alg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Title returns the display name of the policy.
func (a Algorithm) Title() string {
	switch a {
	case AlgorithmSJN:
		return "Shortest Job Next (SJN)"
	case AlgorithmNPP:
		return "Non-Preemptive Priority (NPP)"
	case AlgorithmRR:
		return "Round Robin (RR)"
	case AlgorithmSRT:
		return "Shortest Remaining Time (SRT)"
	default:
		return string(a)
	}
}

// Preemptive reports whether the policy can interrupt a running process.
func (a Algorithm) Preemptive() bool {
	return a == AlgorithmRR || a == AlgorithmSRT
}
