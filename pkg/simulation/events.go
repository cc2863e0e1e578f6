package simulation

// EventType defines the type of event in the simulation
type EventType string

const (
	EventTypeArrival  EventType = "arrival"
	EventTypeDispatch EventType = "dispatch"
	EventTypePreempt  EventType = "preempt"
	EventTypeComplete EventType = "complete"
	EventTypeIdle     EventType = "idle"
	EventTypeLongWait EventType = "long-wait"
)

// Event represents a point-in-time event in the simulation
type Event struct {
	Time      int       `json:"time" yaml:"time"`
	Type      EventType `json:"type" yaml:"type"`
	ProcessID int       `json:"process_id" yaml:"processId"`
	Message   string    `json:"message" yaml:"message"`
	IsWarning bool      `json:"is_warning,omitempty" yaml:"isWarning,omitempty"`
}

// rank orders events that share a time: the CPU is released before new
// arrivals are announced, and arrivals before the next dispatch.
func (e Event) rank() int {
	switch e.Type {
	case EventTypePreempt, EventTypeComplete:
		return 0
	case EventTypeArrival:
		return 1
	case EventTypeIdle, EventTypeDispatch:
		return 2
	default:
		return 3
	}
}

// TimePoint represents the state at a specific point in time
type TimePoint struct {
	Time    int `json:"time" yaml:"time"`
	Running int `json:"running" yaml:"running"`
	Ready   int `json:"ready" yaml:"ready"`
}
