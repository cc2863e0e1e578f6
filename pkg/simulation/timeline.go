package simulation

import "fmt"

// IdleID is the occupant of a segment during which no process runs.
const IdleID = -1

// Segment is one interval [Start, End) of the CPU timeline.
type Segment struct {
	ProcessID int `json:"process_id" yaml:"processId"`
	Start     int `json:"start" yaml:"start"`
	End       int `json:"end" yaml:"end"`
}

// IsIdle reports whether the segment is an idle gap.
func (s Segment) IsIdle() bool {
	return s.ProcessID == IdleID
}

// Duration returns the length of the segment.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// extend moves the end of the segment forward to end.
func (s *Segment) extend(end int) {
	s.End = end
}

// Timeline is an append-only Gantt record. Appending a segment that continues
// the last one with the same occupant extends it instead of adding a new one.
type Timeline struct {
	segments []Segment
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{segments: []Segment{}}
}

// Append adds [start, end) for occupant. Empty intervals are ignored.
func (t *Timeline) Append(occupant, start, end int) {
	if end <= start {
		return
	}
	if n := len(t.segments); n > 0 {
		last := &t.segments[n-1]
		if last.ProcessID == occupant && last.End == start {
			last.extend(end)
			return
		}
	}
	t.segments = append(t.segments, Segment{ProcessID: occupant, Start: start, End: end})
}

// Idle appends an idle gap [start, end).
func (t *Timeline) Idle(start, end int) {
	t.Append(IdleID, start, end)
}

// End returns the end of the last segment, or 0 for an empty timeline.
func (t *Timeline) End() int {
	if len(t.segments) == 0 {
		return 0
	}
	return t.segments[len(t.segments)-1].End
}

// Segments returns a copy of the recorded segments.
func (t *Timeline) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Len returns the number of segments.
func (t *Timeline) Len() int {
	return len(t.segments)
}

// IdleTime returns the total length of the idle segments.
func (t *Timeline) IdleTime() int {
	idle := 0
	for _, s := range t.segments {
		if s.IsIdle() {
			idle += s.Duration()
		}
	}
	return idle
}

// RunTime returns the total time scheduled for processID.
func (t *Timeline) RunTime(processID int) int {
	total := 0
	for _, s := range t.segments {
		if s.ProcessID == processID {
			total += s.Duration()
		}
	}
	return total
}

// OccupantAt returns the occupant at time tick, or IdleID if tick is outside
// the timeline.
func (t *Timeline) OccupantAt(tick int) int {
	for _, s := range t.segments {
		if tick >= s.Start && tick < s.End {
			return s.ProcessID
		}
	}
	return IdleID
}

// Validate checks that segments are non-empty, contiguous and coalesced.
func (t *Timeline) Validate() error {
	for i, s := range t.segments {
		if s.Start >= s.End {
			return fmt.Errorf("segment %d [%d,%d) is empty", i, s.Start, s.End)
		}
		if i == 0 {
			continue
		}
		prev := t.segments[i-1]
		if prev.End != s.Start {
			return fmt.Errorf("segment %d starts at %d but previous ends at %d", i, s.Start, prev.End)
		}
		if prev.ProcessID == s.ProcessID {
			return fmt.Errorf("segments %d and %d share occupant %d and were not merged", i-1, i, s.ProcessID)
		}
	}
	return nil
}
