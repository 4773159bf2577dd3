// Package mission tracks per-stage counters and evaluates stage completion.
package mission

// Event is a counted occurrence during a stage.
type Event int

const (
	EventGrowth Event = iota
	EventPoison
	EventGateUse
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventGrowth:
		return "growth"
	case EventPoison:
		return "poison"
	case EventGateUse:
		return "gate_use"
	default:
		return "unknown"
	}
}

// Thresholds are the per-stage minimums required to clear a stage.
type Thresholds struct {
	MinLength  int `json:"minLength"`
	MinGrowth  int `json:"minGrowth"`
	MinPoison  int `json:"minPoison"`
	MinGateUse int `json:"minGateUse"`
}

// State is a snapshot of the mission counters.
type State struct {
	Growth    int // Growth items eaten
	Poison    int // Poison items eaten
	GateUse   int // Gate passes
	Length    int // Length after the latest tick
	MaxLength int // Longest length seen this stage
}

// Progress reports which thresholds a state satisfies.
type Progress struct {
	Length, Growth, Poison, GateUse bool
}

// Done returns true when every threshold is met.
func (p Progress) Done() bool {
	return p.Length && p.Growth && p.Poison && p.GateUse
}

// Evaluate compares a state against the thresholds.
func (th Thresholds) Evaluate(s State) Progress {
	return Progress{
		Length:  s.Length >= th.MinLength,
		Growth:  s.Growth >= th.MinGrowth,
		Poison:  s.Poison >= th.MinPoison,
		GateUse: s.GateUse >= th.MinGateUse,
	}
}

// Tracker accumulates mission counters for one stage.
type Tracker struct {
	state State
}

// NewTracker creates a tracker for an actor starting at the given length.
func NewTracker(initialLength int) *Tracker {
	t := &Tracker{}
	t.Reset(initialLength)
	return t
}

// Record increments the counter matching the event.
func (t *Tracker) Record(ev Event) {
	switch ev {
	case EventGrowth:
		t.state.Growth++
	case EventPoison:
		t.state.Poison++
	case EventGateUse:
		t.state.GateUse++
	}
}

// Observe stores the actor's current length and raises the maximum.
func (t *Tracker) Observe(length int) {
	t.state.Length = length
	if length > t.state.MaxLength {
		t.state.MaxLength = length
	}
}

// IsComplete returns true when the thresholds are met by the current counters.
func (t *Tracker) IsComplete(th Thresholds) bool {
	return th.Evaluate(t.state).Done()
}

// State returns a copy of the counters.
func (t *Tracker) State() State {
	return t.state
}

// Reset clears all counters for a new stage.
func (t *Tracker) Reset(initialLength int) {
	t.state = State{Length: initialLength, MaxLength: initialLength}
}
