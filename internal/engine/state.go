package engine

import "github.com/samdwyer/snakestage/internal/world"

// Command is one input sample consumed at the start of a tick.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
)

// DirectionCommand returns the command steering toward d.
func DirectionCommand(d world.Direction) Command {
	switch d {
	case world.DirUp:
		return CommandUp
	case world.DirDown:
		return CommandDown
	case world.DirLeft:
		return CommandLeft
	default:
		return CommandRight
	}
}

// Direction returns the steering direction carried by the command, if any.
func (c Command) Direction() (world.Direction, bool) {
	switch c {
	case CommandUp:
		return world.DirUp, true
	case CommandDown:
		return world.DirDown, true
	case CommandLeft:
		return world.DirLeft, true
	case CommandRight:
		return world.DirRight, true
	default:
		return 0, false
	}
}

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Phase is a step of the per-tick state machine. A tick always runs from
// PhaseAwaitingTick to PhaseCommitted unless it terminates on the way.
type Phase int

const (
	PhaseAwaitingTick Phase = iota
	PhaseHeadComputed
	PhaseGateResolved
	PhaseCollisionChecked
	PhaseEffectApplied
	PhaseMissionEvaluated
	PhaseCommitted
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingTick:
		return "awaiting_tick"
	case PhaseHeadComputed:
		return "head_computed"
	case PhaseGateResolved:
		return "gate_resolved"
	case PhaseCollisionChecked:
		return "collision_checked"
	case PhaseEffectApplied:
		return "effect_applied"
	case PhaseMissionEvaluated:
		return "mission_evaluated"
	case PhaseCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// Outcome is what the outer loop should do after a tick.
type Outcome int

const (
	// OutcomeContinue means the run goes on with the next tick.
	OutcomeContinue Outcome = iota
	// OutcomeTerminated means the run ended; Result.Reason says why.
	OutcomeTerminated
	// OutcomeStageComplete means the stage mission was met this tick.
	OutcomeStageComplete
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeTerminated:
		return "terminated"
	case OutcomeStageComplete:
		return "stage_complete"
	default:
		return "unknown"
	}
}

// Reason explains a terminated run.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonQuit
	ReasonOppositeDirection
	ReasonOutOfBounds
	ReasonGateBlocked
	ReasonWallCollision
	ReasonSelfCollision
	ReasonTooShort
	ReasonMaxLength
)

// String returns a human-readable reason name.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonQuit:
		return "quit"
	case ReasonOppositeDirection:
		return "opposite_direction_input"
	case ReasonOutOfBounds:
		return "out_of_bounds"
	case ReasonGateBlocked:
		return "gate_blocked"
	case ReasonWallCollision:
		return "wall_collision"
	case ReasonSelfCollision:
		return "self_collision"
	case ReasonTooShort:
		return "too_short"
	case ReasonMaxLength:
		return "max_length"
	default:
		return "unknown"
	}
}

// Message returns the line shown to the player when a run ends for this reason.
func (r Reason) Message() string {
	switch r {
	case ReasonQuit:
		return "Quit."
	case ReasonOppositeDirection:
		return "Reversed into yourself!"
	case ReasonOutOfBounds:
		return "Left the map!"
	case ReasonGateBlocked:
		return "The gate exit was blocked!"
	case ReasonWallCollision:
		return "Hit a wall!"
	case ReasonSelfCollision:
		return "Bit your own tail!"
	case ReasonTooShort:
		return "Too short to survive!"
	case ReasonMaxLength:
		return "Max length reached!"
	default:
		return "Game over."
	}
}
