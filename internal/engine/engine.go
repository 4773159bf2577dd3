// Package engine resolves one discrete simulation tick of the stage: input,
// movement, gates, collisions, item effects and mission evaluation.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/samdwyer/snakestage/internal/entity"
	"github.com/samdwyer/snakestage/internal/item"
	"github.com/samdwyer/snakestage/internal/mission"
	"github.com/samdwyer/snakestage/internal/world"
)

// ErrStartBlocked is returned when the actor's spawn cells are not free.
var ErrStartBlocked = errors.New("actor spawn cells are not empty")

// Config holds the stage-independent tick rules.
type Config struct {
	Start          world.Position  // Head position at stage start
	StartDirection world.Direction // Initial travel direction
	InitialLength  int             // Body length at stage start
	PoisonShrink   int             // Tail segments removed by a poison item
	PermissiveTail bool            // Allow moving into the cell the tail is leaving
	Items          item.Config
}

// DefaultConfig returns the standard spawn and tick rules.
func DefaultConfig() Config {
	return Config{
		Start:          world.Position{Row: 10, Col: 10},
		StartDirection: world.DirRight,
		InitialLength:  entity.MinLength,
		PoisonShrink:   2,
		Items:          item.DefaultConfig(),
	}
}

// Rules are the per-stage completion and failure limits.
type Rules struct {
	Thresholds mission.Thresholds
	MaxLength  int // Reaching this length ends the run; 0 disables the cap
}

// Result is the outcome of one tick.
type Result struct {
	Outcome   Outcome
	Reason    Reason          // Set when Outcome is OutcomeTerminated
	Phase     Phase           // Last phase reached
	Events    []mission.Event // Mission events recorded this tick
	Relocated []item.Kind     // Items placed by expiry this tick
	Tick      uint64
}

// Snapshot is a read-only copy of the stage for rendering.
type Snapshot struct {
	Grid      *world.Grid
	Body      []world.Position // Head first
	Direction world.Direction
	Gates     world.GatePair
	Mission   mission.State
	Rules     Rules
	Tick      uint64
}

// Engine owns all mutable stage state and advances it one tick at a time.
// It is not safe for concurrent use.
type Engine struct {
	cfg     Config
	rules   Rules
	grid    *world.Grid
	actor   *entity.Actor
	gates   world.GatePair
	items   *item.Scheduler
	tracker *mission.Tracker

	phase Phase
	tick  uint64
	final *Result
}

// New prepares a stage: it copies the grid, places the gate pair, spawns the
// actor and the first items.
func New(grid *world.Grid, rules Rules, cfg Config, rng *rand.Rand, now time.Time) (*Engine, error) {
	g := grid.Clone()

	actor := entity.NewActor(cfg.Start, cfg.StartDirection, cfg.InitialLength)
	for _, p := range actor.Body() {
		if g.TileAt(p) != world.TileEmpty {
			return nil, fmt.Errorf("%w: %v is %v", ErrStartBlocked, p, g.TileAt(p))
		}
	}

	gates, err := world.PlaceGates(g, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to place gates: %w", err)
	}

	items := item.NewScheduler(cfg.Items, rng)
	items.Spawn(g, actor.Body(), now)

	return &Engine{
		cfg:     cfg,
		rules:   rules,
		grid:    g,
		actor:   actor,
		gates:   gates,
		items:   items,
		tracker: mission.NewTracker(actor.Len()),
		phase:   PhaseAwaitingTick,
	}, nil
}

// Phase returns the phase the last tick stopped in.
func (e *Engine) Phase() Phase { return e.phase }

// Gates returns the stage's gate pair.
func (e *Engine) Gates() world.GatePair { return e.gates }

// Done returns true once a tick has terminated the run or completed the stage.
func (e *Engine) Done() bool { return e.final != nil }

// Snapshot copies the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:      e.grid.Clone(),
		Body:      e.actor.Body(),
		Direction: e.actor.Direction(),
		Gates:     e.gates,
		Mission:   e.tracker.State(),
		Rules:     e.rules,
		Tick:      e.tick,
	}
}

// Step runs one complete tick with the given input command. Once the run has
// terminated or the stage is complete, further calls return the same result.
func (e *Engine) Step(cmd Command, now time.Time) Result {
	if e.final != nil {
		return *e.final
	}
	e.tick++
	res := Result{Tick: e.tick}

	// Awaiting tick: consume the input command.
	e.phase = PhaseAwaitingTick
	if cmd == CommandQuit {
		return e.terminate(res, ReasonQuit)
	}
	if d, ok := cmd.Direction(); ok {
		if err := e.actor.SetDirection(d); err != nil {
			return e.terminate(res, ReasonOppositeDirection)
		}
	}

	e.phase = PhaseHeadComputed
	head := e.actor.ProposeHead(e.actor.Direction())
	if !e.grid.InBounds(head) {
		return e.terminate(res, ReasonOutOfBounds)
	}

	e.phase = PhaseGateResolved
	tile := e.grid.TileAt(head)
	usedGate := false
	if tile == world.TileGate {
		exit, dir, ok := e.gates.ResolveEntry(e.grid, head, e.actor.Direction())
		if !ok {
			return e.terminate(res, ReasonGateBlocked)
		}
		e.actor.Redirect(dir)
		head = exit
		tile = e.grid.TileAt(head)
		usedGate = true
	}

	e.phase = PhaseCollisionChecked
	if tile.Blocks() {
		return e.terminate(res, ReasonWallCollision)
	}
	// A growth tick keeps the tail in place, so it is never vacated.
	excludeTail := e.cfg.PermissiveTail && tile != world.TileGrowth
	if e.actor.Occupies(head, excludeTail) {
		return e.terminate(res, ReasonSelfCollision)
	}

	e.phase = PhaseEffectApplied
	switch tile {
	case world.TileGrowth:
		e.actor.Commit(head, entity.Grow())
		e.consume(&res, head, item.KindGrowth, mission.EventGrowth, now)
	case world.TilePoison:
		e.actor.Commit(head, entity.Shrink(e.cfg.PoisonShrink))
		e.consume(&res, head, item.KindPoison, mission.EventPoison, now)
	default:
		e.actor.Commit(head, entity.Normal())
	}
	if usedGate {
		e.record(&res, mission.EventGateUse)
	}
	if !e.actor.IsAlive() {
		return e.terminate(res, ReasonTooShort)
	}

	e.phase = PhaseMissionEvaluated
	e.tracker.Observe(e.actor.Len())
	switch {
	case e.tracker.IsComplete(e.rules.Thresholds):
		res.Outcome = OutcomeStageComplete
	case e.rules.MaxLength > 0 && e.actor.Len() >= e.rules.MaxLength:
		return e.terminate(res, ReasonMaxLength)
	default:
		res.Outcome = OutcomeContinue
	}

	e.phase = PhaseCommitted
	res.Phase = e.phase
	res.Relocated = e.items.Tick(e.grid, e.actor.Body(), now)
	if res.Outcome == OutcomeStageComplete {
		e.final = &res
	}
	return res
}

// consume clears an eaten item from the grid, respawns it and records the event.
func (e *Engine) consume(res *Result, at world.Position, k item.Kind, ev mission.Event, now time.Time) {
	e.grid.SetTile(at, world.TileEmpty)
	e.items.OnConsumed(e.grid, k, e.actor.Body(), now)
	e.record(res, ev)
}

func (e *Engine) record(res *Result, ev mission.Event) {
	e.tracker.Record(ev)
	res.Events = append(res.Events, ev)
}

// terminate ends the run at the current phase.
func (e *Engine) terminate(res Result, reason Reason) Result {
	res.Outcome = OutcomeTerminated
	res.Reason = reason
	res.Phase = e.phase
	e.final = &res
	return res
}
