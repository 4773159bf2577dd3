// Package item schedules the perishable growth and poison items on a stage.
package item

import (
	"math/rand"
	"slices"
	"time"

	"github.com/samdwyer/snakestage/internal/world"
)

// DefaultLifetime is how long an untouched item stays before it moves.
const DefaultLifetime = 10 * time.Second

// Kind identifies one of the two item types.
type Kind int

const (
	KindGrowth Kind = iota
	KindPoison
)

// Kinds lists every item kind.
var Kinds = [2]Kind{KindGrowth, KindPoison}

// Tile returns the grid tile used to mark the item.
func (k Kind) Tile() world.Tile {
	if k == KindPoison {
		return world.TilePoison
	}
	return world.TileGrowth
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindGrowth:
		return "growth"
	case KindPoison:
		return "poison"
	default:
		return "unknown"
	}
}

// KindOf maps an item tile to its kind.
func KindOf(t world.Tile) (Kind, bool) {
	switch t {
	case world.TileGrowth:
		return KindGrowth, true
	case world.TilePoison:
		return KindPoison, true
	default:
		return 0, false
	}
}

// Config holds per-kind item lifetimes.
type Config struct {
	GrowthLifetime time.Duration
	PoisonLifetime time.Duration
}

// DefaultConfig returns the standard ten second lifetime for both kinds.
func DefaultConfig() Config {
	return Config{GrowthLifetime: DefaultLifetime, PoisonLifetime: DefaultLifetime}
}

// Slot tracks the single placed instance of one item kind.
type Slot struct {
	Pos       world.Position
	Placed    bool
	SpawnedAt time.Time
}

// Scheduler owns the lifecycle of both item kinds: spawn, pickup, expiry and
// relocation. It never holds the grid or actor; callers pass them per call.
type Scheduler struct {
	lifetimes [2]time.Duration
	slots     [2]Slot
	rng       *rand.Rand
}

// NewScheduler creates a scheduler with the given lifetimes and random source.
func NewScheduler(cfg Config, rng *rand.Rand) *Scheduler {
	return &Scheduler{
		lifetimes: [2]time.Duration{cfg.GrowthLifetime, cfg.PoisonLifetime},
		rng:       rng,
	}
}

// Slot returns the current slot state for a kind.
func (s *Scheduler) Slot(k Kind) Slot {
	return s.slots[k]
}

// Lifetime returns the configured lifetime for a kind.
func (s *Scheduler) Lifetime(k Kind) time.Duration {
	return s.lifetimes[k]
}

// Spawn places one instance of every kind, avoiding the actor body.
func (s *Scheduler) Spawn(g *world.Grid, body []world.Position, now time.Time) {
	for _, k := range Kinds {
		s.relocate(g, k, body, now)
	}
}

// Tick recycles every item older than its lifetime and retries placement of
// empty slots. It returns the kinds that were (re)placed.
func (s *Scheduler) Tick(g *world.Grid, body []world.Position, now time.Time) []Kind {
	var moved []Kind
	for _, k := range Kinds {
		slot := s.slots[k]
		if slot.Placed && now.Sub(slot.SpawnedAt) < s.lifetimes[k] {
			continue
		}
		if s.relocate(g, k, body, now) {
			moved = append(moved, k)
		}
	}
	return moved
}

// OnConsumed replaces a picked-up item with a fresh one and restarts the
// freshness clock of both kinds.
func (s *Scheduler) OnConsumed(g *world.Grid, k Kind, body []world.Position, now time.Time) {
	s.relocate(g, k, body, now)
	for i := range s.slots {
		s.slots[i].SpawnedAt = now
	}
}

// SampleEmpty picks a uniformly random empty cell not covered by the body.
func (s *Scheduler) SampleEmpty(g *world.Grid, body []world.Position) (world.Position, bool) {
	occupied := make(map[world.Position]struct{}, len(body))
	for _, p := range body {
		occupied[p] = struct{}{}
	}

	var candidates []world.Position
	for p := range g.PositionsOf(world.TileEmpty) {
		if _, taken := occupied[p]; !taken {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return world.Position{}, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}

// relocate clears the kind's current cell and places it on a different free
// cell. When none is available the slot is left empty until a later tick.
func (s *Scheduler) relocate(g *world.Grid, k Kind, body []world.Position, now time.Time) bool {
	slot := &s.slots[k]
	exclude := body
	if slot.Placed {
		if g.TileAt(slot.Pos) == k.Tile() {
			g.SetTile(slot.Pos, world.TileEmpty)
		}
		exclude = append(slices.Clone(body), slot.Pos)
	}
	slot.Placed = false

	p, ok := s.SampleEmpty(g, exclude)
	if !ok {
		return false
	}
	s.Place(g, k, p, now)
	return true
}

// Place puts the kind's single instance at p, removing it from its previous cell.
func (s *Scheduler) Place(g *world.Grid, k Kind, p world.Position, now time.Time) {
	slot := &s.slots[k]
	if slot.Placed && slot.Pos != p && g.TileAt(slot.Pos) == k.Tile() {
		g.SetTile(slot.Pos, world.TileEmpty)
	}
	g.SetTile(p, k.Tile())
	*slot = Slot{Pos: p, Placed: true, SpawnedAt: now}
}
