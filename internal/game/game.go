package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/snakestage/internal/engine"
	"github.com/samdwyer/snakestage/internal/gamedata"
	"github.com/samdwyer/snakestage/internal/ui"
)

// Player-facing prompts.
const (
	msgStageCleared = "Mission Completed! Press 'Y' to continue."
	msgAllCleared   = "All stages cleared!"
	msgRestart      = "Game over! Restart? (Y/N)"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	catalog  *gamedata.Catalog
	cfg      Config
	tracer   trace.Tracer
	logger   *log.Logger
	rng      *rand.Rand
	input    InputBuffer

	state      State
	stageIndex int
	stage      gamedata.Stage
	engine     *engine.Engine
	startAt    time.Time // End of the current countdown
	lines      []string
	err        error

	baseCtx   context.Context
	runID     uuid.UUID
	runCtx    context.Context
	runSpan   trace.Span
	stageSpan trace.Span
}

// New creates a new game instance drawing to screen. A nil logger discards
// log output.
func New(screen *ui.Screen, catalog *gamedata.Catalog, cfg Config, tracer trace.Tracer, logger *log.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		catalog:  catalog,
		cfg:      cfg,
		tracer:   tracer,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
		state:    StateExited,
	}
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Run executes the main game loop until the player exits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.startRun(ctx, time.Now())

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	for g.state != StateExited {
		g.render()

		select {
		case <-ctx.Done():
			g.exit()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				g.handleKey(ev.Key(), ev.Rune(), time.Now())
			case *tcell.EventResize:
				g.screen.Sync()
			}
		case now := <-ticker.C:
			g.update(now)
		}
	}
	return g.err
}

// pollEvents forwards terminal events until done is closed or the screen is
// finalized.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleKey processes keyboard input for the current state.
func (g *Game) handleKey(key tcell.Key, r rune, now time.Time) {
	if key == tcell.KeyCtrlC {
		g.exit()
		return
	}

	switch g.state {
	case StatePlaying:
		g.input.Push(commandFor(key, r))

	case StateCountdown:
		if commandFor(key, r) == engine.CommandQuit {
			g.exit()
		}

	case StateStageCleared:
		switch {
		case r == 'y' || r == 'Y':
			g.loadStage(g.stageIndex+1, now)
		case commandFor(key, r) == engine.CommandQuit:
			g.exit()
		}

	case StateGameOver:
		switch {
		case r == 'y' || r == 'Y':
			g.logger.Printf("run %s: restart", g.runID)
			g.endRun(nil)
			g.startRun(g.baseCtx, now)
		case r == 'n' || r == 'N' || commandFor(key, r) == engine.CommandQuit:
			g.exit()
		}
	}
}

// update advances the game by one tick.
func (g *Game) update(now time.Time) {
	switch g.state {
	case StateCountdown:
		if !now.Before(g.startAt) {
			g.state = StatePlaying
			g.lines = nil
			g.input.Reset()
		}
	case StatePlaying:
		g.handleResult(g.engine.Step(g.input.Take(), now))
	}
}

// handleResult routes one tick's outcome to the next game state.
func (g *Game) handleResult(res engine.Result) {
	switch res.Outcome {
	case engine.OutcomeContinue:
		return

	case engine.OutcomeStageComplete:
		g.endStage("stage.complete", res)
		g.logger.Printf("run %s: stage %d complete at tick %d", g.runID, g.stage.Def.Number, res.Tick)
		if g.stageIndex+1 < g.catalog.Count() {
			g.state = StateStageCleared
			g.lines = []string{msgStageCleared}
			return
		}
		g.logger.Printf("run %s: all stages cleared", g.runID)
		g.runSpan.SetAttributes(attribute.Bool("run.won", true))
		g.state = StateGameOver
		g.lines = []string{msgAllCleared, msgRestart}

	case engine.OutcomeTerminated:
		g.endStage("stage.terminated", res)
		g.logger.Printf("run %s: stage %d terminated at tick %d: %v", g.runID, g.stage.Def.Number, res.Tick, res.Reason)
		if res.Reason == engine.ReasonQuit {
			g.exit()
			return
		}
		g.runSpan.SetAttributes(attribute.Bool("run.won", false))
		g.state = StateGameOver
		g.lines = []string{res.Reason.Message(), msgRestart}
	}
}

// startRun begins a fresh run at the first stage.
func (g *Game) startRun(ctx context.Context, now time.Time) {
	g.baseCtx = ctx
	g.runID = uuid.New()
	g.runCtx, g.runSpan = g.tracer.Start(ctx, "game.run",
		trace.WithAttributes(
			attribute.String("run.id", g.runID.String()),
			attribute.Int("run.stages", g.catalog.Count()),
		),
	)
	g.logger.Printf("run %s: started", g.runID)
	g.loadStage(0, now)
}

// loadStage prepares the stage at index and starts its countdown. A stage
// that cannot be loaded ends the game with an error.
func (g *Game) loadStage(index int, now time.Time) {
	_, span := g.tracer.Start(g.runCtx, "game.stage")

	stage, err := g.catalog.Stage(index)
	if err != nil {
		g.fail(span, err)
		return
	}

	// Items start aging once play begins.
	startAt := now.Add(g.cfg.StartDelay)
	eng, err := engine.New(stage.Grid, stage.Def.Rules(), g.cfg.EngineConfig(), g.rng, startAt)
	if err != nil {
		g.fail(span, fmt.Errorf("stage %d: %w", stage.Def.Number, err))
		return
	}

	gates := eng.Gates()
	span.SetAttributes(
		attribute.Int("stage.number", stage.Def.Number),
		attribute.String("stage.name", stage.Def.Name),
		attribute.String("stage.gate_a", gates.A.String()),
		attribute.String("stage.gate_b", gates.B.String()),
	)
	g.logger.Printf("run %s: stage %d starting, gates %v %v", g.runID, stage.Def.Number, gates.A, gates.B)

	g.stageIndex = index
	g.stage = stage
	g.engine = eng
	g.stageSpan = span
	g.startAt = startAt
	g.state = StateCountdown
	g.lines = []string{fmt.Sprintf("Stage %d starting...", stage.Def.Number)}
	g.input.Reset()
}

// endStage closes the stage span with the final tick's details.
func (g *Game) endStage(event string, res engine.Result) {
	if g.stageSpan == nil {
		return
	}
	st := g.engine.Snapshot().Mission
	g.stageSpan.AddEvent(event, trace.WithAttributes(
		attribute.String("outcome", res.Outcome.String()),
		attribute.String("reason", res.Reason.String()),
		attribute.String("phase", res.Phase.String()),
		attribute.Int64("tick", int64(res.Tick)),
	))
	g.stageSpan.SetAttributes(
		attribute.Int("mission.length", st.Length),
		attribute.Int("mission.max_length", st.MaxLength),
		attribute.Int("mission.growth", st.Growth),
		attribute.Int("mission.poison", st.Poison),
		attribute.Int("mission.gate_use", st.GateUse),
	)
	g.stageSpan.End()
	g.stageSpan = nil
}

// endRun closes the run span, recording err if set.
func (g *Game) endRun(err error) {
	if g.runSpan == nil {
		return
	}
	if err != nil {
		g.runSpan.RecordError(err)
		g.runSpan.SetStatus(codes.Error, err.Error())
	}
	g.runSpan.End()
	g.runSpan = nil
}

// fail aborts the game with err.
func (g *Game) fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.End()
	g.logger.Printf("run %s: %v", g.runID, err)
	g.err = err
	g.endRun(err)
	g.state = StateExited
}

// exit stops the loop after closing any open spans.
func (g *Game) exit() {
	if g.stageSpan != nil {
		g.stageSpan.AddEvent("stage.abandoned")
		g.stageSpan.End()
		g.stageSpan = nil
	}
	g.endRun(nil)
	g.state = StateExited
}

// render draws the current frame.
func (g *Game) render() {
	if g.engine == nil {
		return
	}
	g.renderer.Render(ui.Frame{
		Snapshot:    g.engine.Snapshot(),
		StageNumber: g.stage.Def.Number,
		StageName:   g.stage.Def.Name,
		WallColor:   g.stage.Def.TCellColor(),
		Lines:       g.lines,
	})
}
