package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snakestage/internal/engine"
)

func TestInputBufferLastWins(t *testing.T) {
	var b InputBuffer

	b.Push(engine.CommandUp)
	b.Push(engine.CommandLeft)
	b.Push(engine.CommandNone)

	if got := b.Take(); got != engine.CommandLeft {
		t.Errorf("Take() = %v, want %v", got, engine.CommandLeft)
	}
	if got := b.Take(); got != engine.CommandNone {
		t.Errorf("second Take() = %v, want %v", got, engine.CommandNone)
	}
}

func TestInputBufferQuitIsSticky(t *testing.T) {
	var b InputBuffer

	b.Push(engine.CommandQuit)
	b.Push(engine.CommandDown)

	if got := b.Take(); got != engine.CommandQuit {
		t.Errorf("Take() = %v, want %v", got, engine.CommandQuit)
	}
	if got := b.Take(); got != engine.CommandNone {
		t.Errorf("Take() after quit = %v, want %v", got, engine.CommandNone)
	}
}

func TestInputBufferReset(t *testing.T) {
	var b InputBuffer
	b.Push(engine.CommandQuit)
	b.Reset()

	if got := b.Take(); got != engine.CommandNone {
		t.Errorf("Take() after Reset = %v, want %v", got, engine.CommandNone)
	}
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want engine.Command
	}{
		{tcell.KeyUp, 0, engine.CommandUp},
		{tcell.KeyDown, 0, engine.CommandDown},
		{tcell.KeyLeft, 0, engine.CommandLeft},
		{tcell.KeyRight, 0, engine.CommandRight},
		{tcell.KeyEscape, 0, engine.CommandQuit},
		{tcell.KeyRune, 'q', engine.CommandQuit},
		{tcell.KeyRune, 'Q', engine.CommandQuit},
		{tcell.KeyRune, 'y', engine.CommandNone},
		{tcell.KeyEnter, 0, engine.CommandNone},
	}

	for _, tt := range tests {
		if got := commandFor(tt.key, tt.r); got != tt.want {
			t.Errorf("commandFor(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}
