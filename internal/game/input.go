package game

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snakestage/internal/engine"
)

// InputBuffer holds the command for the next tick. Later commands replace
// earlier ones, except that a quit is kept until taken. It is safe for
// concurrent use.
type InputBuffer struct {
	mu   sync.Mutex
	cmd  engine.Command
	quit bool
}

// Push records cmd as the latest input. CommandNone is ignored.
func (b *InputBuffer) Push(cmd engine.Command) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch cmd {
	case engine.CommandNone:
	case engine.CommandQuit:
		b.quit = true
	default:
		b.cmd = cmd
	}
}

// Take returns the pending command and empties the buffer.
func (b *InputBuffer) Take() engine.Command {
	b.mu.Lock()
	defer b.mu.Unlock()

	cmd := b.cmd
	if b.quit {
		cmd = engine.CommandQuit
	}
	b.cmd = engine.CommandNone
	b.quit = false
	return cmd
}

// Reset drops any pending input.
func (b *InputBuffer) Reset() {
	b.Take()
}

// commandFor maps a key press to an engine command.
func commandFor(key tcell.Key, r rune) engine.Command {
	switch key {
	case tcell.KeyUp:
		return engine.CommandUp
	case tcell.KeyDown:
		return engine.CommandDown
	case tcell.KeyLeft:
		return engine.CommandLeft
	case tcell.KeyRight:
		return engine.CommandRight
	case tcell.KeyEscape:
		return engine.CommandQuit
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return engine.CommandQuit
		}
	}
	return engine.CommandNone
}
