package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snakestage/internal/engine"
	"github.com/samdwyer/snakestage/internal/world"
)

const (
	headRune = 'O'
	bodyRune = 'o'

	boardGap = 3 // Columns between the grid and the boards
)

// Frame is everything drawn for one screen refresh.
type Frame struct {
	Snapshot    engine.Snapshot
	StageNumber int
	StageName   string
	WallColor   tcell.Color
	Lines       []string // Messages shown under the grid
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the stage, the actor, both boards and any messages.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	grid := f.Snapshot.Grid
	if grid != nil {
		for row := 0; row < grid.Rows(); row++ {
			for col := 0; col < grid.Cols(); col++ {
				tile := grid.TileAt(world.Position{Row: row, Col: col})
				r.screen.SetContent(col, row, tile.Rune(), r.tileStyle(tile, f.WallColor))
			}
		}
	}

	// Draw actor on top, tail first so the head always wins
	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	headStyle := bodyStyle.Bold(true)
	body := f.Snapshot.Body
	for i := len(body) - 1; i >= 0; i-- {
		if i == 0 {
			r.screen.SetContent(body[i].Col, body[i].Row, headRune, headStyle)
		} else {
			r.screen.SetContent(body[i].Col, body[i].Row, bodyRune, bodyStyle)
		}
	}

	x, height := 0, 0
	if grid != nil {
		x, height = grid.Cols()+boardGap, grid.Rows()
	}
	height = max(height, r.renderBoards(x, f))

	for i, line := range f.Lines {
		r.RenderMessage(line, height+1+i)
	}

	r.screen.Show()
}

// renderBoards draws the score board and the mission board starting at column
// x and returns the first row below them.
func (r *Renderer) renderBoards(x int, f Frame) int {
	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	st := f.Snapshot.Mission
	th := f.Snapshot.Rules.Thresholds
	maxLength := "-"
	if f.Snapshot.Rules.MaxLength > 0 {
		maxLength = strconv.Itoa(f.Snapshot.Rules.MaxLength)
	}

	y := 0
	if f.StageNumber > 0 {
		r.drawText(x, y, fmt.Sprintf("Stage %d: %s", f.StageNumber, f.StageName), title)
		y += 2
	}

	r.drawText(x, y, "Score Board", title)
	r.drawText(x, y+1, fmt.Sprintf("B: %d / %s", len(f.Snapshot.Body), maxLength), text)
	r.drawText(x, y+2, fmt.Sprintf("+: %d", st.Growth), text)
	r.drawText(x, y+3, fmt.Sprintf("-: %d", st.Poison), text)
	r.drawText(x, y+4, fmt.Sprintf("G: %d", st.GateUse), text)

	y += 6
	p := th.Evaluate(st)
	r.drawText(x, y, "Mission", title)
	r.drawText(x, y+1, missionLine("B", th.MinLength, p.Length), text)
	r.drawText(x, y+2, missionLine("+", th.MinGrowth, p.Growth), text)
	r.drawText(x, y+3, missionLine("-", th.MinPoison, p.Poison), text)
	r.drawText(x, y+4, missionLine("G", th.MinGateUse, p.GateUse), text)
	return y + 5
}

// missionLine formats one threshold with its check mark.
func missionLine(label string, want int, met bool) string {
	mark := " "
	if met {
		mark = "v"
	}
	return fmt.Sprintf("%s: %d (%s)", label, want, mark)
}

// tileStyle returns the appropriate style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile, wall tcell.Color) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(wall)
	case world.TileImmuneWall:
		return tcell.StyleDefault.Foreground(wall).Bold(true)
	case world.TileGrowth:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case world.TilePoison:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case world.TileGate:
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
