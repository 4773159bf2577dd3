package gamedata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snakestage/internal/engine"
	"github.com/samdwyer/snakestage/internal/mission"
	"github.com/samdwyer/snakestage/internal/world"
)

const stagesIndex = "stages.json"

var (
	// ErrEmptyStage is returned for a stage file without any grid rows.
	ErrEmptyStage = errors.New("stage has no rows")
	// ErrRaggedStage is returned when stage rows differ in width.
	ErrRaggedStage = errors.New("stage rows have different widths")
	// ErrBadTileCode is returned for a character other than 0, 1 or 2.
	ErrBadTileCode = errors.New("invalid tile code")
	// ErrNoStages is returned when the stage index lists nothing.
	ErrNoStages = errors.New("no stages defined")
)

// StageDef describes one stage as listed in stages.json.
type StageDef struct {
	Number    int                `json:"number"`    // 1-based play order
	Name      string             `json:"name"`      // Display name
	File      string             `json:"file"`      // Grid file, e.g. "stage1.txt"
	WallColor string             `json:"wallColor"` // Hex color for wall tiles
	MaxLength int                `json:"maxLength"` // Length that ends the run, 0 for none
	Mission   mission.Thresholds `json:"mission"`
}

// TCellColor returns the wall color, falling back to gray.
func (d *StageDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.WallColor)
	if err != nil {
		return tcell.ColorGray
	}
	return color
}

// Rules returns the engine rules for the stage.
func (d *StageDef) Rules() engine.Rules {
	return engine.Rules{Thresholds: d.Mission, MaxLength: d.MaxLength}
}

// StagesFile represents the structure of stages.json.
type StagesFile struct {
	Stages []StageDef `json:"stages"`
}

// Stage is a loaded stage definition together with its fresh grid.
type Stage struct {
	Def  StageDef
	Grid *world.Grid
}

// ParseGrid reads a stage grid: one row per line, one digit per cell, where
// 0 is empty, 1 is a wall and 2 is an immune wall. Blank lines are skipped.
func ParseGrid(r io.Reader) (*world.Grid, error) {
	var rows [][]world.Tile

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		row := make([]world.Tile, 0, len(text))
		for col, ch := range text {
			switch ch {
			case '0':
				row = append(row, world.TileEmpty)
			case '1':
				row = append(row, world.TileWall)
			case '2':
				row = append(row, world.TileImmuneWall)
			default:
				return nil, fmt.Errorf("%w %q at line %d column %d", ErrBadTileCode, ch, line, col+1)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRaggedStage, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stage: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyStage
	}

	g, err := world.NewGrid(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, t := range row {
			g.SetTile(world.Position{Row: r, Col: c}, t)
		}
	}
	return g, nil
}

// Catalog holds the ordered stage definitions and the filesystem their grids
// are read from.
type Catalog struct {
	fsys fs.FS
	defs []StageDef
}

// NewCatalog reads stages.json from fsys.
func NewCatalog(fsys fs.FS) (*Catalog, error) {
	file, err := Load[StagesFile](fsys, stagesIndex)
	if err != nil {
		return nil, err
	}
	if len(file.Stages) == 0 {
		return nil, ErrNoStages
	}
	return &Catalog{fsys: fsys, defs: file.Stages}, nil
}

// LoadCatalog loads the stage set from dir, or the embedded set when dir is empty.
func LoadCatalog(dir string) (*Catalog, error) {
	if dir == "" {
		return NewCatalog(dataFS)
	}
	return NewCatalog(os.DirFS(dir))
}

// MustLoadCatalog loads the embedded stage set, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := NewCatalog(dataFS)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Count returns the number of stages.
func (c *Catalog) Count() int {
	return len(c.defs)
}

// All returns every stage definition in play order.
func (c *Catalog) All() []StageDef {
	return c.defs
}

// Stage loads the stage at the 0-based index with a freshly parsed grid.
func (c *Catalog) Stage(index int) (Stage, error) {
	if index < 0 || index >= len(c.defs) {
		return Stage{}, fmt.Errorf("stage index %d out of range [0,%d)", index, len(c.defs))
	}
	def := c.defs[index]

	f, err := c.fsys.Open(def.File)
	if err != nil {
		return Stage{}, fmt.Errorf("failed to open stage %d: %w", def.Number, err)
	}
	defer f.Close()

	grid, err := ParseGrid(f)
	if err != nil {
		return Stage{}, fmt.Errorf("failed to parse %s: %w", def.File, err)
	}
	return Stage{Def: def, Grid: grid}, nil
}
