package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
