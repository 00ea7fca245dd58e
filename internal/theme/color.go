package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// CellAlpha is the fixed opacity of label boxes.
const CellAlpha = 128

// DefaultCellHex is light blue, stored without the leading '#'.
const DefaultCellHex = "ADD8E6"

// RGBA is an 8-bit color with straight alpha.
type RGBA struct {
	R, G, B, A uint8
}

// DefaultCellColor is the stock label box color.
var DefaultCellColor = RGBA{R: 173, G: 216, B: 230, A: CellAlpha}

// PromptColor is the opaque background of the click-choice prompt.
var PromptColor = RGBA{R: 173, G: 216, B: 230, A: 255}

// ParseHex reads "RRGGBB" or "#RRGGBB" and applies CellAlpha.
func ParseHex(s string) (RGBA, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 6 {
		return RGBA{}, fmt.Errorf("color %q: expected 6 hex digits", s)
	}
	c, err := colorful.Hex("#" + strings.ToLower(trimmed))
	if err != nil {
		return RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: CellAlpha}, nil
}

// ParseHexOrDefault is ParseHex falling back to DefaultCellColor.
func ParseHexOrDefault(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return DefaultCellColor
	}
	return c
}

// Hex renders the color as "RRGGBB", dropping alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Over composites c onto an opaque background.
func (c RGBA) Over(bg RGBA) RGBA {
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	dst := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	r, g, b := dst.BlendRgb(src, float64(c.A)/255).Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: 255}
}

// Lipgloss flattens c over black and returns a terminal color.
func (c RGBA) Lipgloss() lipgloss.Color {
	return lipgloss.Color("#" + c.Over(RGBA{A: 255}).Hex())
}
