package rendering

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"reborn_api/internal/domain/entities"
)

const (
	TitleText    = "CERTIDÃO DE NASCIMENTO"
	SubtitleText = "Bebê Reborn"

	borderInset      = 20.0
	borderLineWidth  = 3.0
	titleFontSize    = 32.0
	titleBaselineY   = 80.0
	subtitleFontSize = 18.0
	subtitleBaseline = 110.0
	subtitleColor    = "#666666"
	titleFontFamily  = "bold serif"
	subtitleFamily   = "serif"
)

// BackgroundStyle is the synthesized background of one palette.
type BackgroundStyle struct {
	GradientFrom string
	GradientTo   string
	Border       string
	Title        string
}

var backgroundStyles = map[entities.Palette]BackgroundStyle{
	entities.PalettePink: {
		GradientFrom: "#FFF0F5",
		GradientTo:   "#FFE4E1",
		Border:       "#D8BFD8",
		Title:        "#8B4513",
	},
	entities.PaletteBlue: {
		GradientFrom: "#F0F8FF",
		GradientTo:   "#E6F3FF",
		Border:       "#4682B4",
		Title:        "#1E3A8A",
	},
	entities.PaletteVintage: {
		GradientFrom: "#FFFACD",
		GradientTo:   "#F5DEB3",
		Border:       "#DAA520",
		Title:        "#B8860B",
	},
}

// StyleFor returns the style of p. Unknown palettes get the vintage style.
func StyleFor(p entities.Palette) BackgroundStyle {
	if s, ok := backgroundStyles[p]; ok {
		return s
	}
	return backgroundStyles[entities.PaletteVintage]
}

// ParseHexColor accepts #RGB and #RRGGBB.
func ParseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func colorOrBlack(s string) color.Color {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.Black
	}
	return c
}
