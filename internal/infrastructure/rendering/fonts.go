package rendering

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

const defaultFontSize = 16.0

var ErrInvalidFontSize = errors.New("font size must be positive")

// FontResolver turns a CSS-like family ("Arial", "bold serif", "Courier New") and a pixel size
// into a drawable face.
type FontResolver interface {
	Face(family string, size float64) (font.Face, error)
}

type fontVariant int

const (
	variantRegular fontVariant = iota
	variantBold
	variantItalic
	variantBoldItalic
	variantMono
	variantMonoBold
)

// EmbeddedFontResolver serves the Go font family compiled into the binary. When fontDir is
// set, a file named "<family>.ttf" inside it takes precedence (family lower-cased, spaces
// replaced by "-", weight and style words removed).
type EmbeddedFontResolver struct {
	fontDir string
	fonts   map[fontVariant]*truetype.Font
}

func NewEmbeddedFontResolver(fontDir string) (*EmbeddedFontResolver, error) {
	sources := map[fontVariant][]byte{
		variantRegular:    goregular.TTF,
		variantBold:       gobold.TTF,
		variantItalic:     goitalic.TTF,
		variantBoldItalic: gobolditalic.TTF,
		variantMono:       gomono.TTF,
		variantMonoBold:   gomonobold.TTF,
	}
	fonts := make(map[fontVariant]*truetype.Font, len(sources))
	for v, ttf := range sources {
		f, err := truetype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse embedded font: %w", err)
		}
		fonts[v] = f
	}
	return &EmbeddedFontResolver{fontDir: fontDir, fonts: fonts}, nil
}

func (r *EmbeddedFontResolver) Face(family string, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, ErrInvalidFontSize
	}
	name, bold, italic := parseFamily(family)

	if r.fontDir != "" && name != "" {
		path := filepath.Join(r.fontDir, fontFileName(name, bold, italic))
		if _, err := os.Stat(path); err == nil {
			face, err := gg.LoadFontFace(path, size)
			if err != nil {
				return nil, fmt.Errorf("load font %s: %w", path, err)
			}
			return face, nil
		}
	}

	f := r.fonts[pickVariant(name, bold, italic)]
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}

func parseFamily(family string) (name string, bold, italic bool) {
	var parts []string
	for _, tok := range strings.Fields(strings.ToLower(family)) {
		switch tok {
		case "bold", "bolder", "700", "800", "900":
			bold = true
		case "italic", "oblique":
			italic = true
		case "normal", "regular", "400":
		default:
			parts = append(parts, strings.Trim(tok, `"',`))
		}
	}
	return strings.Join(parts, "-"), bold, italic
}

func fontFileName(name string, bold, italic bool) string {
	switch {
	case bold && italic:
		return name + "-bolditalic.ttf"
	case bold:
		return name + "-bold.ttf"
	case italic:
		return name + "-italic.ttf"
	default:
		return name + ".ttf"
	}
}

func pickVariant(name string, bold, italic bool) fontVariant {
	if strings.Contains(name, "mono") || strings.Contains(name, "courier") {
		if bold {
			return variantMonoBold
		}
		return variantMono
	}
	switch {
	case bold && italic:
		return variantBoldItalic
	case bold:
		return variantBold
	case italic:
		return variantItalic
	default:
		return variantRegular
	}
}
