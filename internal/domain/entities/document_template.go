package entities

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidTemplateDimensions = errors.New("template width and height must be positive")

type DocumentType string

const (
	DocumentTypeBirthCertificate DocumentType = "birth_certificate"
)

func (t DocumentType) IsValid() bool {
	return t == DocumentTypeBirthCertificate
}

// Palette selects the synthesized background used when a template has no usable base image.
//
// It is resolved once, when the template is created, from the template name:
//   - "Rosa" => PINK
//   - "Azul" => BLUE
//   - anything else => VINTAGE
type Palette string

const (
	PalettePink    Palette = "rosa"
	PaletteBlue    Palette = "azul"
	PaletteVintage Palette = "vintage"
)

func PaletteForName(name string) Palette {
	switch {
	case strings.Contains(name, "Rosa"):
		return PalettePink
	case strings.Contains(name, "Azul"):
		return PaletteBlue
	default:
		return PaletteVintage
	}
}

func (p Palette) IsValid() bool {
	switch p {
	case PalettePink, PaletteBlue, PaletteVintage:
		return true
	}
	return false
}

type TextAlign string

const (
	TextAlignLeft   TextAlign = "left"
	TextAlignCenter TextAlign = "center"
	TextAlignRight  TextAlign = "right"
)

// TextPlaceholder is a positioned, styled text insertion point of a template.
// MaxWidth zero means the text is never wrapped.
type TextPlaceholder struct {
	Key        string    `json:"key"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	FontSize   float64   `json:"font_size"`
	FontFamily string    `json:"font_family"`
	Color      string    `json:"color"`
	MaxWidth   float64   `json:"max_width,omitempty"`
	TextAlign  TextAlign `json:"text_align,omitempty"`
}

func (p TextPlaceholder) Align() TextAlign {
	switch p.TextAlign {
	case TextAlignCenter, TextAlignRight:
		return p.TextAlign
	default:
		return TextAlignLeft
	}
}

// DocumentTemplate is the static layout of a generated document.
//
// Templates are created by seeding and are only read by the generation flow.
type DocumentTemplate struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Type         DocumentType      `json:"type"`
	Description  string            `json:"description"`
	ThumbnailURL string            `json:"thumbnail_url"`
	BaseImageURL string            `json:"base_image_url"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	Placeholders []TextPlaceholder `json:"placeholders"`
	Palette      Palette           `json:"palette"`
	IsActive     bool              `json:"is_active"`
	CreatedAt    time.Time         `json:"created_at"`
}

func NewDocumentTemplate(
	id, name string,
	docType DocumentType,
	description, thumbnailURL, baseImageURL string,
	width, height int,
	placeholders []TextPlaceholder,
	isActive bool,
	createdAt time.Time,
) (DocumentTemplate, error) {
	if width <= 0 || height <= 0 {
		return DocumentTemplate{}, ErrInvalidTemplateDimensions
	}
	ph := make([]TextPlaceholder, len(placeholders))
	copy(ph, placeholders)
	return DocumentTemplate{
		ID:           id,
		Name:         name,
		Type:         docType,
		Description:  description,
		ThumbnailURL: thumbnailURL,
		BaseImageURL: baseImageURL,
		Width:        width,
		Height:       height,
		Placeholders: ph,
		Palette:      PaletteForName(name),
		IsActive:     isActive,
		CreatedAt:    createdAt,
	}, nil
}

func (t DocumentTemplate) IsForType(docType DocumentType) bool {
	return t.Type == docType
}

func (t DocumentTemplate) IsAvailable() bool {
	return t.IsActive
}

// ResolvedPalette returns the stored palette. Rows written before the palette column existed
// fall back to the name rule.
func (t DocumentTemplate) ResolvedPalette() Palette {
	if t.Palette.IsValid() {
		return t.Palette
	}
	return PaletteForName(t.Name)
}

// PlaceholdersOutOfBounds lists the keys of placeholders anchored outside the canvas.
func (t DocumentTemplate) PlaceholdersOutOfBounds() []string {
	var keys []string
	for _, p := range t.Placeholders {
		if p.X < 0 || p.Y < 0 || p.X > float64(t.Width) || p.Y > float64(t.Height) {
			keys = append(keys, p.Key)
		}
	}
	return keys
}
