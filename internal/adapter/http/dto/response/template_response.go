package response

import (
	"time"

	"reborn_api/internal/domain/entities"
)

type PlaceholderResponse struct {
	Key        string  `json:"key"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	FontSize   float64 `json:"font_size"`
	FontFamily string  `json:"font_family"`
	Color      string  `json:"color"`
	MaxWidth   float64 `json:"max_width,omitempty"`
	TextAlign  string  `json:"text_align"`
}

type TemplateResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Type         string                `json:"type"`
	Description  string                `json:"description"`
	ThumbnailURL string                `json:"thumbnail_url"`
	BaseImageURL string                `json:"base_image_url"`
	Width        int                   `json:"width"`
	Height       int                   `json:"height"`
	Placeholders []PlaceholderResponse `json:"placeholders"`
	IsActive     bool                  `json:"is_active"`
	CreatedAt    time.Time             `json:"created_at"`
}

func FromTemplate(t entities.DocumentTemplate) TemplateResponse {
	placeholders := make([]PlaceholderResponse, 0, len(t.Placeholders))
	for _, p := range t.Placeholders {
		placeholders = append(placeholders, PlaceholderResponse{
			Key:        p.Key,
			X:          p.X,
			Y:          p.Y,
			FontSize:   p.FontSize,
			FontFamily: p.FontFamily,
			Color:      p.Color,
			MaxWidth:   p.MaxWidth,
			TextAlign:  string(p.Align()),
		})
	}
	return TemplateResponse{
		ID:           t.ID,
		Name:         t.Name,
		Type:         string(t.Type),
		Description:  t.Description,
		ThumbnailURL: t.ThumbnailURL,
		BaseImageURL: t.BaseImageURL,
		Width:        t.Width,
		Height:       t.Height,
		Placeholders: placeholders,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
	}
}

func FromTemplates(ts []entities.DocumentTemplate) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTemplate(t))
	}
	return out
}
