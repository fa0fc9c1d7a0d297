package database

import (
	"context"
	"fmt"
	"time"

	"reborn_api/internal/domain/entities"
	"reborn_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	certificateWidth  = 800
	certificateHeight = 600
)

type templateSeed struct {
	id          string
	name        string
	description string
	slug        string
	nameColor   string
	textColor   string
}

var birthCertificateSeeds = []templateSeed{
	{
		id:          "6f1b3c2e-8a4d-4e0f-9b1a-1c2d3e4f5a01",
		name:        "Template Rosa Clássico",
		description: "Certidão clássica em tons de rosa",
		slug:        "rosa",
		nameColor:   "#8B4513",
		textColor:   "#5A3E36",
	},
	{
		id:          "6f1b3c2e-8a4d-4e0f-9b1a-1c2d3e4f5a02",
		name:        "Template Azul Moderno",
		description: "Certidão moderna em tons de azul",
		slug:        "azul",
		nameColor:   "#1E3A8A",
		textColor:   "#1F2937",
	},
	{
		id:          "6f1b3c2e-8a4d-4e0f-9b1a-1c2d3e4f5a03",
		name:        "Template Vintage Dourado",
		description: "Certidão vintage com detalhes dourados",
		slug:        "vintage",
		nameColor:   "#B8860B",
		textColor:   "#4A3B1F",
	},
}

func certificatePlaceholders(nameColor, textColor string) []entities.TextPlaceholder {
	line := func(key string, x, y float64) entities.TextPlaceholder {
		return entities.TextPlaceholder{Key: key, X: x, Y: y, FontSize: 18, FontFamily: "serif", Color: textColor}
	}
	hospital := line("hospital", 120, 310)
	hospital.MaxWidth = 560

	return []entities.TextPlaceholder{
		{Key: "reborn_name", X: 400, Y: 170, FontSize: 30, FontFamily: "bold serif", Color: nameColor, TextAlign: entities.TextAlignCenter},
		line("birth_date", 120, 230),
		line("age_days", 480, 230),
		line("weight", 120, 270),
		line("height", 480, 270),
		hospital,
		line("doctor", 120, 370),
		line("mother_name", 120, 410),
		line("city", 120, 450),
		line("state", 480, 450),
		{Key: "registration_number", X: 400, Y: 520, FontSize: 14, FontFamily: "serif", Color: textColor, TextAlign: entities.TextAlignCenter},
		{Key: "today", X: 700, Y: 560, FontSize: 14, FontFamily: "italic serif", Color: textColor, TextAlign: entities.TextAlignRight},
	}
}

// BirthCertificateTemplates returns the stock birth certificate layouts.
func BirthCertificateTemplates(now time.Time) ([]entities.DocumentTemplate, error) {
	out := make([]entities.DocumentTemplate, 0, len(birthCertificateSeeds))
	for i, s := range birthCertificateSeeds {
		tpl, err := entities.NewDocumentTemplate(
			s.id,
			s.name,
			entities.DocumentTypeBirthCertificate,
			s.description,
			fmt.Sprintf("/templates/birth-certificate-%s-thumb.png", s.slug),
			fmt.Sprintf("/templates/birth-certificate-%s.png", s.slug),
			certificateWidth,
			certificateHeight,
			certificatePlaceholders(s.nameColor, s.textColor),
			true,
			now.Add(time.Duration(i)*time.Second),
		)
		if err != nil {
			return nil, err
		}
		out = append(out, tpl)
	}
	return out, nil
}

// SeedTemplates inserts the stock templates when the table is empty and returns how many were written.
func SeedTemplates(ctx context.Context, repo interfaces.IDocumentTemplateRepository, now time.Time, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info("templates already seeded", zap.Int64("count", n))
		return 0, nil
	}

	templates, err := BirthCertificateTemplates(now)
	if err != nil {
		return 0, err
	}
	for _, tpl := range templates {
		if keys := tpl.PlaceholdersOutOfBounds(); len(keys) > 0 {
			log.Warn("template placeholders outside canvas", zap.String("template_id", tpl.ID), zap.Strings("keys", keys))
		}
		if _, err := repo.Save(ctx, tpl); err != nil {
			return 0, fmt.Errorf("seed template %s: %w", tpl.Name, err)
		}
		log.Info("template seeded", zap.String("template_id", tpl.ID), zap.String("name", tpl.Name))
	}
	return len(templates), nil
}
