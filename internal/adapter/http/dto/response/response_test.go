package response

import (
	"testing"
	"time"

	"reborn_api/internal/domain/entities"
)

func TestFromDocument(t *testing.T) {
	now := time.Now().UTC()
	d := entities.Document{
		ID:           "doc-1",
		UserID:       "user-1",
		RebornID:     "reborn-1",
		Type:         entities.DocumentTypeBirthCertificate,
		Status:       entities.DocumentStatusReady,
		FileURL:      "/documents/doc-1/cert.png",
		TemplateData: map[string]string{"template_id": "tpl-1"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromDocument(d)
	if res.ID != "doc-1" || res.RebornID != "reborn-1" || res.Status != "ready" || res.Type != "birth_certificate" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	res.TemplateData["template_id"] = "changed"
	if d.TemplateData["template_id"] != "tpl-1" {
		t.Fatalf("response must not alias the entity map")
	}

	list := FromDocuments([]entities.Document{d, d})
	if list.Total != 2 || len(list.Documents) != 2 {
		t.Fatalf("unexpected list: %+v", list)
	}
	if empty := FromDocuments(nil); empty.Documents == nil || empty.Total != 0 {
		t.Fatalf("empty list must serialize as []")
	}
}

func TestFromTemplate(t *testing.T) {
	tpl := entities.DocumentTemplate{
		ID:     "tpl-1",
		Name:   "Template Rosa Clássico",
		Type:   entities.DocumentTypeBirthCertificate,
		Width:  800,
		Height: 600,
		Placeholders: []entities.TextPlaceholder{
			{Key: "reborn_name", X: 400, Y: 170, FontSize: 30, TextAlign: entities.TextAlignCenter},
			{Key: "city", X: 120, Y: 450, FontSize: 18},
		},
		IsActive: true,
	}

	res := FromTemplate(tpl)
	if res.ID != "tpl-1" || res.Width != 800 || len(res.Placeholders) != 2 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Placeholders[0].TextAlign != "center" || res.Placeholders[1].TextAlign != "left" {
		t.Fatalf("unexpected alignment: %+v", res.Placeholders)
	}
	if got := FromTemplates(nil); got == nil || len(got) != 0 {
		t.Fatalf("empty list must serialize as []")
	}
}

func TestFromReborn(t *testing.T) {
	birth := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 2, 30, 0, 0, time.UTC)
	r := entities.Reborn{ID: "reborn-1", UserID: "user-1", Name: "Maria Clara", BirthDate: birth, Weight: 2500, Height: 50, Description: "linda"}

	res := FromReborn(r, now)
	if res.AgeInDays != 47 {
		t.Fatalf("expected 47 days, got %d", res.AgeInDays)
	}
	if res.PhotoURL != nil || res.Description == nil || *res.Description != "linda" {
		t.Fatalf("unexpected nullable fields: %+v", res)
	}

	list := FromReborns([]entities.Reborn{r}, now)
	if list.Total != 1 || list.Reborns[0].ID != "reborn-1" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
