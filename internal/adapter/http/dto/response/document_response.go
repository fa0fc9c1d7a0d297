package response

import (
	"time"

	"reborn_api/internal/domain/entities"
)

type DocumentResponse struct {
	ID           string            `json:"id"`
	RebornID     string            `json:"reborn_id"`
	Type         string            `json:"type"`
	Status       string            `json:"status"`
	FileURL      string            `json:"file_url,omitempty"`
	TemplateData map[string]string `json:"template_data"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type DocumentsListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
}

func FromDocument(d entities.Document) DocumentResponse {
	data := make(map[string]string, len(d.TemplateData))
	for k, v := range d.TemplateData {
		data[k] = v
	}
	return DocumentResponse{
		ID:           d.ID,
		RebornID:     d.RebornID,
		Type:         string(d.Type),
		Status:       string(d.Status),
		FileURL:      d.FileURL,
		TemplateData: data,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func FromDocuments(docs []entities.Document) DocumentsListResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return DocumentsListResponse{Documents: out, Total: len(out)}
}
