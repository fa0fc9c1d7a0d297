package entities

import (
	"errors"
	"time"
)

var (
	ErrInvalidDocumentTransition = errors.New("invalid document status transition")
	ErrMissingFileURL            = errors.New("file url is required to mark a document as ready")
)

// DocumentStatus represents the lifecycle of a generated document.
//
//	pending -> processing -> ready | failed
//
// ready and failed are terminal.
type DocumentStatus string

const (
	DocumentStatusPending    DocumentStatus = "pending"
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusReady      DocumentStatus = "ready"
	DocumentStatusFailed     DocumentStatus = "failed"
)

type DocumentFormat string

const (
	DocumentFormatPNG DocumentFormat = "png"
	DocumentFormatPDF DocumentFormat = "pdf"
)

// Document is one generated artifact tied to a reborn and a template.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index: user_id
//   - GSI reborn_id-index: reborn_id
//   - GSI status-index: status
//
// Transitions never mutate the receiver: every state change returns a new snapshot
// that the caller persists.
type Document struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	RebornID     string            `json:"reborn_id"`
	Type         DocumentType      `json:"type"`
	Status       DocumentStatus    `json:"status"`
	FileURL      string            `json:"file_url,omitempty"`
	TemplateData map[string]string `json:"template_data"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func NewDocument(id, userID, rebornID string, docType DocumentType, templateData map[string]string, now time.Time) Document {
	return Document{
		ID:           id,
		UserID:       userID,
		RebornID:     rebornID,
		Type:         docType,
		Status:       DocumentStatusPending,
		TemplateData: cloneTemplateData(templateData),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (d Document) StartProcessing(now time.Time) (Document, error) {
	if d.Status != DocumentStatusPending {
		return Document{}, ErrInvalidDocumentTransition
	}
	return d.withStatus(DocumentStatusProcessing, d.FileURL, now), nil
}

func (d Document) MarkAsReady(fileURL string, now time.Time) (Document, error) {
	if d.Status != DocumentStatusProcessing {
		return Document{}, ErrInvalidDocumentTransition
	}
	if fileURL == "" {
		return Document{}, ErrMissingFileURL
	}
	return d.withStatus(DocumentStatusReady, fileURL, now), nil
}

func (d Document) MarkAsFailed(now time.Time) (Document, error) {
	if d.Status != DocumentStatusProcessing {
		return Document{}, ErrInvalidDocumentTransition
	}
	return d.withStatus(DocumentStatusFailed, d.FileURL, now), nil
}

func (d Document) BelongsToUser(userID string) bool {
	return d.UserID != "" && d.UserID == userID
}

func (d Document) IsReady() bool {
	return d.Status == DocumentStatusReady
}

func (d Document) IsTerminal() bool {
	return d.Status == DocumentStatusReady || d.Status == DocumentStatusFailed
}

func (d Document) withStatus(status DocumentStatus, fileURL string, now time.Time) Document {
	next := d
	next.Status = status
	next.FileURL = fileURL
	next.TemplateData = cloneTemplateData(d.TemplateData)
	next.UpdatedAt = now
	return next
}

func cloneTemplateData(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ErrUnsupportedFormat is returned for formats that are accepted by the API contract but have no
// renderer yet (pdf).
var ErrUnsupportedFormat = errors.New("unsupported document format")

func (f DocumentFormat) IsValid() bool {
	return f == DocumentFormatPNG || f == DocumentFormatPDF
}
