package interfaces

import (
	"context"
	"reborn_api/internal/domain/entities"
)

// IDocumentTemplateRepository abstracts relational persistence for DocumentTemplate.
//
//   - ListByType returns active templates of one type, oldest first
//   - ListActive returns every active template ordered by type then creation
//   - GetByID ignores the active flag; callers decide availability

type IDocumentTemplateRepository interface {
	GetByID(ctx context.Context, id string) (entities.DocumentTemplate, error)
	ListByType(ctx context.Context, docType entities.DocumentType) ([]entities.DocumentTemplate, error)
	ListActive(ctx context.Context) ([]entities.DocumentTemplate, error)
	Save(ctx context.Context, t entities.DocumentTemplate) (entities.DocumentTemplate, error)
	Count(ctx context.Context) (int64, error)
}
