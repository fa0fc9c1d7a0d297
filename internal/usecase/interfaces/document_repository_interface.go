package interfaces

import (
	"context"
	"reborn_api/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for Document.
//
// Update stores the whole snapshot produced by a lifecycle transition.

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	Update(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Document, error)
	ListByRebornID(ctx context.Context, rebornID string) ([]entities.Document, error)
	ListByStatus(ctx context.Context, status entities.DocumentStatus) ([]entities.Document, error)
	Delete(ctx context.Context, id string) error
}
