package usecase

import (
	"context"
	"errors"

	"reborn_api/internal/domain/entities"
	"reborn_api/internal/usecase/interfaces"
)

var ErrInvalidDocumentType = errors.New("invalid document type")

// ITemplateUseCase lists document templates. Without a type it returns every active template.

type ITemplateUseCase interface {
	ListTemplates(ctx context.Context, docType *entities.DocumentType) ([]entities.DocumentTemplate, error)
}

type TemplateUseCase struct {
	repo interfaces.IDocumentTemplateRepository
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(repo interfaces.IDocumentTemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

func (u *TemplateUseCase) ListTemplates(ctx context.Context, docType *entities.DocumentType) ([]entities.DocumentTemplate, error) {
	if docType == nil {
		return u.repo.ListActive(ctx)
	}
	if !docType.IsValid() {
		return nil, ErrInvalidDocumentType
	}
	return u.repo.ListByType(ctx, *docType)
}
