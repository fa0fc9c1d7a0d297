package interfaces

import (
	"context"
	"reborn_api/internal/domain/entities"
)

// ICertificateGenerator renders a birth certificate in memory.
type ICertificateGenerator interface {
	Generate(ctx context.Context, tpl entities.DocumentTemplate, reborn entities.Reborn, custom entities.CertificateFields, format entities.DocumentFormat) (entities.GeneratedFile, error)
}
