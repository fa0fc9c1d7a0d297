package repository

import (
	"context"
	"errors"
	"time"

	"reborn_api/internal/domain/entities"
	"reborn_api/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentTemplateModel stores placeholders as a jsonb column.
type DocumentTemplateModel struct {
	ID           string                                        `gorm:"primaryKey;type:varchar(36)"`
	Name         string                                        `gorm:"type:varchar(255);not null"`
	Type         string                                        `gorm:"type:varchar(64);index;not null"`
	Description  string                                        `gorm:"type:text"`
	ThumbnailURL string                                        `gorm:"type:text"`
	BaseImageURL string                                        `gorm:"type:text"`
	Width        int                                           `gorm:"not null"`
	Height       int                                           `gorm:"not null"`
	Placeholders datatypes.JSONSlice[entities.TextPlaceholder] `gorm:"not null"`
	Palette      string                                        `gorm:"type:varchar(16)"`
	IsActive     bool                                          `gorm:"not null;index"`
	CreatedAt    time.Time
}

func (DocumentTemplateModel) TableName() string {
	return "document_templates"
}

type DocumentTemplateGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDocumentTemplateRepository = (*DocumentTemplateGormRepository)(nil)

func NewDocumentTemplateGormRepository(db *gorm.DB) *DocumentTemplateGormRepository {
	return &DocumentTemplateGormRepository{db: db}
}

func (r *DocumentTemplateGormRepository) GetByID(ctx context.Context, id string) (entities.DocumentTemplate, error) {
	var m DocumentTemplateModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.DocumentTemplate{}, nil
	}
	if err != nil {
		return entities.DocumentTemplate{}, err
	}
	return fromTemplateModel(m), nil
}

func (r *DocumentTemplateGormRepository) ListByType(ctx context.Context, docType entities.DocumentType) ([]entities.DocumentTemplate, error) {
	return r.list(r.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", string(docType), true).
		Order("created_at asc"))
}

func (r *DocumentTemplateGormRepository) ListActive(ctx context.Context) ([]entities.DocumentTemplate, error) {
	return r.list(r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("type asc, created_at asc"))
}

// Save inserts the template or overwrites every column of an existing row.
func (r *DocumentTemplateGormRepository) Save(ctx context.Context, t entities.DocumentTemplate) (entities.DocumentTemplate, error) {
	m := toTemplateModel(t)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error; err != nil {
		return entities.DocumentTemplate{}, err
	}
	return fromTemplateModel(m), nil
}

func (r *DocumentTemplateGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&DocumentTemplateModel{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *DocumentTemplateGormRepository) list(q *gorm.DB) ([]entities.DocumentTemplate, error) {
	var rows []DocumentTemplateModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.DocumentTemplate, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromTemplateModel(m))
	}
	return out, nil
}

func toTemplateModel(t entities.DocumentTemplate) DocumentTemplateModel {
	return DocumentTemplateModel{
		ID:           t.ID,
		Name:         t.Name,
		Type:         string(t.Type),
		Description:  t.Description,
		ThumbnailURL: t.ThumbnailURL,
		BaseImageURL: t.BaseImageURL,
		Width:        t.Width,
		Height:       t.Height,
		Placeholders: datatypes.NewJSONSlice(t.Placeholders),
		Palette:      string(t.Palette),
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
	}
}

func fromTemplateModel(m DocumentTemplateModel) entities.DocumentTemplate {
	placeholders := make([]entities.TextPlaceholder, len(m.Placeholders))
	copy(placeholders, m.Placeholders)
	return entities.DocumentTemplate{
		ID:           m.ID,
		Name:         m.Name,
		Type:         entities.DocumentType(m.Type),
		Description:  m.Description,
		ThumbnailURL: m.ThumbnailURL,
		BaseImageURL: m.BaseImageURL,
		Width:        m.Width,
		Height:       m.Height,
		Placeholders: placeholders,
		Palette:      entities.Palette(m.Palette),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}
