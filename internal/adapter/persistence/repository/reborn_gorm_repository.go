package repository

import (
	"context"
	"errors"
	"time"

	"reborn_api/internal/domain/entities"
	"reborn_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// RebornModel is the relational row behind entities.Reborn.
type RebornModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `gorm:"type:varchar(64);index;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	BirthDate   time.Time `gorm:"type:date;not null"`
	Weight      int       `gorm:"not null"`
	Height      int       `gorm:"not null"`
	PhotoURL    string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (RebornModel) TableName() string {
	return "reborns"
}

type RebornGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IRebornRepository = (*RebornGormRepository)(nil)

func NewRebornGormRepository(db *gorm.DB) *RebornGormRepository {
	return &RebornGormRepository{db: db}
}

func (r *RebornGormRepository) Create(ctx context.Context, reborn entities.Reborn) (entities.Reborn, error) {
	m := toRebornModel(reborn)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Reborn{}, err
	}
	return fromRebornModel(m), nil
}

func (r *RebornGormRepository) GetByID(ctx context.Context, id string) (entities.Reborn, error) {
	var m RebornModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Reborn{}, nil
	}
	if err != nil {
		return entities.Reborn{}, err
	}
	return fromRebornModel(m), nil
}

func (r *RebornGormRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Reborn, error) {
	var rows []RebornModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Reborn, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromRebornModel(m))
	}
	return out, nil
}

// Update returns an empty Reborn when no row matched.
func (r *RebornGormRepository) Update(ctx context.Context, reborn entities.Reborn) (entities.Reborn, error) {
	res := r.db.WithContext(ctx).Model(&RebornModel{ID: reborn.ID}).Updates(map[string]interface{}{
		"name":        reborn.Name,
		"birth_date":  reborn.BirthDate,
		"weight":      reborn.Weight,
		"height":      reborn.Height,
		"photo_url":   reborn.PhotoURL,
		"description": reborn.Description,
		"updated_at":  reborn.UpdatedAt,
	})
	if res.Error != nil {
		return entities.Reborn{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Reborn{}, nil
	}
	return reborn, nil
}

func (r *RebornGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&RebornModel{}, "id = ?", id).Error
}

func toRebornModel(r entities.Reborn) RebornModel {
	return RebornModel{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		BirthDate:   r.BirthDate,
		Weight:      r.Weight,
		Height:      r.Height,
		PhotoURL:    r.PhotoURL,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func fromRebornModel(m RebornModel) entities.Reborn {
	return entities.Reborn{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		BirthDate:   m.BirthDate,
		Weight:      m.Weight,
		Height:      m.Height,
		PhotoURL:    m.PhotoURL,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
