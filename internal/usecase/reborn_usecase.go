package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"reborn_api/internal/domain/entities"
	"reborn_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MinRebornWeight = 100
	MaxRebornWeight = 10000
	MinRebornHeight = 10
	MaxRebornHeight = 100
)

var (
	ErrInvalidRebornName      = errors.New("invalid reborn name")
	ErrInvalidRebornBirthDate = errors.New("invalid reborn birth date")
	ErrInvalidRebornWeight    = errors.New("reborn weight must be between 100 and 10000 grams")
	ErrInvalidRebornHeight    = errors.New("reborn height must be between 10 and 100 cm")
)

type CreateRebornInput struct {
	UserID      string
	Name        string
	BirthDate   time.Time
	Weight      int
	Height      int
	PhotoURL    string
	Description string
}

// IRebornUseCase manages the caller's reborns. Reborns of other users are reported as not found.

type IRebornUseCase interface {
	CreateReborn(ctx context.Context, in CreateRebornInput) (entities.Reborn, error)
	ListUserReborns(ctx context.Context, userID string) ([]entities.Reborn, error)
	GetReborn(ctx context.Context, userID, rebornID string) (entities.Reborn, error)
}

type RebornUseCase struct {
	repo interfaces.IRebornRepository
	log  *zap.Logger
}

var _ IRebornUseCase = (*RebornUseCase)(nil)

func NewRebornUseCase(repo interfaces.IRebornRepository, log *zap.Logger) *RebornUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &RebornUseCase{repo: repo, log: log}
}

func (u *RebornUseCase) CreateReborn(ctx context.Context, in CreateRebornInput) (entities.Reborn, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		return entities.Reborn{}, ErrInvalidUserID
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Reborn{}, ErrInvalidRebornName
	}
	if in.BirthDate.IsZero() {
		return entities.Reborn{}, ErrInvalidRebornBirthDate
	}
	if in.Weight < MinRebornWeight || in.Weight > MaxRebornWeight {
		return entities.Reborn{}, ErrInvalidRebornWeight
	}
	if in.Height < MinRebornHeight || in.Height > MaxRebornHeight {
		return entities.Reborn{}, ErrInvalidRebornHeight
	}

	now := time.Now().UTC()
	r := entities.Reborn{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Name:        in.Name,
		BirthDate:   in.BirthDate,
		Weight:      in.Weight,
		Height:      in.Height,
		PhotoURL:    strings.TrimSpace(in.PhotoURL),
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Reborn{}, err
	}
	u.log.Info("reborn created", zap.String("reborn_id", created.ID), zap.String("user_id", created.UserID))
	return created, nil
}

func (u *RebornUseCase) ListUserReborns(ctx context.Context, userID string) ([]entities.Reborn, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *RebornUseCase) GetReborn(ctx context.Context, userID, rebornID string) (entities.Reborn, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Reborn{}, ErrInvalidUserID
	}
	rebornID = strings.TrimSpace(rebornID)
	if rebornID == "" {
		return entities.Reborn{}, ErrInvalidRebornID
	}

	r, err := u.repo.GetByID(ctx, rebornID)
	if err != nil {
		return entities.Reborn{}, err
	}
	if r.ID == "" {
		return entities.Reborn{}, newNotFound(ResourceSubject, ReasonMissing)
	}
	if !r.BelongsToUser(userID) {
		return entities.Reborn{}, newNotFound(ResourceSubject, ReasonNotOwned)
	}
	return r, nil
}
