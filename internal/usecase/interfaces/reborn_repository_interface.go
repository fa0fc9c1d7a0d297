package interfaces

import (
	"context"
	"reborn_api/internal/domain/entities"
)

// IRebornRepository abstracts relational persistence for Reborn.
//
// Lookups return a zero-value entity (empty ID) when nothing matches.

type IRebornRepository interface {
	Create(ctx context.Context, r entities.Reborn) (entities.Reborn, error)
	GetByID(ctx context.Context, id string) (entities.Reborn, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Reborn, error)
	Update(ctx context.Context, r entities.Reborn) (entities.Reborn, error)
	Delete(ctx context.Context, id string) error
}
