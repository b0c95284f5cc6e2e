package repository

import (
	"context"

	"farmmate/entities"
)

type FarmRepository interface {
	Create(ctx context.Context, f *entities.Farm) error
	FindByID(ctx context.Context, id, uid string) (*entities.Farm, error)
	ListByUser(ctx context.Context, uid string) ([]entities.Farm, error)
	Update(ctx context.Context, f *entities.Farm) error
	Delete(ctx context.Context, id, uid string) error
}
