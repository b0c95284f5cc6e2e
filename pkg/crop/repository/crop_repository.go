package repository

import (
	"context"

	"farmmate/entities"
)

type CropRepository interface {
	Create(ctx context.Context, c *entities.Crop) error
	FindByID(ctx context.Context, id, uid string) (*entities.Crop, error)
	ListByUser(ctx context.Context, uid string) ([]entities.Crop, error)
	// Search matches query against name, category and variety,
	// case-insensitively.
	Search(ctx context.Context, uid, query string) ([]entities.Crop, error)
	Update(ctx context.Context, c *entities.Crop) error
	Delete(ctx context.Context, id, uid string) error
}
