package repository

import (
	"context"

	"farmmate/entities"
)

type RecommendationRepository interface {
	Create(ctx context.Context, r *entities.Recommendation) error
	ListByUser(ctx context.Context, uid string) ([]entities.Recommendation, error)
}
