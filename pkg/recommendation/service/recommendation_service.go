package service

import (
	"context"

	"farmmate/entities"
)

type RecommendationService interface {
	List(ctx context.Context, uid string) ([]entities.Recommendation, error)
	Create(ctx context.Context, uid string, in RecommendationInput) (*entities.Recommendation, error)
}

type RecommendationInput struct {
	Environment string `json:"environment"`
	Season      string `json:"season"`
}
