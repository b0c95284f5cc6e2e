package service

import (
	"context"

	"farmmate/entities"
)

type FarmService interface {
	List(ctx context.Context, uid string) ([]entities.Farm, error)
	Create(ctx context.Context, uid string, in FarmInput) (*entities.Farm, error)
	Update(ctx context.Context, uid, id string, p FarmPatch) (*entities.Farm, error)
	Delete(ctx context.Context, uid, id string) error
}

type FarmInput struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	RowCount    int    `json:"rowCount"`
	Area        int    `json:"area"`
}

type FarmPatch struct {
	Name        *string `json:"name"`
	Environment *string `json:"environment"`
	RowCount    *int    `json:"rowCount"`
	Area        *int    `json:"area"`
}
