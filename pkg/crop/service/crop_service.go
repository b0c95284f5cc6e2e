package service

import (
	"context"

	"farmmate/entities"
)

type CropService interface {
	List(ctx context.Context, uid, search string) ([]entities.Crop, error)
	Create(ctx context.Context, uid string, in CropInput) (*entities.Crop, error)
	Update(ctx context.Context, uid, id string, p CropPatch) (*entities.Crop, error)
	Delete(ctx context.Context, uid, id string) error
}

type CropInput struct {
	FarmID   string `json:"farmId"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Variety  string `json:"variety"`
	Status   string `json:"status"`
}

type CropPatch struct {
	FarmID   *string `json:"farmId"`
	Category *string `json:"category"`
	Name     *string `json:"name"`
	Variety  *string `json:"variety"`
	Status   *string `json:"status"`
}
