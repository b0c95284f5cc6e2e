package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"farmmate/entities"
	"farmmate/pkg/apperr"
	repo "farmmate/pkg/crop/repository"
	"farmmate/pkg/crop/service"
)

type cropSvc struct{ r repo.CropRepository }

func NewCropService(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) List(ctx context.Context, uid, search string) ([]entities.Crop, error) {
	if q := strings.TrimSpace(search); q != "" {
		return s.r.Search(ctx, uid, q)
	}
	return s.r.ListByUser(ctx, uid)
}

func validate(c *entities.Crop) error {
	required := []struct{ field, v string }{
		{"category", c.Category},
		{"name", c.Name},
		{"variety", c.Variety},
	}
	for _, f := range required {
		if f.v == "" {
			return fmt.Errorf("%w: %s is required", apperr.ErrInvalid, f.field)
		}
	}
	if !entities.ValidCropStatus(c.Status) {
		return fmt.Errorf("%w: unknown crop status %q", apperr.ErrInvalid, c.Status)
	}
	return nil
}

func (s *cropSvc) Create(ctx context.Context, uid string, in service.CropInput) (*entities.Crop, error) {
	c := &entities.Crop{
		UserID:   uid,
		FarmID:   strings.TrimSpace(in.FarmID),
		Category: strings.TrimSpace(in.Category),
		Name:     strings.TrimSpace(in.Name),
		Variety:  strings.TrimSpace(in.Variety),
		Status:   strings.TrimSpace(in.Status),
	}
	if c.Status == "" {
		c.Status = entities.CropGrowing
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cropSvc) Update(ctx context.Context, uid, id string, p service.CropPatch) (*entities.Crop, error) {
	cur, err := s.r.FindByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if p.FarmID != nil {
		cur.FarmID = strings.TrimSpace(*p.FarmID)
	}
	if p.Category != nil {
		cur.Category = strings.TrimSpace(*p.Category)
	}
	if p.Name != nil {
		cur.Name = strings.TrimSpace(*p.Name)
	}
	if p.Variety != nil {
		cur.Variety = strings.TrimSpace(*p.Variety)
	}
	if p.Status != nil {
		cur.Status = strings.TrimSpace(*p.Status)
	}
	if err := validate(cur); err != nil {
		return nil, err
	}
	if err := s.r.Update(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *cropSvc) Delete(ctx context.Context, uid, id string) error {
	return s.r.Delete(ctx, id, uid)
}
