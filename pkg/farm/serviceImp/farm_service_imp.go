package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"farmmate/entities"
	"farmmate/pkg/apperr"
	repo "farmmate/pkg/farm/repository"
	"farmmate/pkg/farm/service"
)

type farmSvc struct{ r repo.FarmRepository }

func NewFarmService(r repo.FarmRepository) service.FarmService { return &farmSvc{r} }

func (s *farmSvc) List(ctx context.Context, uid string) ([]entities.Farm, error) {
	return s.r.ListByUser(ctx, uid)
}

func validate(name, env string, rows, area int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", apperr.ErrInvalid)
	}
	if strings.TrimSpace(env) == "" {
		return fmt.Errorf("%w: environment is required", apperr.ErrInvalid)
	}
	if rows < 0 || area < 0 {
		return fmt.Errorf("%w: rowCount and area must not be negative", apperr.ErrInvalid)
	}
	return nil
}

func (s *farmSvc) Create(ctx context.Context, uid string, in service.FarmInput) (*entities.Farm, error) {
	if err := validate(in.Name, in.Environment, in.RowCount, in.Area); err != nil {
		return nil, err
	}
	f := &entities.Farm{
		UserID:      uid,
		Name:        strings.TrimSpace(in.Name),
		Environment: strings.TrimSpace(in.Environment),
		RowCount:    in.RowCount,
		Area:        in.Area,
	}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *farmSvc) Update(ctx context.Context, uid, id string, p service.FarmPatch) (*entities.Farm, error) {
	cur, err := s.r.FindByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		cur.Name = strings.TrimSpace(*p.Name)
	}
	if p.Environment != nil {
		cur.Environment = strings.TrimSpace(*p.Environment)
	}
	if p.RowCount != nil {
		cur.RowCount = *p.RowCount
	}
	if p.Area != nil {
		cur.Area = *p.Area
	}
	if err := validate(cur.Name, cur.Environment, cur.RowCount, cur.Area); err != nil {
		return nil, err
	}
	if err := s.r.Update(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *farmSvc) Delete(ctx context.Context, uid, id string) error {
	return s.r.Delete(ctx, id, uid)
}
