package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmmate/entities"
	"farmmate/pkg/apperr"
	"farmmate/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(ctx context.Context, f *entities.Farm) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *farmRepo) FindByID(ctx context.Context, id, uid string) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &f, nil
}

func (r *farmRepo) ListByUser(ctx context.Context, uid string) ([]entities.Farm, error) {
	out := []entities.Farm{}
	err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("created_at ASC, rowid ASC").Find(&out).Error
	return out, err
}

func (r *farmRepo) Update(ctx context.Context, f *entities.Farm) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *farmRepo) Delete(ctx context.Context, id, uid string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Farm{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
