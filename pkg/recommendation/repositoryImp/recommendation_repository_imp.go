package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmmate/entities"
	"farmmate/pkg/recommendation/repository"
)

type recRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendationRepository { return &recRepo{db} }

func (r *recRepo) Create(ctx context.Context, rec *entities.Recommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recRepo) ListByUser(ctx context.Context, uid string) ([]entities.Recommendation, error) {
	out := []entities.Recommendation{}
	err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("created_at DESC, rowid DESC").Find(&out).Error
	return out, err
}
