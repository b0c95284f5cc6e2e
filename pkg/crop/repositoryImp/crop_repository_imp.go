package repositoryImp

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"farmmate/entities"
	"farmmate/pkg/apperr"
	"farmmate/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cropRepo) FindByID(ctx context.Context, id, uid string) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&c).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &c, nil
}

func (r *cropRepo) ListByUser(ctx context.Context, uid string) ([]entities.Crop, error) {
	out := []entities.Crop{}
	err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("created_at ASC, rowid ASC").Find(&out).Error
	return out, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *cropRepo) Search(ctx context.Context, uid, query string) ([]entities.Crop, error) {
	like := "%" + escapeLike(strings.ToLower(query)) + "%"
	out := []entities.Crop{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\' OR LOWER(variety) LIKE ? ESCAPE '\'`, like, like, like).
		Order("created_at ASC, rowid ASC").
		Find(&out).Error
	return out, err
}

func (r *cropRepo) Update(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cropRepo) Delete(ctx context.Context, id, uid string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Crop{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
