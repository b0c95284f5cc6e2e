package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmmate/entities"
	"farmmate/pkg/apperr"
	"farmmate/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) Create(ctx context.Context, t *entities.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepo) FindByID(ctx context.Context, id, uid string) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&t).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &t, nil
}

// List keeps insertion order so that per-day binding stays stable.
func (r *taskRepo) List(ctx context.Context, uid string, f repository.Filter) ([]entities.Task, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", uid)
	switch {
	case f.Date != "":
		q = q.Where("scheduled_date = ?", f.Date)
	default:
		if f.From != "" {
			q = q.Where("scheduled_date >= ?", f.From)
		}
		if f.To != "" {
			q = q.Where("scheduled_date <= ?", f.To)
		}
	}
	out := []entities.Task{}
	if err := q.Order("created_at ASC, rowid ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) Update(ctx context.Context, t *entities.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *taskRepo) Delete(ctx context.Context, id, uid string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *taskRepo) DueOn(ctx context.Context, date string) ([]entities.Task, error) {
	var out []entities.Task
	err := r.db.WithContext(ctx).
		Where("scheduled_date = ? AND completed = 0", date).
		Order("user_id ASC, created_at ASC, rowid ASC").
		Find(&out).Error
	return out, err
}
