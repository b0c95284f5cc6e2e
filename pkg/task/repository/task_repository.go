package repository

import (
	"context"

	"farmmate/entities"
)

// Filter narrows a task listing. Date wins over From/To when set; empty
// fields are ignored.
type Filter struct {
	Date string
	From string
	To   string
}

type TaskRepository interface {
	Create(ctx context.Context, t *entities.Task) error
	FindByID(ctx context.Context, id, uid string) (*entities.Task, error)
	List(ctx context.Context, uid string, f Filter) ([]entities.Task, error)
	Update(ctx context.Context, t *entities.Task) error
	Delete(ctx context.Context, id, uid string) error
	// DueOn lists incomplete tasks of every user scheduled on date.
	DueOn(ctx context.Context, date string) ([]entities.Task, error)
}
