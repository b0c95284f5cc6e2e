package service

import (
	"context"

	"farmmate/entities"
	"farmmate/pkg/task/repository"
)

type TaskService interface {
	List(ctx context.Context, uid string, f repository.Filter) ([]entities.Task, error)
	Get(ctx context.Context, uid, id string) (*entities.Task, error)
	Create(ctx context.Context, uid string, in TaskInput) (*entities.Task, error)
	Update(ctx context.Context, uid, id string, p TaskPatch) (*entities.Task, error)
	Delete(ctx context.Context, uid, id string) error
	Complete(ctx context.Context, uid, id string) (*entities.Task, error)

	// CreateMany creates each input independently; one failure never
	// rolls back or skips the others.
	CreateMany(ctx context.Context, uid string, ins []TaskInput) BulkResult
	CreateBatch(ctx context.Context, uid string, in BatchInput) (BulkResult, error)
	CreateRange(ctx context.Context, uid string, in RangeInput) (BulkResult, error)
}

type TaskInput struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	TaskType      string  `json:"taskType"`
	ScheduledDate string  `json:"scheduledDate"`
	EndDate       *string `json:"endDate"`
	FarmID        string  `json:"farmId"`
	CropID        string  `json:"cropId"`
	Completed     int     `json:"completed"`
}

// TaskPatch only touches non-nil fields.
type TaskPatch struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	TaskType      *string `json:"taskType"`
	ScheduledDate *string `json:"scheduledDate"`
	EndDate       *string `json:"endDate"`
	FarmID        *string `json:"farmId"`
	CropID        *string `json:"cropId"`
	Completed     *int    `json:"completed"`
}

// BatchInput registers several task types for one crop on one date.
type BatchInput struct {
	TaskTypes     []string `json:"taskTypes"`
	ScheduledDate string   `json:"scheduledDate"`
	FarmID        string   `json:"farmId"`
	CropID        string   `json:"cropId"`
	CropName      string   `json:"cropName"`
	Description   string   `json:"description"`
}

// RangeInput registers one task type on every day of [From, To].
type RangeInput struct {
	TaskType    string `json:"taskType"`
	From        string `json:"from"`
	To          string `json:"to"`
	FarmID      string `json:"farmId"`
	CropID      string `json:"cropId"`
	CropName    string `json:"cropName"`
	Description string `json:"description"`
}

type ItemResult struct {
	Index int            `json:"index"`
	Task  *entities.Task `json:"task,omitempty"`
	Error string         `json:"error,omitempty"`
}

type BulkResult struct {
	Items   []ItemResult `json:"items"`
	Created int          `json:"created"`
	Failed  int          `json:"failed"`
}

func (r *BulkResult) Add(i int, t *entities.Task, err error) {
	if err != nil {
		r.Items = append(r.Items, ItemResult{Index: i, Error: err.Error()})
		r.Failed++
		return
	}
	r.Items = append(r.Items, ItemResult{Index: i, Task: t})
	r.Created++
}
