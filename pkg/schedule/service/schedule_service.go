package service

import (
	"context"

	"farmmate/pkg/schedule"
	taskservice "farmmate/pkg/task/service"
)

type ScheduleService interface {
	Intervals() schedule.Intervals
	Preview(ctx context.Context, uid string, in PreviewInput) ([]schedule.WorkSchedule, error)
	// Submit turns each schedule into a task. Items are created
	// independently and the result reports every failure.
	Submit(ctx context.Context, uid string, in SubmitInput) (taskservice.BulkResult, error)
	Month(ctx context.Context, uid, ref string) (*CalendarView, error)
	Window(ctx context.Context, uid, start string, days int) (*CalendarView, error)
}

type PreviewInput struct {
	BaseDate string   `json:"baseDate"`
	TaskType string   `json:"taskType"`
	CropIDs  []string `json:"cropIds"`
}

type SubmitInput struct {
	TaskType  string                  `json:"taskType"`
	Schedules []schedule.WorkSchedule `json:"schedules"`
}

type CalendarView struct {
	From     string             `json:"from"`
	To       string             `json:"to"`
	WeekDays []string           `json:"weekDays,omitempty"`
	Cells    []schedule.DayCell `json:"cells"`
}
