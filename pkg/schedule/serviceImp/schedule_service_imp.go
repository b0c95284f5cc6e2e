package serviceImp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"farmmate/entities"
	"farmmate/pkg/apperr"
	"farmmate/pkg/schedule"
	"farmmate/pkg/schedule/service"
	taskrepo "farmmate/pkg/task/repository"
	taskservice "farmmate/pkg/task/service"
)

// MaxWindowDays bounds the rolling calendar.
const MaxWindowDays = 366

const fallbackCropName = "작물"

// CropLister is the slice of crop storage the calculator needs.
type CropLister interface {
	ListByUser(ctx context.Context, uid string) ([]entities.Crop, error)
}

type schedSvc struct {
	gen   *schedule.Generator
	crops CropLister
	tasks taskservice.TaskService
	loc   *time.Location
	now   func() time.Time
}

func NewScheduleService(gen *schedule.Generator, crops CropLister, tasks taskservice.TaskService, loc *time.Location) service.ScheduleService {
	if loc == nil {
		loc = time.Local
	}
	return &schedSvc{gen: gen, crops: crops, tasks: tasks, loc: loc, now: time.Now}
}

func (s *schedSvc) Intervals() schedule.Intervals { return s.gen.Intervals() }

func (s *schedSvc) Preview(ctx context.Context, uid string, in service.PreviewInput) ([]schedule.WorkSchedule, error) {
	if strings.TrimSpace(in.TaskType) == "" {
		return nil, fmt.Errorf("%w: taskType is required", apperr.ErrInvalid)
	}
	crops, err := s.crops.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.gen.Generate(in.BaseDate, in.TaskType, in.CropIDs, crops)
}

func (s *schedSvc) Submit(ctx context.Context, uid string, in service.SubmitInput) (taskservice.BulkResult, error) {
	taskType := strings.TrimSpace(in.TaskType)
	if taskType == "" {
		return taskservice.BulkResult{}, fmt.Errorf("%w: taskType is required", apperr.ErrInvalid)
	}
	crops, err := s.crops.ListByUser(ctx, uid)
	if err != nil {
		return taskservice.BulkResult{}, err
	}
	byID := make(map[string]entities.Crop, len(crops))
	for _, c := range crops {
		byID[c.ID] = c
	}

	ins := make([]taskservice.TaskInput, 0, len(in.Schedules))
	for _, ws := range in.Schedules {
		name, farmID := fallbackCropName, ""
		if c, ok := byID[ws.CropID]; ok {
			name, farmID = c.Name, c.FarmID
		}
		ins = append(ins, taskservice.TaskInput{
			Title:         name + " " + taskType,
			Description:   fmt.Sprintf("농작업 계산기를 통해 생성된 %s 일정", taskType),
			TaskType:      taskType,
			ScheduledDate: ws.SelectedDate,
			FarmID:        farmID,
			CropID:        ws.CropID,
		})
	}
	return s.tasks.CreateMany(ctx, uid, ins), nil
}

func (s *schedSvc) today() string { return schedule.Today(s.now(), s.loc) }

func (s *schedSvc) Month(ctx context.Context, uid, ref string) (*service.CalendarView, error) {
	if ref == "" {
		ref = s.today()
	}
	cells, err := schedule.MonthGrid(ref)
	if err != nil {
		return nil, err
	}
	return s.bind(ctx, uid, cells, schedule.WeekDays)
}

func (s *schedSvc) Window(ctx context.Context, uid, start string, days int) (*service.CalendarView, error) {
	if start == "" {
		start = s.today()
	}
	if days == 0 {
		days = schedule.DefaultWindowDays
	}
	if days < 0 || days > MaxWindowDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", apperr.ErrInvalid, MaxWindowDays)
	}
	cells, err := schedule.RollingWindow(start, days)
	if err != nil {
		return nil, err
	}
	return s.bind(ctx, uid, cells, nil)
}

func (s *schedSvc) bind(ctx context.Context, uid string, cells []schedule.DayCell, weekDays []string) (*service.CalendarView, error) {
	from, to := schedule.Span(cells)
	view := &service.CalendarView{From: from, To: to, WeekDays: weekDays, Cells: cells}
	if from == "" {
		return view, nil
	}
	tasks, err := s.tasks.List(ctx, uid, taskrepo.Filter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	view.Cells = schedule.Bind(cells, tasks)
	return view, nil
}
