package serviceImp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"farmmate/entities"
	"farmmate/pkg/apperr"
	"farmmate/pkg/logx"
	"farmmate/pkg/schedule"
	repo "farmmate/pkg/task/repository"
	"farmmate/pkg/task/service"
)

// MaxRangeDays caps range registration at roughly one season-year.
const MaxRangeDays = 366

const defaultCropName = "작물"

// CropFinder resolves a crop for naming and farm lookup.
type CropFinder interface {
	FindByID(ctx context.Context, id, uid string) (*entities.Crop, error)
}

type taskSvc struct {
	r     repo.TaskRepository
	crops CropFinder
	log   logx.Logger
	now   func() time.Time
}

func NewTaskService(r repo.TaskRepository, crops CropFinder, log logx.Logger) service.TaskService {
	return &taskSvc{r: r, crops: crops, log: log, now: time.Now}
}

func (s *taskSvc) List(ctx context.Context, uid string, f repo.Filter) ([]entities.Task, error) {
	f.Date, f.From, f.To = strings.TrimSpace(f.Date), strings.TrimSpace(f.From), strings.TrimSpace(f.To)
	for _, d := range []string{f.Date, f.From, f.To} {
		if d != "" && !schedule.ValidDate(d) {
			return nil, fmt.Errorf("%w %q", schedule.ErrInvalidDate, d)
		}
	}
	return s.r.List(ctx, uid, f)
}

func (s *taskSvc) Get(ctx context.Context, uid, id string) (*entities.Task, error) {
	return s.r.FindByID(ctx, id, uid)
}

func validateInput(in service.TaskInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", apperr.ErrInvalid)
	}
	if strings.TrimSpace(in.TaskType) == "" {
		return fmt.Errorf("%w: taskType is required", apperr.ErrInvalid)
	}
	if _, err := schedule.ParseDate(in.ScheduledDate); err != nil {
		return err
	}
	if in.EndDate != nil && *in.EndDate != "" {
		if _, err := schedule.ParseDate(*in.EndDate); err != nil {
			return err
		}
	}
	if in.Completed != 0 && in.Completed != 1 {
		return fmt.Errorf("%w: completed must be 0 or 1", apperr.ErrInvalid)
	}
	return nil
}

func (s *taskSvc) Create(ctx context.Context, uid string, in service.TaskInput) (*entities.Task, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	t := &entities.Task{
		UserID:        uid,
		FarmID:        in.FarmID,
		CropID:        in.CropID,
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		TaskType:      strings.TrimSpace(in.TaskType),
		ScheduledDate: strings.TrimSpace(in.ScheduledDate),
		Completed:     in.Completed,
	}
	if in.EndDate != nil && *in.EndDate != "" {
		end := strings.TrimSpace(*in.EndDate)
		t.EndDate = &end
	}
	if t.Completed == 1 {
		now := s.now()
		t.CompletedAt = &now
	}
	if err := s.r.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskSvc) Update(ctx context.Context, uid, id string, p service.TaskPatch) (*entities.Task, error) {
	cur, err := s.r.FindByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", apperr.ErrInvalid)
		}
		cur.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.TaskType != nil {
		if strings.TrimSpace(*p.TaskType) == "" {
			return nil, fmt.Errorf("%w: taskType cannot be empty", apperr.ErrInvalid)
		}
		cur.TaskType = strings.TrimSpace(*p.TaskType)
	}
	if p.ScheduledDate != nil {
		if _, err := schedule.ParseDate(*p.ScheduledDate); err != nil {
			return nil, err
		}
		cur.ScheduledDate = strings.TrimSpace(*p.ScheduledDate)
	}
	if p.EndDate != nil {
		if *p.EndDate == "" {
			cur.EndDate = nil
		} else {
			if _, err := schedule.ParseDate(*p.EndDate); err != nil {
				return nil, err
			}
			end := strings.TrimSpace(*p.EndDate)
			cur.EndDate = &end
		}
	}
	if p.FarmID != nil {
		cur.FarmID = *p.FarmID
	}
	if p.CropID != nil {
		cur.CropID = *p.CropID
	}
	if p.Completed != nil {
		switch *p.Completed {
		case 0:
			cur.Completed, cur.CompletedAt = 0, nil
		case 1:
			if cur.Completed == 0 {
				now := s.now()
				cur.Completed, cur.CompletedAt = 1, &now
			}
		default:
			return nil, fmt.Errorf("%w: completed must be 0 or 1", apperr.ErrInvalid)
		}
	}
	if err := s.r.Update(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *taskSvc) Delete(ctx context.Context, uid, id string) error {
	return s.r.Delete(ctx, id, uid)
}

func (s *taskSvc) Complete(ctx context.Context, uid, id string) (*entities.Task, error) {
	cur, err := s.r.FindByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	now := s.now()
	cur.Completed = 1
	cur.CompletedAt = &now
	if err := s.r.Update(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *taskSvc) CreateMany(ctx context.Context, uid string, ins []service.TaskInput) service.BulkResult {
	res := service.BulkResult{Items: make([]service.ItemResult, 0, len(ins))}
	for i, in := range ins {
		t, err := s.Create(ctx, uid, in)
		if err != nil {
			s.log.Warn("bulk task create failed", logx.String("uid", uid), logx.Int("index", i), logx.Err(err))
		}
		res.Add(i, t, err)
	}
	return res
}

// resolveCrop fills in the display name and farm for a crop reference.
// An unknown or empty crop id falls back to the caller's name.
func (s *taskSvc) resolveCrop(ctx context.Context, uid, cropID, cropName, farmID string) (string, string) {
	name := strings.TrimSpace(cropName)
	if cropID != "" && s.crops != nil {
		if c, err := s.crops.FindByID(ctx, cropID, uid); err == nil {
			if name == "" {
				name = c.Name
			}
			if farmID == "" {
				farmID = c.FarmID
			}
		}
	}
	if name == "" {
		name = defaultCropName
	}
	return name, farmID
}

func (s *taskSvc) CreateBatch(ctx context.Context, uid string, in service.BatchInput) (service.BulkResult, error) {
	if len(in.TaskTypes) == 0 {
		return service.BulkResult{}, fmt.Errorf("%w: at least one task type is required", apperr.ErrInvalid)
	}
	if _, err := schedule.ParseDate(in.ScheduledDate); err != nil {
		return service.BulkResult{}, err
	}
	name, farmID := s.resolveCrop(ctx, uid, in.CropID, in.CropName, in.FarmID)

	ins := make([]service.TaskInput, 0, len(in.TaskTypes))
	for _, work := range in.TaskTypes {
		desc := in.Description
		if desc == "" {
			desc = fmt.Sprintf("일괄 등록으로 생성된 %s 작업", work)
		}
		ins = append(ins, service.TaskInput{
			Title:         name + " " + work,
			Description:   desc,
			TaskType:      work,
			ScheduledDate: in.ScheduledDate,
			FarmID:        farmID,
			CropID:        in.CropID,
		})
	}
	return s.CreateMany(ctx, uid, ins), nil
}

func (s *taskSvc) CreateRange(ctx context.Context, uid string, in service.RangeInput) (service.BulkResult, error) {
	if strings.TrimSpace(in.TaskType) == "" {
		return service.BulkResult{}, fmt.Errorf("%w: taskType is required", apperr.ErrInvalid)
	}
	days, err := schedule.DateRange(in.From, in.To, MaxRangeDays)
	if err != nil {
		return service.BulkResult{}, err
	}
	name, farmID := s.resolveCrop(ctx, uid, in.CropID, in.CropName, in.FarmID)
	desc := in.Description
	if desc == "" {
		desc = fmt.Sprintf("개별 등록으로 생성된 %s 작업", in.TaskType)
	}

	ins := make([]service.TaskInput, 0, len(days))
	for _, d := range days {
		ins = append(ins, service.TaskInput{
			Title:         name + " " + in.TaskType,
			Description:   desc,
			TaskType:      in.TaskType,
			ScheduledDate: d,
			FarmID:        farmID,
			CropID:        in.CropID,
		})
	}
	return s.CreateMany(ctx, uid, ins), nil
}
