package schedule

import (
	"strings"

	"farmmate/entities"
)

// UnknownCropName is shown for a crop id that has no matching crop.
const UnknownCropName = "알 수 없는 작물"

// WorkSchedule is a not-yet-submitted recommendation for doing one task
// type on one crop. RecommendedDate is fixed at generation time;
// SelectedDate starts equal to it and is what gets submitted.
type WorkSchedule struct {
	CropID          string `json:"cropId"`
	CropName        string `json:"cropName"`
	RecommendedDate string `json:"recommendedDate"`
	SelectedDate    string `json:"selectedDate"`
}

// Select overrides the date that will be submitted. Past dates are
// allowed.
func (w *WorkSchedule) Select(date string) error {
	t, err := ParseDate(date)
	if err != nil {
		return err
	}
	w.SelectedDate = FormatDate(t)
	return nil
}

// Overridden reports whether the caller moved the date away from the
// recommendation.
func (w WorkSchedule) Overridden() bool { return w.SelectedDate != w.RecommendedDate }

type Generator struct {
	intervals Intervals
}

func NewGenerator(iv Intervals) *Generator {
	if iv == nil {
		iv = DefaultIntervals()
	}
	return &Generator{intervals: iv}
}

func (g *Generator) Intervals() Intervals { return g.intervals }

// Generate returns one schedule per crop id, in order. The i-th crop is
// recommended on baseDate + interval(taskType) + i so that crops sharing
// a task do not all land on the same day.
func (g *Generator) Generate(baseDate, taskType string, cropIDs []string, crops []entities.Crop) ([]WorkSchedule, error) {
	base, err := ParseDate(baseDate)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Crop, len(crops))
	for _, c := range crops {
		byID[c.ID] = c
	}

	interval := g.intervals.Days(taskType)
	out := make([]WorkSchedule, 0, len(cropIDs))
	for i, id := range cropIDs {
		d := FormatDate(base.AddDate(0, 0, interval+i))
		name := UnknownCropName
		if c, ok := byID[id]; ok {
			name = DisplayName(c)
		}
		out = append(out, WorkSchedule{
			CropID:          id,
			CropName:        name,
			RecommendedDate: d,
			SelectedDate:    d,
		})
	}
	return out, nil
}

// DisplayName renders a crop as "category → name → variety".
func DisplayName(c entities.Crop) string {
	return strings.Join([]string{c.Category, c.Name, c.Variety}, " → ")
}
