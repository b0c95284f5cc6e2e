package schedule

import (
	"time"

	"farmmate/entities"
)

// DefaultWindowDays is the length of the rolling calendar view.
const DefaultWindowDays = 14

// DayCell is one slot of a rendered calendar. Blank cells only pad the
// month grid so that day 1 lands under its weekday.
type DayCell struct {
	Blank bool            `json:"blank"`
	Day   int             `json:"day,omitempty"`
	Date  string          `json:"date,omitempty"`
	Tasks []entities.Task `json:"tasks,omitempty"`
}

// MonthGrid returns the Monday-first grid for the month containing ref:
// leading blanks for the weekdays before day 1, then every day of the
// month.
func MonthGrid(ref string) ([]DayCell, error) {
	t, err := ParseDate(ref)
	if err != nil {
		return nil, err
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	lead := (int(first.Weekday()) + 6) % 7

	cells := make([]DayCell, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, DayCell{Blank: true})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, DayCell{
			Day:  d,
			Date: FormatDate(first.AddDate(0, 0, d-1)),
		})
	}
	return cells, nil
}

// RollingWindow returns days consecutive cells starting at start.
func RollingWindow(start string, days int) ([]DayCell, error) {
	t, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return []DayCell{}, nil
	}
	cells := make([]DayCell, 0, days)
	for i := 0; i < days; i++ {
		d := t.AddDate(0, 0, i)
		cells = append(cells, DayCell{Day: d.Day(), Date: FormatDate(d)})
	}
	return cells, nil
}

// WeekDays are the Monday-first column headers of the month grid.
var WeekDays = []string{"월", "화", "수", "목", "금", "토", "일"}
