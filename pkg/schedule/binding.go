package schedule

import "farmmate/entities"

// TasksOn returns the tasks scheduled exactly on date, in input order.
// Matching is plain string equality; callers normalise to YYYY-MM-DD.
func TasksOn(tasks []entities.Task, date string) []entities.Task {
	out := []entities.Task{}
	for _, t := range tasks {
		if t.ScheduledDate == date {
			out = append(out, t)
		}
	}
	return out
}

// Bind fills every non-blank cell with TasksOn its date, in place, and
// returns cells. Blank cells keep a nil task list.
func Bind(cells []DayCell, tasks []entities.Task) []DayCell {
	for i := range cells {
		if cells[i].Blank {
			continue
		}
		cells[i].Tasks = TasksOn(tasks, cells[i].Date)
	}
	return cells
}

// Span returns the first and last concrete dates of cells, or empty
// strings when there are none.
func Span(cells []DayCell) (from, to string) {
	for _, c := range cells {
		if c.Blank {
			continue
		}
		if from == "" {
			from = c.Date
		}
		to = c.Date
	}
	return from, to
}
