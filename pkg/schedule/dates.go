// Package schedule holds the work calculator and calendar logic: the
// task-type interval table, staggered schedule generation, month-grid and
// rolling-window day enumeration, and binding tasks to days.
//
// Dates travel as YYYY-MM-DD strings. Arithmetic is done on UTC midnight
// values so that adding days never crosses a DST boundary.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"farmmate/pkg/apperr"
)

const DateLayout = "2006-01-02"

// ErrInvalidDate is returned for any date string that is not a real
// YYYY-MM-DD calendar date.
var ErrInvalidDate = fmt.Errorf("%w: invalid date", apperr.ErrInvalid)

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, s)
	}
	return t, nil
}

func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// Today returns the current date in loc as YYYY-MM-DD.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return FormatDate(now.In(loc))
}

// DateRange lists every date from..to inclusive. An inverted range is an
// error; so is one longer than maxDays when maxDays > 0.
func DateRange(from, to string, maxDays int) ([]string, error) {
	start, err := ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end %s is before start %s", apperr.ErrInvalid, to, from)
	}
	n := int(end.Sub(start).Hours()/24) + 1
	if maxDays > 0 && n > maxDays {
		return nil, fmt.Errorf("%w: range of %d days exceeds %d", apperr.ErrInvalid, n, maxDays)
	}
	out := make([]string, 0, n)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, FormatDate(d))
	}
	return out, nil
}
