package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadIntervals reads a task-type interval override table from a .csv or
// .xlsx file. Only the rows of the file are returned; callers merge them
// over DefaultIntervals. A header row naming the task-type and days
// columns is required.
func LoadIntervals(path string) (Intervals, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("interval table %s: unsupported file type", path)
	}
	if err != nil {
		return nil, fmt.Errorf("interval table %s: %w", path, err)
	}
	over, err := parseIntervalRows(rows)
	if err != nil {
		return nil, fmt.Errorf("interval table %s: %w", path, err)
	}
	return over, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	for _, r := range []string{" ", "-", "_"} {
		s = strings.ReplaceAll(s, r, "")
	}
	return s
}

func parseIntervalRows(rows [][]string) (Intervals, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty table")
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}
	cType := findAny("taskType", "task", "work", "작업")
	cDays := findAny("days", "interval", "intervalDays", "간격")
	if cType == -1 || cDays == -1 {
		return nil, fmt.Errorf("missing taskType/days columns, found headers: %v", rows[0])
	}

	out := Intervals{}
	for n, rec := range rows[1:] {
		get := func(idx int) string {
			if idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		label := get(cType)
		if label == "" {
			continue
		}
		days, err := strconv.Atoi(get(cDays))
		if err != nil || days < 0 {
			return nil, fmt.Errorf("row %d (%s): days must be a non-negative integer, got %q", n+2, label, get(cDays))
		}
		out[label] = days
	}
	return out, nil
}
