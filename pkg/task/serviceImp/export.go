package serviceImp

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"farmmate/entities"
)

const exportSheet = "Tasks"

var exportHeader = []any{"ID", "예정일", "종료일", "작업", "제목", "설명", "농장", "작물", "완료", "완료일시"}

// ExportWorkbook renders tasks as a single-sheet workbook, one row per
// task in the given order. The caller closes the file.
func ExportWorkbook(tasks []entities.Task) (*excelize.File, error) {
	x := excelize.NewFile()
	if err := x.SetSheetName(x.GetSheetName(0), exportSheet); err != nil {
		x.Close()
		return nil, err
	}
	if err := x.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		x.Close()
		return nil, err
	}
	for i, t := range tasks {
		end, doneAt := "", ""
		if t.EndDate != nil {
			end = *t.EndDate
		}
		if t.CompletedAt != nil {
			doneAt = t.CompletedAt.Format("2006-01-02 15:04")
		}
		row := []any{t.ID, t.ScheduledDate, end, t.TaskType, t.Title, t.Description, t.FarmID, t.CropID, t.Completed == 1, doneAt}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			x.Close()
			return nil, err
		}
		if err := x.SetSheetRow(exportSheet, cell, &row); err != nil {
			x.Close()
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return x, nil
}
