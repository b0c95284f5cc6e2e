package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadIntervals_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intervals.csv")
	body := "\uFEFFTask Type,Interval Days\n물주기,2\n순지르기,5\n,9\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	over, err := LoadIntervals(path)
	require.NoError(t, err)
	assert.Equal(t, Intervals{"물주기": 2, "순지르기": 5}, over)

	iv := DefaultIntervals().Merge(over)
	assert.Equal(t, 2, iv.Days("물주기"))
	assert.Equal(t, 5, iv.Days("순지르기"))
	assert.Equal(t, 7, iv.Days("비료주기"), "untouched defaults survive")
	assert.Len(t, iv, len(DefaultIntervals())+1)
}

func TestLoadIntervals_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intervals.xlsx")
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	require.NoError(t, x.SetSheetRow(sheet, "A1", &[]any{"작업", "간격"}))
	require.NoError(t, x.SetSheetRow(sheet, "A2", &[]any{"수확", 45}))
	require.NoError(t, x.SaveAs(path))
	require.NoError(t, x.Close())

	over, err := LoadIntervals(path)
	require.NoError(t, err)
	assert.Equal(t, Intervals{"수확": 45}, over)
}

func TestLoadIntervals_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadIntervals(filepath.Join(dir, "intervals.json"))
	assert.ErrorContains(t, err, "unsupported")

	_, err = LoadIntervals(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	noCols := filepath.Join(dir, "nocols.csv")
	require.NoError(t, os.WriteFile(noCols, []byte("name,value\n물주기,1\n"), 0o644))
	_, err = LoadIntervals(noCols)
	assert.ErrorContains(t, err, "missing taskType/days")

	negative := filepath.Join(dir, "negative.csv")
	require.NoError(t, os.WriteFile(negative, []byte("taskType,days\n물주기,-1\n"), 0o644))
	_, err = LoadIntervals(negative)
	assert.ErrorContains(t, err, "non-negative")
}
