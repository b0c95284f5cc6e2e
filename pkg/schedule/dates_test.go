package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmmate/pkg/apperr"
)

func TestDateRange(t *testing.T) {
	got, err := DateRange("2024-02-27", "2024-03-01", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}, got)

	got, err = DateRange("2024-01-01", "2024-01-01", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01"}, got)

	_, err = DateRange("2024-01-02", "2024-01-01", 0)
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = DateRange("2024-01-01", "2024-12-31", 30)
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestToday(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	now := time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-01", Today(now, seoul))
	assert.Equal(t, "2024-05-31", Today(now, time.UTC))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-02-29"))
	assert.False(t, ValidDate("2023-02-29"))
	assert.False(t, ValidDate(""))
}
