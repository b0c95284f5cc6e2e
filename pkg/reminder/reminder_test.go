package reminder

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmmate/entities"
	"farmmate/pkg/logx"
)

type fakeDue struct {
	gotDate string
	tasks   []entities.Task
	err     error
}

func (f *fakeDue) DueOn(_ context.Context, date string) ([]entities.Task, error) {
	f.gotDate = date
	return f.tasks, f.err
}

func TestGroupPerUser(t *testing.T) {
	got := Group("2024-05-01", []entities.Task{
		{UserID: "b", Title: "당근 수확"},
		{UserID: "a", Title: "콜라비 파종"},
		{UserID: "b", Title: "비트 물주기"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, Digest{UserID: "a", Date: "2024-05-01", Titles: []string{"콜라비 파종"}}, got[0])
	assert.Equal(t, []string{"당근 수확", "비트 물주기"}, got[1].Titles)
}

func TestRunOnceUsesLocalDay(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)
	due := &fakeDue{tasks: []entities.Task{{UserID: "user-1", Title: "콜라비 파종"}}}
	var buf bytes.Buffer
	s := New(due, "0 6 * * *", seoul, logx.NewWriter(&buf, "info", false))

	// 2024-04-30 20:00 UTC is already May 1st in Seoul.
	got, err := s.RunOnce(context.Background(), time.Date(2024, 4, 30, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", due.gotDate)
	require.Len(t, got, 1)
	assert.Contains(t, buf.String(), "tasks due today")
	assert.Contains(t, buf.String(), "user-1")
}

func TestRunOnceError(t *testing.T) {
	s := New(&fakeDue{err: errors.New("boom")}, "", time.UTC, logx.Nop())
	_, err := s.RunOnce(context.Background(), time.Now())
	assert.EqualError(t, err, "boom")
}

func TestStartRejectsBadExpression(t *testing.T) {
	s := New(&fakeDue{}, "not a cron", time.UTC, logx.Nop())
	assert.Error(t, s.Start(context.Background()))
}

func TestStartDisabledAndStop(t *testing.T) {
	s := New(&fakeDue{}, "", time.UTC, logx.Nop())
	require.NoError(t, s.Start(context.Background()))
	s.Stop(context.Background())

	s = New(&fakeDue{}, "@daily", time.UTC, logx.Nop())
	require.NoError(t, s.Start(context.Background()))
	s.Stop(context.Background())
}
