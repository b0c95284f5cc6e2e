package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "info", false).With(String("component", "test"))

	l.Info("task created", String("task_id", "t-1"), Int("count", 2), Err(errors.New("partial")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "task created", got["message"])
	assert.Equal(t, "test", got["component"])
	assert.Equal(t, "t-1", got["task_id"])
	assert.EqualValues(t, 2, got["count"])
	assert.Equal(t, "partial", got["err"])
	assert.Contains(t, got["caller"], "logx_test.go")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "warn", false)
	l.Info("hidden")
	assert.Zero(t, buf.Len())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestZeroAndNopLoggersAreSilent(t *testing.T) {
	var l Logger
	l.Error("nothing")
	Nop().Error("nothing")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warning "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}
