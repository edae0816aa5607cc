package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/config"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exchange.log")
	log, closer, err := New(config.LogConfig{LogLevel: "warn", LogFormat: "json", LogOutput: path})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "k", "v")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "dropped")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "v", line["k"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestNew_Stdout(t *testing.T) {
	log, closer, err := New(config.LogConfig{LogLevel: "debug", LogFormat: "text"})
	require.NoError(t, err)
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	assert.NoError(t, closer.Close())
}

func testEvent() domain.Event {
	var key domain.Address
	key[0] = 9
	return domain.Event{
		ID:         "evt-1",
		Type:       domain.EventRewardsClaimed,
		Key:        key,
		OccurredAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		Data:       domain.RewardsEvent{User: key, Amount: 30, Reason: "claim"},
	}
}

func TestSlogEventLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogEventLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, l.Publish(context.Background(), testEvent()))
	out := buf.String()
	assert.Contains(t, out, "type=RewardsClaimed")
	assert.Contains(t, out, "id=evt-1")
}

func TestNewEventLogRecord(t *testing.T) {
	event := testEvent()
	record, err := NewEventLogRecord(event)
	require.NoError(t, err)
	assert.Equal(t, "RewardsClaimed", record.Type)
	assert.Equal(t, event.Key.String(), record.Key)
	assert.JSONEq(t, `{"user":"`+event.Key.String()+`","amount":30,"reason":"claim"}`, string(record.Data))
}
