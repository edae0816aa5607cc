package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
exchange_db:
  driver: memory
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPServer.Port)
	assert.Equal(t, 5*time.Minute, cfg.HTTPServer.SignatureWindow)
	assert.Equal(t, "exchange-events", cfg.KafkaService.Topic)
	assert.False(t, cfg.KafkaService.Enabled)
	assert.Equal(t, "refund", cfg.Protocol.TieBreak)
	assert.False(t, cfg.Protocol.DisableBuyerCancel)
	assert.False(t, cfg.Protocol.ForfeitBondOnCancel)
	assert.True(t, cfg.Protocol.RateLimits.OfferCreate.IsZero())
	assert.Equal(t, time.Minute, cfg.Protocol.SweepInterval)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
env: prod
http_server:
  port: "9000"
exchange_db:
  driver: postgres
  dsn: postgres://exchange@db/exchange
kafka-service:
  enabled: true
  brokers: ["kafka:9092"]
protocol:
  tie_break: reject
  disable_buyer_cancel: true
  rate_limits:
    dispute_open:
      max: 2
      window: 30m
`)
	t.Setenv("KAFKA_TOPIC", "p2p-events")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "9000", cfg.HTTPServer.Port)
	assert.Equal(t, []string{"kafka:9092"}, cfg.KafkaService.Brokers)
	assert.Equal(t, "p2p-events", cfg.KafkaService.Topic)
	assert.Equal(t, "reject", cfg.Protocol.TieBreak)
	assert.True(t, cfg.Protocol.DisableBuyerCancel)
	assert.Equal(t, RateRule{Max: 2, Window: 30 * time.Minute}, cfg.Protocol.RateLimits.DisputeOpen)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"postgres without dsn", "exchange_db:\n  driver: postgres\n"},
		{"unknown driver", "exchange_db:\n  driver: sqlite\n"},
		{"kafka without brokers", "exchange_db:\n  driver: memory\nkafka-service:\n  enabled: true\n"},
		{"notifier without url", "exchange_db:\n  driver: memory\nnotifier:\n  enabled: true\n"},
		{"bad tie break", "exchange_db:\n  driver: memory\nprotocol:\n  tie_break: coin\n"},
		{"bad rate rule", "exchange_db:\n  driver: memory\nprotocol:\n  rate_limits:\n    offer_accept:\n      max: 0\n      window: 1m\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Setenv(configPathEnv, "/etc/exchange/env.yaml")

	path, err := Path([]string{"--config", "/tmp/flag.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.yaml", path)

	path, err = Path(nil)
	require.NoError(t, err)
	assert.Equal(t, "/etc/exchange/env.yaml", path)

	t.Setenv(configPathEnv, "")
	_, err = Path(nil)
	require.Error(t, err)
}
