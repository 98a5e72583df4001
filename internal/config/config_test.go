package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/postrainer/internal/drill"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "postrainer.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
drill {
  players       = 9
  timer_seconds = 4.5
  naming        = "A"
  mode          = "seatIp"
  seed          = 1234
}

server {
  port    = 9090
  tick_ms = 50
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 9, cfg.Drill.Players)
	assert.Equal(t, 4.5, cfg.Drill.TimerSeconds)
	assert.Equal(t, "A", cfg.Drill.Naming)
	assert.Equal(t, "seatIp", cfg.Drill.Mode)
	assert.Equal(t, int64(1234), cfg.Drill.Seed)
	assert.Equal(t, 600*time.Millisecond, cfg.FlashDelay(), "unset values take defaults")

	assert.Equal(t, "localhost:9090", cfg.GetServerAddress())
	assert.Equal(t, 50*time.Millisecond, cfg.TickPeriod())
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 64, cfg.Server.MaxSessions)

	tc := cfg.TrainerConfig()
	assert.Equal(t, 9, tc.Players)
	assert.Equal(t, drill.ModeSeatIP.String(), tc.Mode)
}

func TestLoadOnlyDrillBlock(t *testing.T) {
	path := writeConfig(t, `
drill {
  mode = "ipToSeat"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ipToSeat", cfg.Drill.Mode)
	assert.Equal(t, DefaultConfig().Server, cfg.Server)
}

func TestLoadInvalidHCL(t *testing.T) {
	_, err := Load(writeConfig(t, `drill {`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `drill { players = "many" }`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown naming", func(c *Config) { c.Drill.Naming = "C" }, "naming"},
		{"unknown mode", func(c *Config) { c.Drill.Mode = "orIp" }, "mode"},
		{"negative flash", func(c *Config) { c.Drill.FlashMillis = -1 }, "flash_ms"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "invalid port"},
		{"bad tick", func(c *Config) { c.Server.TickMillis = -5 }, "tick_ms"},
		{"bad sessions", func(c *Config) { c.Server.MaxSessions = -1 }, "max_sessions"},
		{"bad log level", func(c *Config) { c.Server.LogLevel = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
