package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/postrainer/internal/drill"
	"github.com/lox/postrainer/internal/trainer"
)

// Config represents the complete trainer configuration
type Config struct {
	Drill  DrillSettings
	Server ServerSettings
}

// fileConfig is the on-disk layout; both blocks are optional.
type fileConfig struct {
	Drill  *DrillSettings  `hcl:"drill,block"`
	Server *ServerSettings `hcl:"server,block"`
}

// DrillSettings contains the defaults for a drill session
type DrillSettings struct {
	Players      int     `hcl:"players,optional"`
	TimerSeconds float64 `hcl:"timer_seconds,optional"`
	Naming       string  `hcl:"naming,optional"`
	Mode         string  `hcl:"mode,optional"`
	Seed         int64   `hcl:"seed,optional"`
	FlashMillis  int     `hcl:"flash_ms,optional"`
}

// ServerSettings contains websocket server configuration
type ServerSettings struct {
	Address        string `hcl:"address,optional"`
	Port           int    `hcl:"port,optional"`
	LogLevel       string `hcl:"log_level,optional"`
	TickMillis     int    `hcl:"tick_ms,optional"`
	MaxSessions    int    `hcl:"max_sessions,optional"`
	RestrictOrigin bool   `hcl:"restrict_origin,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Drill: DrillSettings{
			Players:      6,
			TimerSeconds: 10,
			Naming:       "B",
			Mode:         "posToSeat",
			FlashMillis:  int(trainer.DefaultFlashDelay / time.Millisecond),
		},
		Server: ServerSettings{
			Address:     "localhost",
			Port:        8080,
			LogLevel:    "info",
			TickMillis:  100,
			MaxSessions: 64,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var decoded fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var config Config
	if decoded.Drill != nil {
		config.Drill = *decoded.Drill
	}
	if decoded.Server != nil {
		config.Server = *decoded.Server
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills zero values from DefaultConfig
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Drill.Players == 0 {
		c.Drill.Players = defaults.Drill.Players
	}
	if c.Drill.TimerSeconds == 0 {
		c.Drill.TimerSeconds = defaults.Drill.TimerSeconds
	}
	if c.Drill.Naming == "" {
		c.Drill.Naming = defaults.Drill.Naming
	}
	if c.Drill.Mode == "" {
		c.Drill.Mode = defaults.Drill.Mode
	}
	if c.Drill.FlashMillis == 0 {
		c.Drill.FlashMillis = defaults.Drill.FlashMillis
	}

	if c.Server.Address == "" {
		c.Server.Address = defaults.Server.Address
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaults.Server.Port
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = defaults.Server.LogLevel
	}
	if c.Server.TickMillis == 0 {
		c.Server.TickMillis = defaults.Server.TickMillis
	}
	if c.Server.MaxSessions == 0 {
		c.Server.MaxSessions = defaults.Server.MaxSessions
	}
}

// Validate validates the configuration. Player count and timer are clamped by
// the trainer, so only names and server settings can fail here.
func (c *Config) Validate() error {
	if _, err := drill.ParseConvention(c.Drill.Naming); err != nil {
		return fmt.Errorf("drill: %w", err)
	}
	if _, err := drill.ParseMode(c.Drill.Mode); err != nil {
		return fmt.Errorf("drill: %w", err)
	}
	if c.Drill.FlashMillis < 0 {
		return fmt.Errorf("drill: flash_ms cannot be negative")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.TickMillis <= 0 {
		return fmt.Errorf("server: tick_ms must be positive")
	}
	if c.Server.MaxSessions <= 0 {
		return fmt.Errorf("server: max_sessions must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Server.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	return nil
}

// TrainerConfig returns the drill settings in the form the trainer consumes
func (c *Config) TrainerConfig() trainer.Config {
	return trainer.Config{
		Players:      c.Drill.Players,
		TimerSeconds: c.Drill.TimerSeconds,
		Naming:       c.Drill.Naming,
		Mode:         c.Drill.Mode,
	}
}

// FlashDelay returns the configured error-flash duration
func (c *Config) FlashDelay() time.Duration {
	return time.Duration(c.Drill.FlashMillis) * time.Millisecond
}

// TickPeriod returns how often the server advances session countdowns
func (c *Config) TickPeriod() time.Duration {
	return time.Duration(c.Server.TickMillis) * time.Millisecond
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
