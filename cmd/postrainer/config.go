package main

import (
	"fmt"

	"github.com/lox/postrainer/internal/config"
)

// DrillFlags override the drill block of the config file
type DrillFlags struct {
	Players int     `short:"p" help:"Active players, 2-10 (overrides config)"`
	Timer   float64 `short:"t" help:"Seconds per question, 0.5-60 (overrides config)"`
	Naming  string  `short:"n" help:"Naming set A (MP/MP+1) or B (LJ/HJ) (overrides config)"`
	Mode    string  `short:"m" help:"Question mode: posToSeat, seatToPos, seatIp, ipToSeat (overrides config)"`
	Seed    int64   `short:"s" help:"Random seed for reproducible rounds (0 = time based)"`
}

func (f DrillFlags) apply(cfg *config.Config) {
	if f.Players != 0 {
		cfg.Drill.Players = f.Players
	}
	if f.Timer != 0 {
		cfg.Drill.TimerSeconds = f.Timer
	}
	if f.Naming != "" {
		cfg.Drill.Naming = f.Naming
	}
	if f.Mode != "" {
		cfg.Drill.Mode = f.Mode
	}
	if f.Seed != 0 {
		cfg.Drill.Seed = f.Seed
	}
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(g *Globals, flags DrillFlags) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	flags.apply(cfg)
	if g.LogLevel != "" {
		cfg.Server.LogLevel = g.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
