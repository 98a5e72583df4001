package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/postrainer/cmd/postrainer/shared"
	"github.com/lox/postrainer/internal/randutil"
	"github.com/lox/postrainer/internal/trainer"
	"github.com/lox/postrainer/internal/tui"
)

type DrillCmd struct {
	DrillFlags

	LogFile string `default:"postrainer.log" help:"File to write logs to while the drill runs"`
	NoColor bool   `help:"Disable colors"`
}

func (c *DrillCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g, c.DrillFlags)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := shared.SetupLogger(cfg.Server.LogLevel, logFile)
	logger.Info("Starting drill",
		"players", cfg.Drill.Players,
		"timer", cfg.Drill.TimerSeconds,
		"naming", cfg.Drill.Naming,
		"mode", cfg.Drill.Mode,
		"seed", cfg.Drill.Seed)

	if c.NoColor {
		tui.DisableColor()
	}

	ctrl, err := trainer.New(
		trainer.WithSource(randutil.NewSource(cfg.Drill.Seed)),
		trainer.WithLogger(logger),
		trainer.WithFlashDelay(cfg.FlashDelay()),
		trainer.WithConfig(cfg.TrainerConfig()),
	)
	if err != nil {
		return fmt.Errorf("failed to start trainer: %w", err)
	}

	model := tui.NewModel(ctrl, logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	stats := model.Stats()
	logger.Info("Drill finished", "correct", stats.Correct, "wrong", stats.Wrong, "expired", stats.Expired)
	if stats.Attempts() > 0 {
		printSummary(os.Stdout, model.Statistics())
	}
	return nil
}
