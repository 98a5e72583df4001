package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lox/postrainer/cmd/postrainer/shared"
	"github.com/lox/postrainer/internal/server"
)

type ServeCmd struct {
	DrillFlags

	Addr        string `short:"a" help:"Server address to bind to, host:port (overrides config)"`
	MaxSessions int    `help:"Maximum concurrent sessions (overrides config)"`
	TickMs      int    `name:"tick-ms" help:"Countdown tick period in milliseconds (overrides config)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g, c.DrillFlags)
	if err != nil {
		return err
	}
	if c.MaxSessions > 0 {
		cfg.Server.MaxSessions = c.MaxSessions
	}
	if c.TickMs > 0 {
		cfg.Server.TickMillis = c.TickMs
	}

	addr := cfg.GetServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	logger := shared.SetupLogger(cfg.Server.LogLevel, os.Stderr)
	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()

	logger.Info("Starting drill server",
		"addr", addr,
		"players", cfg.Drill.Players,
		"mode", cfg.Drill.Mode,
		"tick", cfg.TickPeriod(),
		"maxSessions", cfg.Server.MaxSessions)

	srv := server.NewServer(addr, logger,
		server.WithDrillConfig(cfg.TrainerConfig()),
		server.WithFlashDelay(cfg.FlashDelay()),
		server.WithTickPeriod(cfg.TickPeriod()),
		server.WithMaxSessions(cfg.Server.MaxSessions),
		server.WithSeed(cfg.Drill.Seed),
		server.WithOriginCheck(cfg.Server.RestrictOrigin),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
