package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"onepaslots/internal/app"
	"onepaslots/internal/config"
	logx "onepaslots/pkg/logx"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		logx.NewConsole(os.Getenv(config.EnvLogLevel)).Warn("failed to load .env", logx.Err(err))
	}

	cfg, err := config.Load(os.Getenv(config.EnvConfigPath), os.Getenv)
	if err != nil {
		logx.NewConsole(os.Getenv(config.EnvLogLevel)).Error("failed to load configuration", logx.Err(err))
		os.Exit(1)
	}

	logs, log := logx.New(logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	})
	defer logs.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(cfg, log)
	if err != nil {
		log.Error("invalid configuration", logx.Err(err))
		_ = logs.Close()
		os.Exit(1)
	}
	defer a.Close()

	// Failures are already logged and reported by Run; the job still exits 0.
	_ = a.Run(ctx)
}
