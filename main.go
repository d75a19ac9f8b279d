package main

import (
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/battleship-backend/internal"
	"github.com/rocketscienceinc/battleship-backend/internal/config"
)

const defaultConfigPath = "config.yml"

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(configPath())
	logger := newLogger(conf.LogLevel)

	logger.Info("Starting battleship", "mode", conf.Mode)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// configPath - CONFIG_PATH wins over config.yml in the working directory.
func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	return defaultConfigPath
}

// newLogger - JSON logs on stderr, stdout belongs to the simulation printout.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
