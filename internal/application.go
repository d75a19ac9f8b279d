package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/battleship-backend/internal/config"
	"github.com/rocketscienceinc/battleship-backend/internal/metrics"
	"github.com/rocketscienceinc/battleship-backend/internal/repository"
	"github.com/rocketscienceinc/battleship-backend/internal/repository/storage"
	"github.com/rocketscienceinc/battleship-backend/internal/service"
	"github.com/rocketscienceinc/battleship-backend/internal/usecase"
	"github.com/rocketscienceinc/battleship-backend/transport/rest"
)

const metricsNamespace = "battleship"

var (
	ErrAddrNotFound       = errors.New("redis address string is empty")
	ErrSQLitePathNotFound = errors.New("sqlite storage path is empty")
)

// RunApp - runs the application in the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	opts := []usecase.Option{
		usecase.WithObserver(metrics.NewMetrics(metricsNamespace, prometheus.DefaultRegisterer)),
	}

	if conf.Redis.Enabled || conf.Mode == config.ModeServe {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedis(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		opts = append(opts, usecase.WithCheckpoints(repository.NewGameRepository(redisStorage, conf.Redis.CheckpointTTL)))
	}

	if conf.SQLiteStoragePath == "" && conf.Mode == config.ModeServe {
		return ErrSQLitePathNotFound
	}

	if conf.SQLiteStoragePath != "" {
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return fmt.Errorf("could not open sqlite storage: %w", err)
		}

		defer func() {
			if err = sqliteStorage.Close(); err != nil {
				log.Error("could not close sqlite storage", "error", err)
			}
		}()

		if err = sqliteStorage.Init(ctx); err != nil {
			return fmt.Errorf("could not init sqlite storage: %w", err)
		}

		opts = append(opts, usecase.WithResults(repository.NewResultRepository(sqliteStorage.Connection)))
	}

	if conf.Mode == config.ModeSimulate && conf.Simulation.Verbose {
		opts = append(opts, usecase.WithOutput(os.Stdout))
	}

	seed := conf.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Info("Agents seeded", "seed", seed)

	simulator := usecase.NewSimulator(
		logger,
		service.NewRandomAgent(rand.New(rand.NewSource(seed))),
		service.NewRandomAgent(rand.New(rand.NewSource(seed+1))),
		opts...,
	)

	switch conf.Mode {
	case config.ModeServe:
		return serve(ctx, log, logger, conf, simulator)
	default:
		return simulate(ctx, log, conf, simulator)
	}
}

func simulate(ctx context.Context, log *slog.Logger, conf *config.Config, simulator *usecase.Simulator) error {
	summary, err := simulator.RunBatch(ctx, conf.Simulation.Games)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	log.Info("Simulation finished",
		"games", summary.Games,
		"player1_wins", summary.Wins[0],
		"player2_wins", summary.Wins[1],
		"stalled", summary.Stalled,
	)

	return nil
}

func serve(ctx context.Context, log, logger *slog.Logger, conf *config.Config, simulator *usecase.Simulator) error {
	server := rest.New(logger, simulator, promhttp.Handler())

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")
	return nil
}
