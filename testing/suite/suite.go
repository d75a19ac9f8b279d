package suite

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/battleship-backend/internal/repository/storage"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// Suite - test fixtures backed by real storage.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Redis - checkpoint store, set by New.
	Redis *redis.Client
	// Ledger - initialised results database, set by NewLedger.
	Ledger *sql.DB
}

// New - checkpoint store in a throwaway redis container, skipped without docker or in short mode.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping docker backed test in short mode")
	}

	ctx := newContext(t)
	st := newSuite(t)

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis: %v", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge redis: %v", err)
		}
	})

	// hard kill in case the cleanup never runs
	_ = resource.Expire(expireDuration)

	pool.MaxWait = maxWaitDuration

	// the container accepts connections a moment after it starts
	if err = pool.Retry(func() error {
		client, connErr := storage.NewRedis(ctx, resource.GetHostPort(redisPort))
		if connErr != nil {
			return connErr
		}

		st.Redis = client
		return nil
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() {
		_ = st.Redis.Close()
	})

	if err = st.Redis.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush redis: %v", err)
	}

	return ctx, st
}

// NewLedger - results database in a temp dir with the schema applied.
func NewLedger(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx := newContext(t)
	st := newSuite(t)

	ledger, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("could not open ledger: %v", err)
	}

	t.Cleanup(func() {
		_ = ledger.Close()
	})

	if err = ledger.Init(ctx); err != nil {
		t.Fatalf("could not init ledger: %v", err)
	}

	st.Ledger = ledger.Connection

	return ctx, st
}

func newContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	return ctx
}

func newSuite(t *testing.T) *Suite {
	return &Suite{
		T:      t,
		Logger: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}
