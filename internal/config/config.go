package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeSimulate = "simulate"
	ModeServe    = "serve"
)

var ErrUnknownMode = errors.New("unknown application mode")

type Config struct {
	LogLevel          string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode              string     `yaml:"mode" env:"APP_MODE" env-default:"simulate"`
	HTTPPort          string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis             Redis      `yaml:"redis"`
	SQLiteStoragePath string     `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH"`
	Simulation        Simulation `yaml:"simulation"`
}

// Redis - checkpoint storage, the simulator runs without it when disabled.
type Redis struct {
	Enabled       bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host          string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port          string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	CheckpointTTL time.Duration `yaml:"checkpoint-ttl" env:"REDIS_CHECKPOINT_TTL" env-default:"24h"`
}

type Simulation struct {
	Games   int   `yaml:"games" env:"SIMULATION_GAMES" env-default:"1"`
	Seed    int64 `yaml:"seed" env:"SIMULATION_SEED" env-default:"0"`
	Verbose bool  `yaml:"verbose" env:"SIMULATION_VERBOSE" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeSimulate, ModeServe:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	if that.Simulation.Games < 1 {
		return fmt.Errorf("simulation games must be positive, got %d", that.Simulation.Games)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
