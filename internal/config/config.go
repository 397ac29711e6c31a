package config

import (
	"os"
	"strconv"

	"simlab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Sim SimConfig
	Log LogConfig
}

// SimConfig holds simulation defaults; CLI flags override them per command.
type SimConfig struct {
	Seed           uint64
	Trials         int
	Workers        int
	DrawsPerEntity int
	RosterPath     string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from the environment, applying defaults for
// anything unset. The caller is expected to have loaded .env already
// (godotenv at the entrypoint).
func Load() (*Config, error) {
	cfg := &Config{
		Sim: SimConfig{
			Seed:           42,
			Trials:         10000,
			Workers:        0, // 0 means one worker per CPU
			DrawsPerEntity: 1000,
			RosterPath:     os.Getenv("SIMLAB_ROSTER"),
		},
		Log: LogConfig{
			Level: getEnvDefault("LOG_LEVEL", "INFO"),
		},
	}

	var err error
	if cfg.Sim.Seed, err = getEnvUint("SIMLAB_SEED", cfg.Sim.Seed); err != nil {
		return nil, err
	}
	if cfg.Sim.Trials, err = getEnvInt("SIMLAB_TRIALS", cfg.Sim.Trials); err != nil {
		return nil, err
	}
	if cfg.Sim.Workers, err = getEnvInt("SIMLAB_WORKERS", cfg.Sim.Workers); err != nil {
		return nil, err
	}
	if cfg.Sim.DrawsPerEntity, err = getEnvInt("SIMLAB_DRAWS", cfg.Sim.DrawsPerEntity); err != nil {
		return nil, err
	}

	if cfg.Sim.Trials < 0 {
		return nil, errors.ConfigInvalid("SIMLAB_TRIALS must be non-negative")
	}
	if cfg.Sim.DrawsPerEntity < 1 {
		return nil, errors.ConfigInvalid("SIMLAB_DRAWS must be at least 1")
	}
	return cfg, nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "%s must be an integer", key)
	}
	return n, nil
}

func getEnvUint(key string, fallback uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s must be an unsigned integer", key)
	}
	return n, nil
}
