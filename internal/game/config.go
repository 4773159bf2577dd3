package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/snakestage/internal/engine"
	"github.com/samdwyer/snakestage/internal/item"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed           = "SNAKE_SEED"
	EnvTickMS         = "SNAKE_TICK_MS"
	EnvItemLifetimeMS = "SNAKE_ITEM_LIFETIME_MS"
	EnvStartDelayMS   = "SNAKE_START_DELAY_MS"
	EnvStageDir       = "SNAKE_STAGE_DIR"
	EnvPermissiveTail = "SNAKE_PERMISSIVE_TAIL"
	EnvLogFile        = "SNAKE_LOG_FILE"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible gate and item
	// placement. A seed of 0 means a random seed will be generated.
	Seed int64

	TickInterval time.Duration // Time between engine ticks
	ItemLifetime time.Duration // How long an untouched item stays put
	StartDelay   time.Duration // Countdown before each stage's first tick

	// StageDir overrides the embedded stage set when non-empty.
	StageDir string

	// PermissiveTail lets the head move into the cell the tail is leaving.
	PermissiveTail bool

	// LogFile receives the game log. Empty discards it.
	LogFile string
}

// DefaultConfig returns the standard pacing.
func DefaultConfig() Config {
	return Config{
		TickInterval: 150 * time.Millisecond,
		ItemLifetime: item.DefaultLifetime,
		StartDelay:   2 * time.Second,
	}
}

// ConfigFromEnv reads the configuration from the process environment.
func ConfigFromEnv() (Config, error) {
	return LoadConfig(os.LookupEnv)
}

// LoadConfig builds a Config from lookup. Invalid values keep their default;
// the returned error lists each one and the config is usable regardless.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			cfg.Seed = seed
		}
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvTickMS, &cfg.TickInterval},
		{EnvItemLifetimeMS, &cfg.ItemLifetime},
		{EnvStartDelayMS, &cfg.StartDelay},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok || v == "" {
			continue
		}
		ms, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.key, err))
			continue
		}
		if ms < 0 || (ms == 0 && d.key != EnvStartDelayMS) {
			errs = append(errs, fmt.Errorf("%s: %d ms is not allowed", d.key, ms))
			continue
		}
		*d.dst = time.Duration(ms) * time.Millisecond
	}

	if v, ok := lookup(EnvPermissiveTail); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvPermissiveTail, err))
		} else {
			cfg.PermissiveTail = b
		}
	}

	cfg.StageDir, _ = lookup(EnvStageDir)
	cfg.LogFile, _ = lookup(EnvLogFile)

	return cfg, errors.Join(errs...)
}

// EngineConfig returns the tick rules for this configuration.
func (c Config) EngineConfig() engine.Config {
	ec := engine.DefaultConfig()
	ec.PermissiveTail = c.PermissiveTail
	ec.Items = item.Config{GrowthLifetime: c.ItemLifetime, PoisonLifetime: c.ItemLifetime}
	return ec
}
