package game

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/samdwyer/snakestage/internal/item"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(lookupFrom(nil))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(lookupFrom(map[string]string{
		EnvSeed:           "42",
		EnvTickMS:         "100",
		EnvItemLifetimeMS: "5000",
		EnvStartDelayMS:   "0",
		EnvStageDir:       "/tmp/stages",
		EnvPermissiveTail: "true",
		EnvLogFile:        "snake.log",
	}))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := Config{
		Seed:           42,
		TickInterval:   100 * time.Millisecond,
		ItemLifetime:   5 * time.Second,
		StartDelay:     0,
		StageDir:       "/tmp/stages",
		PermissiveTail: true,
		LogFile:        "snake.log",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigInvalidKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(lookupFrom(map[string]string{
		EnvSeed:           "abc",
		EnvTickMS:         "0",
		EnvItemLifetimeMS: "-5",
		EnvPermissiveTail: "maybe",
	}))
	if err == nil {
		t.Fatal("LoadConfig() error = nil, want a report of invalid values")
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ItemLifetime = 3 * time.Second
	cfg.PermissiveTail = true

	ec := cfg.EngineConfig()
	if !ec.PermissiveTail {
		t.Error("PermissiveTail not carried into engine config")
	}
	want := item.Config{GrowthLifetime: 3 * time.Second, PoisonLifetime: 3 * time.Second}
	if diff := cmp.Diff(want, ec.Items); diff != "" {
		t.Errorf("item config mismatch (-want +got):\n%s", diff)
	}
}
