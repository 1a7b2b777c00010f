package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultDodgeConfig()) {
		t.Errorf("embedded YAML and DefaultDodgeConfig() differ:\n%+v\n%+v", cfg, DefaultDodgeConfig())
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("projectiles:\n  damage: 25\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Projectiles.Damage != 25 {
		t.Errorf("Damage = %d, expected 25", cfg.Projectiles.Damage)
	}
	if cfg.Character.StartHealth != 200 {
		t.Errorf("StartHealth = %d, expected default 200", cfg.Character.StartHealth)
	}
	if cfg.Projectiles.Speed != 5 {
		t.Errorf("Speed = %f, expected default 5", cfg.Projectiles.Speed)
	}
}

func TestParseRewardsReplacesList(t *testing.T) {
	cfg, err := Parse([]byte("collectible:\n  rewards: [1, 2]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Collectible.Rewards, []int{1, 2}) {
		t.Errorf("Rewards = %v, expected [1 2]", cfg.Collectible.Rewards)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *DodgeConfig)
	}{
		{"drift of one never settles", func(c *DodgeConfig) { c.Velocity.Drift = 1 }},
		{"zero max speed", func(c *DodgeConfig) { c.Velocity.MaxSpeed = 0 }},
		{"inverted interval", func(c *DodgeConfig) { c.Projectiles.IntervalMin = 2 }},
		{"empty rewards", func(c *DodgeConfig) { c.Collectible.Rewards = nil }},
		{"negative reward", func(c *DodgeConfig) { c.Collectible.Rewards = []int{5, -1} }},
		{"hitbox larger than sprite", func(c *DodgeConfig) { c.Character.CollisionSensitivity = 1.5 }},
		{"character bigger than world", func(c *DodgeConfig) { c.Character.Width = 5000 }},
		{"zero quota", func(c *DodgeConfig) { c.Leveling.CashQuota = 0 }},
		{"no health", func(c *DodgeConfig) { c.Character.StartHealth = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}

	cfg := DefaultDodgeConfig()
	cfg.Leveling.Enabled = false
	cfg.Leveling.CashQuota = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("quota is irrelevant when leveling is disabled, got %v", err)
	}
}

func TestLoadDodgeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dodge.yaml")
	if err := os.WriteFile(path, []byte("character:\n  start_health: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge failed: %v", err)
	}
	if cfg.Character.StartHealth != 50 {
		t.Errorf("StartHealth = %d, expected 50", cfg.Character.StartHealth)
	}

	if _, err := LoadDodge(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadDodge should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("velocity:\n  drift: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDodge(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadDodge should reject invalid values, got %v", err)
	}
}

func TestApplyDodgePreset(t *testing.T) {
	for _, p := range Presets {
		cfg := DefaultDodgeConfig()
		ApplyDodgePreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produces invalid config: %v", p, err)
		}
		if p.Description() == "" {
			t.Errorf("preset %s has no description", p)
		}
	}

	cfg := DefaultDodgeConfig()
	ApplyDodgePreset(&cfg, DifficultyFixed)
	if cfg.Leveling.Enabled {
		t.Error("fixed preset should disable leveling")
	}

	cfg = DefaultDodgeConfig()
	ApplyDodgePreset(&cfg, DifficultyHard)
	if cfg.Character.StartHealth >= DefaultDodgeConfig().Character.StartHealth {
		t.Error("hard preset should lower starting health")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(1.5); got != 1500*time.Millisecond {
		t.Errorf("Seconds(1.5) = %v", got)
	}
}
