package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI value into a preset. Empty means "use config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Description returns a one-line summary for menus and help text.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "More health, fewer and slower bullets"
	case DifficultyNormal:
		return "The classic setup"
	case DifficultyHard:
		return "Less health, more and faster bullets"
	case DifficultyFixed:
		return "No level-ups, difficulty never changes"
	default:
		return ""
	}
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Leveling.Enabled = true
		cfg.Character.StartHealth = 300
		cfg.Projectiles.MaxConcurrent = 4
		cfg.Projectiles.Speed = 4
	case DifficultyNormal:
		cfg.Leveling.Enabled = true
	case DifficultyHard:
		cfg.Leveling.Enabled = true
		cfg.Character.StartHealth = 150
		cfg.Projectiles.Damage = 15
		cfg.Projectiles.MaxConcurrent = 8
		cfg.Projectiles.Speed = 6
		cfg.Projectiles.IntervalMax = 0.9
	case DifficultyFixed:
		cfg.Leveling.Enabled = false
	}
}
