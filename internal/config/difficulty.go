package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyKeirakuPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyKeirakuPreset(cfg *KeirakuConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.BaseEnemies = 2
		cfg.Spawn.MinDistance = 12
		cfg.Timing.FuseMs = 2500
	case DifficultyHard:
		cfg.Spawn.BaseEnemies = 5
		cfg.Spawn.MinDistance = 8
		cfg.Timing.FuseMs = 1500
		cfg.Enemies.FlockChance = 0.9
	}
}
