// Package config provides YAML-based configuration loading and difficulty
// presets for Keiraku Bomber. Every tunable constant of the simulation lives
// here so stages can be rebalanced without touching game code.
package config

import "time"

// KeirakuConfig contains all configuration for the simulation.
type KeirakuConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Power      PowerConfig      `yaml:"power"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Herbs      HerbsConfig      `yaml:"herbs"`
	Rewards    RewardsConfig    `yaml:"rewards"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Generation GenerationConfig `yaml:"generation"`
}

// TimingConfig holds task periods and lifetimes in milliseconds.
type TimingConfig struct {
	ProjectilePeriodMs int   `yaml:"projectile_period_ms"`
	ExplosivePeriodMs  int   `yaml:"explosive_period_ms"`
	EnemyPeriodMs      int   `yaml:"enemy_period_ms"`
	EffectPeriodMs     int   `yaml:"effect_period_ms"`
	FuseMs             int   `yaml:"fuse_ms"`
	ExplosionMs        int   `yaml:"explosion_ms"`
	NoticeMs           int   `yaml:"notice_ms"`
	MoveCooldownMs     []int `yaml:"move_cooldown_ms"` // indexed by speed tier - 1
}

// ProjectilePeriod returns the needle advance period.
func (t TimingConfig) ProjectilePeriod() time.Duration { return ms(t.ProjectilePeriodMs) }

// ExplosivePeriod returns the moxa countdown period.
func (t TimingConfig) ExplosivePeriod() time.Duration { return ms(t.ExplosivePeriodMs) }

// EnemyPeriod returns the enemy controller period.
func (t TimingConfig) EnemyPeriod() time.Duration { return ms(t.EnemyPeriodMs) }

// EffectPeriod returns the explosion expiry period.
func (t TimingConfig) EffectPeriod() time.Duration { return ms(t.EffectPeriodMs) }

// Fuse returns the moxa countdown length.
func (t TimingConfig) Fuse() time.Duration { return ms(t.FuseMs) }

// ExplosionLifetime returns how long an explosion marker lingers.
func (t TimingConfig) ExplosionLifetime() time.Duration { return ms(t.ExplosionMs) }

// Notice returns how long a banner notice is shown.
func (t TimingConfig) Notice() time.Duration { return ms(t.NoticeMs) }

// MoveCooldown returns the player move cooldown for a speed tier (1-based).
// Tiers past the table use its last entry.
func (t TimingConfig) MoveCooldown(tier int) time.Duration {
	if len(t.MoveCooldownMs) == 0 {
		return 0
	}
	i := tier - 1
	if i < 0 {
		i = 0
	}
	if i >= len(t.MoveCooldownMs) {
		i = len(t.MoveCooldownMs) - 1
	}
	return ms(t.MoveCooldownMs[i])
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// PowerLevels is one set of player power values.
type PowerLevels struct {
	Reach         int `yaml:"reach"`
	PatternCount  int `yaml:"pattern_count"`
	Blast         int `yaml:"blast"`
	Speed         int `yaml:"speed"`
	MaxExplosives int `yaml:"max_explosives"`
}

// PowerConfig defines starting values, caps and the full-power grant.
type PowerConfig struct {
	Initial   PowerLevels `yaml:"initial"`
	Max       PowerLevels `yaml:"max"` // pattern_count is uncapped
	FullPower PowerLevels `yaml:"full_power"`
}

// ScoringConfig defines flat score awards.
type ScoringConfig struct {
	Wall       int `yaml:"wall"`
	Enemy      int `yaml:"enemy"`
	StageClear int `yaml:"stage_clear"`
}

// HerbEntry is the weight and pickup score of one herb.
type HerbEntry struct {
	Weight float64 `yaml:"weight"` // reward-container payload weight
	Drop   float64 `yaml:"drop"`   // dropped-item weight when a node sheds a herb
	Score  int     `yaml:"score"`
}

// HerbsConfig lists herb weights in draw order.
type HerbsConfig struct {
	Mugwort  HerbEntry `yaml:"mugwort"`
	Ginger   HerbEntry `yaml:"ginger"`
	Salt     HerbEntry `yaml:"salt"`
	Aconite  HerbEntry `yaml:"aconite"`
	Ephedra  HerbEntry `yaml:"ephedra"`
	Angelica HerbEntry `yaml:"angelica"`

	// Full-power herb: an override chance on containers and two scores.
	FullPowerOverride       float64 `yaml:"full_power_override"`
	FullPowerItemScore      int     `yaml:"full_power_item_score"`
	FullPowerContainerScore int     `yaml:"full_power_container_score"`
}

// Ordered returns the six regular herbs in draw order.
func (h HerbsConfig) Ordered() [6]HerbEntry {
	return [6]HerbEntry{h.Mugwort, h.Ginger, h.Salt, h.Aconite, h.Ephedra, h.Angelica}
}

// NodeReward is what opening one tier of reward node grants.
type NodeReward struct {
	Score int `yaml:"score"`
	Reach int `yaml:"reach"`
}

// NodeRewardTable is the full reward table for one node-opening path.
type NodeRewardTable struct {
	Normal  NodeReward `yaml:"normal"`
	Special NodeReward `yaml:"special"`
	Hidden  NodeReward `yaml:"hidden"`

	// FullPowerDrop is the chance a hidden node drops the full-power herb.
	FullPowerDrop float64 `yaml:"full_power_drop"`
	// HerbDrop is the chance any opened node drops a regular herb.
	HerbDrop float64 `yaml:"herb_drop"`
}

// RewardsConfig holds separate tables for explosions and needles.
type RewardsConfig struct {
	Explosion  NodeRewardTable `yaml:"explosion"`
	Projectile NodeRewardTable `yaml:"projectile"`
}

// SpawnConfig controls player and enemy placement.
type SpawnConfig struct {
	BaseEnemies int `yaml:"base_enemies"`
	MinDistance int `yaml:"min_distance"` // exclusive Euclidean distance from the player
	PlayerPool  int `yaml:"player_pool"`
}

// EnemyCount returns how many enemy slots a stage of the given difficulty gets.
func (s SpawnConfig) EnemyCount(difficulty int) int {
	n := s.BaseEnemies + difficulty
	if n < 0 {
		return 0
	}
	return n
}

// EnemyCadence is the number of controller ticks between moves per kind.
type EnemyCadence struct {
	Wind   int `yaml:"wind"`
	Heat   int `yaml:"heat"`
	Plague int `yaml:"plague"`
	Cold   int `yaml:"cold"`
	Damp   int `yaml:"damp"`
}

// EnemyConfig controls enemy movement.
type EnemyConfig struct {
	Cadence     EnemyCadence `yaml:"cadence"`
	FlockChance float64      `yaml:"flock_chance"`
	FlockRadius int          `yaml:"flock_radius"`
}

// GenerationConfig holds the field-cell classification probabilities.
type GenerationConfig struct {
	Hidden    float64 `yaml:"hidden"`
	Special   float64 `yaml:"special"`
	Normal    float64 `yaml:"normal"`
	Container float64 `yaml:"container"`
	Breakable float64 `yaml:"breakable"`
	MinOpen   int     `yaml:"min_open"`
}
