package config

import (
	_ "embed"
)

//go:embed defaults/keiraku.yaml
var defaultKeirakuYAML []byte

// DefaultKeirakuConfig returns the built-in configuration.
// It mirrors defaults/keiraku.yaml and is used when the embedded file
// cannot be parsed.
func DefaultKeirakuConfig() KeirakuConfig {
	return KeirakuConfig{
		Timing: TimingConfig{
			ProjectilePeriodMs: 30,
			ExplosivePeriodMs:  100,
			EnemyPeriodMs:      100,
			EffectPeriodMs:     50,
			FuseMs:             2000,
			ExplosionMs:        500,
			NoticeMs:           1500,
			MoveCooldownMs:     []int{150, 100, 50},
		},
		Power: PowerConfig{
			Initial:   PowerLevels{Reach: 2, PatternCount: 0, Blast: 2, Speed: 1, MaxExplosives: 1},
			Max:       PowerLevels{Reach: 15, Blast: 8, Speed: 3, MaxExplosives: 3},
			FullPower: PowerLevels{Reach: 15, PatternCount: 10, Blast: 8, Speed: 3, MaxExplosives: 3},
		},
		Scoring: ScoringConfig{
			Wall:       10,
			Enemy:      100,
			StageClear: 10000,
		},
		Herbs: HerbsConfig{
			Mugwort:                 HerbEntry{Weight: 0.30, Drop: 0.35, Score: 300},
			Ginger:                  HerbEntry{Weight: 0.20, Drop: 0.25, Score: 500},
			Salt:                    HerbEntry{Weight: 0.15, Drop: 0.15, Score: 800},
			Aconite:                 HerbEntry{Weight: 0.15, Drop: 0.12, Score: 600},
			Ephedra:                 HerbEntry{Weight: 0.10, Drop: 0.08, Score: 400},
			Angelica:                HerbEntry{Weight: 0.08, Drop: 0.05, Score: 700},
			FullPowerOverride:       0.02,
			FullPowerItemScore:      5000,
			FullPowerContainerScore: 10000,
		},
		Rewards: RewardsConfig{
			Explosion: NodeRewardTable{
				Normal:        NodeReward{Score: 100, Reach: 1},
				Special:       NodeReward{Score: 5000, Reach: 3},
				Hidden:        NodeReward{Score: 10000, Reach: 5},
				FullPowerDrop: 0.5,
			},
			Projectile: NodeRewardTable{
				Normal:        NodeReward{Score: 100, Reach: 1},
				Special:       NodeReward{Score: 5000, Reach: 3},
				Hidden:        NodeReward{Score: 10000, Reach: 5},
				FullPowerDrop: 0.25,
				HerbDrop:      0.10,
			},
		},
		Spawn: SpawnConfig{
			BaseEnemies: 3,
			MinDistance: 10,
			PlayerPool:  10,
		},
		Enemies: EnemyConfig{
			Cadence:     EnemyCadence{Wind: 2, Heat: 3, Plague: 4, Cold: 6, Damp: 8},
			FlockChance: 0.7,
			FlockRadius: 3,
		},
		Generation: GenerationConfig{
			Hidden:    0.01,
			Special:   0.02,
			Normal:    0.03,
			Container: 0.05,
			Breakable: 0.35,
			MinOpen:   6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultKeirakuYAML
}
