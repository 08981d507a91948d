package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the hardcoded default configuration, used as the last
// fallback if the embedded YAML cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Physics: Physics{
			Gravity:          0.8,
			PlayerAcc:        0.6,
			Friction:         -0.12,
			JumpVelocity:     -14,
			MaxSpeed:         8,
			BulletSpeed:      14,
			EnemyBulletSpeed: 6,
		},
		Player: Player{
			Width:         36,
			Height:        48,
			MaxHealth:     6,
			Lives:         3,
			ShootCooldown: 12,
			SpawnX:        120,
		},
		Level: Level{
			Width:            4000,
			Height:           640,
			GroundHeight:     40,
			PlatformHeight:   18,
			PlatformMinWidth: 120,
			PlatformMaxWidth: 260,
			GapMin:           180,
			GapMax:           420,
			BandTop:          160,
			BandBottomMargin: 120,
			EnemyChance:      0.4,
			TowerCount:       8,
			TowerMinWidth:    80,
			TowerMaxWidth:    140,
			TowerEnemyChance: 0.6,
		},
		Enemies: Enemies{
			Width:              36,
			Height:             34,
			PatrolHealth:       2,
			PatrolSpeed:        2,
			FlyingHealth:       4,
			FlyingSpeed:        1.2,
			InitialCooldownMin: 40,
			InitialCooldownMax: 120,
			ResetCooldownMin:   80,
			ResetCooldownMax:   160,
		},
		Combat: Combat{
			BulletDamage:  1,
			ContactDamage: 1,
			StompDamage:   2,
			ShootScore:    150,
			StompScore:    200,
		},
		Spawn: Spawn{
			MinEnemies: 6,
			DelayTicks: 90,
			OffsetsX:   []int{-600, 800, 1000},
		},
	}
}
