// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for the space platformer.
package config

// GameConfig contains all tunable gameplay parameters.
type GameConfig struct {
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	Level   Level   `yaml:"level"`
	Enemies Enemies `yaml:"enemies"`
	Combat  Combat  `yaml:"combat"`
	Spawn   Spawn   `yaml:"spawn"`
}

// Physics defines the integration constants, in world pixels per tick.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	PlayerAcc        float64 `yaml:"player_acc"`
	Friction         float64 `yaml:"friction"` // negative coefficient, exponential decay
	JumpVelocity     float64 `yaml:"jump_velocity"`
	MaxSpeed         float64 `yaml:"max_speed"`
	BulletSpeed      float64 `yaml:"bullet_speed"`
	EnemyBulletSpeed float64 `yaml:"enemy_bullet_speed"`
}

// Player defines the player's body and session parameters.
type Player struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	MaxHealth     int `yaml:"max_health"`
	Lives         int `yaml:"lives"`
	ShootCooldown int `yaml:"shoot_cooldown"` // ticks between shots
	SpawnX        int `yaml:"spawn_x"`
}

// Level defines the dimensions and the generator's placement parameters.
type Level struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	GroundHeight     int     `yaml:"ground_height"`
	PlatformHeight   int     `yaml:"platform_height"`
	PlatformMinWidth int     `yaml:"platform_min_width"`
	PlatformMaxWidth int     `yaml:"platform_max_width"`
	GapMin           int     `yaml:"gap_min"`
	GapMax           int     `yaml:"gap_max"`
	BandTop          int     `yaml:"band_top"`       // highest platform y
	BandBottomMargin int     `yaml:"band_bottom"`    // margin above level bottom
	EnemyChance      float64 `yaml:"enemy_chance"`   // chance of an enemy per platform
	TowerCount       int     `yaml:"tower_count"`    // extra tower platforms
	TowerMinWidth    int     `yaml:"tower_min_width"`
	TowerMaxWidth    int     `yaml:"tower_max_width"`
	TowerEnemyChance float64 `yaml:"tower_enemy_chance"`
}

// Enemies defines the behavior parameters of the two enemy kinds.
type Enemies struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	PatrolHealth int     `yaml:"patrol_health"`
	PatrolSpeed  float64 `yaml:"patrol_speed"`
	FlyingHealth int     `yaml:"flying_health"`
	FlyingSpeed  float64 `yaml:"flying_speed"`

	// Fire cooldowns in ticks. Initial is rolled once at creation,
	// Reset after every shot.
	InitialCooldownMin int `yaml:"initial_cooldown_min"`
	InitialCooldownMax int `yaml:"initial_cooldown_max"`
	ResetCooldownMin   int `yaml:"reset_cooldown_min"`
	ResetCooldownMax   int `yaml:"reset_cooldown_max"`
}

// Combat defines damage amounts and score awards.
type Combat struct {
	BulletDamage  int `yaml:"bullet_damage"`
	ContactDamage int `yaml:"contact_damage"`
	StompDamage   int `yaml:"stomp_damage"`
	ShootScore    int `yaml:"shoot_score"` // per enemy killed by projectile
	StompScore    int `yaml:"stomp_score"` // per enemy killed by stomp
}

// Spawn defines the throttle that keeps a minimum enemy population alive.
type Spawn struct {
	MinEnemies int   `yaml:"min_enemies"`
	DelayTicks int   `yaml:"delay_ticks"`
	OffsetsX   []int `yaml:"offsets_x"` // candidate x offsets from the player
}

// Normalize clamps degenerate parameter ranges in place so generation can
// never be handed max < min or zero-sized bodies. Bad values are a config
// bug, not a runtime error, so this silently repairs instead of failing.
func (c *GameConfig) Normalize() {
	fixRange(&c.Level.PlatformMinWidth, &c.Level.PlatformMaxWidth, 16)
	fixRange(&c.Level.GapMin, &c.Level.GapMax, 1)
	fixRange(&c.Level.TowerMinWidth, &c.Level.TowerMaxWidth, 16)
	fixRange(&c.Enemies.InitialCooldownMin, &c.Enemies.InitialCooldownMax, 1)
	fixRange(&c.Enemies.ResetCooldownMin, &c.Enemies.ResetCooldownMax, 1)

	if c.Player.Width <= 0 {
		c.Player.Width = 36
	}
	if c.Player.Height <= 0 {
		c.Player.Height = 48
	}
	if c.Enemies.Width <= 0 {
		c.Enemies.Width = 36
	}
	if c.Enemies.Height <= 0 {
		c.Enemies.Height = 34
	}
	if c.Level.Width <= 0 {
		c.Level.Width = 4000
	}
	if c.Level.Height <= 0 {
		c.Level.Height = 640
	}
	if c.Player.MaxHealth <= 0 {
		c.Player.MaxHealth = 6
	}
	if c.Spawn.MinEnemies < 0 {
		c.Spawn.MinEnemies = 0
	}
	if len(c.Spawn.OffsetsX) == 0 {
		c.Spawn.OffsetsX = []int{-600, 800, 1000}
	}
}

// fixRange ensures min >= floor and max >= min.
func fixRange(min, max *int, floor int) {
	if *min < floor {
		*min = floor
	}
	if *max < *min {
		*max = *min
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset. Unknown presets
// (including the empty string) leave the config as loaded.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Spawn.DelayTicks = 140
		cfg.Enemies.ResetCooldownMin = 120
		cfg.Enemies.ResetCooldownMax = 220
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Spawn.DelayTicks = 60
		cfg.Enemies.ResetCooldownMin = 60
		cfg.Enemies.ResetCooldownMax = 120
	}
}
