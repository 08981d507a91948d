package game

import (
	"math"
	"math/rand"

	"github.com/goalsat7/space-game/internal/config"
	"github.com/goalsat7/space-game/internal/core"
)

// EnemyKind discriminates the two behavior variants.
type EnemyKind int

const (
	KindPatrol EnemyKind = iota
	KindFlying
)

// String returns a human-readable kind name.
func (k EnemyKind) String() string {
	switch k {
	case KindPatrol:
		return "patrol"
	case KindFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// Enemy is a single opponent. Pos is its center point.
type Enemy struct {
	Kind   EnemyKind
	Pos    core.Vec2
	Health int
	Speed  float64
	Dir    int // -1 left, +1 right

	ShootCooldown int

	dead bool
	cfg  *config.GameConfig
}

// NewEnemy creates an enemy of the given kind centered at (x, y). Direction
// and initial fire cooldown are rolled from the session RNG.
func NewEnemy(cfg *config.GameConfig, kind EnemyKind, x, y int, rng *rand.Rand) *Enemy {
	e := &Enemy{
		Kind: kind,
		Pos:  core.Vec2{X: float64(x), Y: float64(y)},
		Dir:  1,
		cfg:  cfg,
	}
	if rng.Intn(2) == 0 {
		e.Dir = -1
	}
	e.ShootCooldown = randRange(rng, cfg.Enemies.InitialCooldownMin, cfg.Enemies.InitialCooldownMax)

	switch kind {
	case KindFlying:
		e.Health = cfg.Enemies.FlyingHealth
		e.Speed = cfg.Enemies.FlyingSpeed
	default:
		e.Health = cfg.Enemies.PatrolHealth
		e.Speed = cfg.Enemies.PatrolSpeed
	}
	return e
}

// Rect returns the enemy's bounding rectangle around its center.
func (e *Enemy) Rect() core.Rect {
	w, h := e.cfg.Enemies.Width, e.cfg.Enemies.Height
	return core.RectAt(core.Vec2{X: e.Pos.X - float64(w)/2, Y: e.Pos.Y - float64(h)/2}, w, h)
}

// Alive reports whether the enemy is still in play. The combat resolver
// marks enemies dead mid-pass and compacts the collection afterwards, so
// later steps in the same tick must tolerate seeing a dead enemy.
func (e *Enemy) Alive() bool {
	return !e.dead
}

// Update advances the enemy one tick: movement by kind, then firing.
// New projectiles are handed to emit rather than stored here, keeping the
// projectile collections owned by the session.
func (e *Enemy) Update(tick uint64, platforms []core.Rect, player core.Rect, rng *rand.Rand, emit func(*Projectile)) {
	switch e.Kind {
	case KindPatrol:
		e.updatePatrol(platforms, rng)
	case KindFlying:
		e.updateFlying(tick, player)
	}

	e.ShootCooldown--
	if e.ShootCooldown <= 0 {
		e.fire(player, emit)
		e.ShootCooldown = randRange(rng, e.cfg.Enemies.ResetCooldownMin, e.cfg.Enemies.ResetCooldownMax)
	}
}

// updatePatrol walks at constant speed and reverses before leaving the
// supporting platform, so a patroller never falls off an edge. A 1% per-tick
// random reversal keeps movement erratic even while supported.
func (e *Enemy) updatePatrol(platforms []core.Rect, rng *rand.Rand) {
	e.Pos.X += e.Speed * float64(e.Dir)

	probe := e.Rect().Inflate(0, 6)
	supported := false
	for _, pl := range platforms {
		if probe.Intersects(pl) {
			supported = true
			break
		}
	}
	if !supported {
		e.Dir = -e.Dir
	} else if rng.Float64() < 0.01 {
		e.Dir = -e.Dir
	}
}

// updateFlying drifts horizontally toward the player and bobs on a bounded
// sine wave driven by the tick counter (period ~1.5s at 60Hz).
func (e *Enemy) updateFlying(tick uint64, player core.Rect) {
	if player.CenterX() < e.Rect().CenterX() {
		e.Pos.X -= e.Speed
	} else {
		e.Pos.X += e.Speed
	}
	e.Pos.Y += math.Sin(float64(tick)/24.0) * 0.8
}

// fire shoots a projectile along the normalized direction to the player's
// center.
func (e *Enemy) fire(player core.Rect, emit func(*Projectile)) {
	self := e.Rect()
	dir := core.Vec2{
		X: float64(player.CenterX() - self.CenterX()),
		Y: float64(player.CenterY() - self.CenterY()),
	}.Normalized()

	emit(NewProjectile(
		core.Vec2{X: float64(self.CenterX()), Y: float64(self.CenterY())},
		dir.Scale(e.cfg.Physics.EnemyBulletSpeed),
		OwnerEnemy,
	))
}

// randRange returns a uniform int in [min, max]. Degenerate ranges collapse
// to min.
func randRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
