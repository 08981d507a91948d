package game

import "github.com/goalsat7/space-game/internal/core"

// Projectile body size in world pixels. The longer axis follows the
// dominant velocity component.
const (
	bulletLong  = 8
	bulletShort = 4
)

// Owner tags which side fired a projectile. The combat resolver only ever
// tests player projectiles against enemies and enemy projectiles against
// the player.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a moving bullet. Pos is its center point.
type Projectile struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Owner Owner
}

// NewProjectile creates a projectile at the given center with the given
// velocity.
func NewProjectile(pos, vel core.Vec2, owner Owner) *Projectile {
	return &Projectile{Pos: pos, Vel: vel, Owner: owner}
}

// Rect returns the projectile's bounding rectangle, oriented along its
// dominant velocity axis.
func (b *Projectile) Rect() core.Rect {
	w, h := bulletLong, bulletShort
	if abs(b.Vel.Y) > abs(b.Vel.X) {
		w, h = bulletShort, bulletLong
	}
	return core.RectAt(core.Vec2{X: b.Pos.X - float64(w)/2, Y: b.Pos.Y - float64(h)/2}, w, h)
}

// Advance moves the projectile one tick. Collision handling lives in the
// combat resolver, not here.
func (b *Projectile) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
}

// InBounds reports whether any part of the projectile is still inside the
// level. Out-of-bounds projectiles are dropped by the session within the
// same tick.
func (b *Projectile) InBounds(levelW, levelH int) bool {
	return !b.Rect().Outside(levelW, levelH)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
