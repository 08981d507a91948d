// Package game implements the side-scroller simulation core: player physics,
// platform collision, enemy behavior, projectile lifecycle, camera tracking,
// combat resolution and the session state machine. It contains no rendering
// or terminal dependencies beyond drawing into the shared core.Screen buffer.
package game

import (
	"github.com/goalsat7/space-game/internal/config"
	"github.com/goalsat7/space-game/internal/core"
)

// Player is the player character. The continuous Pos is the source of truth;
// the integer rectangle from Rect is a derived, rounded view.
type Player struct {
	Pos    core.Vec2 // top-left corner, world pixels
	Vel    core.Vec2
	Acc    core.Vec2
	Facing int // -1 left, +1 right

	OnGround      bool
	ShootCooldown int

	Health int
	Lives  int
	Score  int

	cfg *config.GameConfig
}

// NewPlayer creates the player with its bottom edge at (x, bottom).
func NewPlayer(cfg *config.GameConfig, x, bottom int) *Player {
	return &Player{
		Pos:    core.Vec2{X: float64(x - cfg.Player.Width/2), Y: float64(bottom - cfg.Player.Height)},
		Facing: 1,
		Health: cfg.Player.MaxHealth,
		Lives:  cfg.Player.Lives,
		cfg:    cfg,
	}
}

// Rect returns the player's rounded bounding rectangle.
func (p *Player) Rect() core.Rect {
	return core.RectAt(p.Pos, p.cfg.Player.Width, p.cfg.Player.Height)
}

// ApplyInput converts the tick's intent into acceleration. Gravity is always
// applied; facing changes only on nonzero horizontal intent.
func (p *Player) ApplyInput(in core.Intent) {
	p.Acc = core.Vec2{Y: p.cfg.Physics.Gravity}
	if in.MoveLeft {
		p.Acc.X = -p.cfg.Physics.PlayerAcc
		p.Facing = -1
	}
	if in.MoveRight {
		p.Acc.X = p.cfg.Physics.PlayerAcc
		p.Facing = 1
	}
}

// TryJump starts a jump if the player is grounded. Besides the OnGround flag
// a short downward probe against the platforms qualifies, so a jump pressed
// right after walking off an edge still registers.
func (p *Player) TryJump(platforms []core.Rect) {
	if !p.OnGround && !p.probeGround(platforms) {
		return
	}
	p.Vel.Y = p.cfg.Physics.JumpVelocity
	p.OnGround = false
}

// probeGround tests a 2px-down copy of the player rect against the platforms.
func (p *Player) probeGround(platforms []core.Rect) bool {
	probe := p.Rect().Translated(0, 2)
	for _, pl := range platforms {
		if probe.Intersects(pl) {
			return true
		}
	}
	return false
}

// Shoot fires a projectile from the facing-side muzzle point, or returns nil
// while the cooldown is running.
func (p *Player) Shoot() *Projectile {
	if p.ShootCooldown > 0 {
		return nil
	}
	p.ShootCooldown = p.cfg.Player.ShootCooldown

	r := p.Rect()
	return NewProjectile(
		core.Vec2{X: float64(r.CenterX() + p.Facing*20), Y: float64(r.CenterY() - 6)},
		core.Vec2{X: float64(p.Facing) * p.cfg.Physics.BulletSpeed},
		OwnerPlayer,
	)
}

// Integrate advances the player one tick and resolves platform collisions.
// The horizontal pass runs strictly before the vertical pass; OnGround is
// set only by a downward (landing) contact in the vertical pass.
func (p *Player) Integrate(platforms []core.Rect) {
	p.Vel = p.Vel.Add(p.Acc)
	// Exponential friction, not a fixed-magnitude subtraction.
	p.Vel.X += p.Vel.X * p.cfg.Physics.Friction
	p.Vel.X = core.ClampF(p.Vel.X, -p.cfg.Physics.MaxSpeed, p.cfg.Physics.MaxSpeed)

	// Horizontal pass: snap to the platform edge and stop.
	p.Pos.X += p.Vel.X
	rect := p.Rect()
	for _, pl := range platforms {
		if !rect.Intersects(pl) {
			continue
		}
		if p.Vel.X > 0 {
			rect.X = pl.X - rect.W
		} else if p.Vel.X < 0 {
			rect.X = pl.Right()
		}
		p.Pos.X = float64(rect.X)
		p.Vel.X = 0
	}

	// Vertical pass: semi-implicit Euler with the half-acceleration term.
	p.Pos.Y += p.Vel.Y + 0.5*p.Acc.Y
	rect = p.Rect()
	p.OnGround = false
	for _, pl := range platforms {
		if !rect.Intersects(pl) {
			continue
		}
		if p.Vel.Y > 0 {
			rect.Y = pl.Y - rect.H
			p.OnGround = true
			p.Vel.Y = 0
		} else if p.Vel.Y < 0 {
			rect.Y = pl.Bottom()
			p.Vel.Y = 0
		}
		p.Pos.Y = float64(rect.Y)
	}

	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}
}

// TakeDamage applies damage and reports whether the player died. On death
// one life is consumed and health refills; the session decides whether the
// lost life ends the game.
func (p *Player) TakeDamage(amount int) bool {
	p.Health -= amount
	if p.Health > 0 {
		return false
	}
	p.Lives--
	p.Health = p.cfg.Player.MaxHealth
	return true
}
