package game

import (
	"math/rand"
	"time"

	"github.com/goalsat7/space-game/internal/config"
	"github.com/goalsat7/space-game/internal/core"
)

// Viewport mapping: one terminal cell covers this many world pixels. The
// simulation runs entirely in world pixels; only rendering and the camera
// viewport derive from the terminal size through these factors.
const (
	PxPerCol = 10
	PxPerRow = 20
)

// State is the session's lifecycle state. Only StatePlaying runs the
// simulation; the other states are render/input-only.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session is the single aggregate owning all mutable game state: the level,
// the player, the camera, both projectile collections and the state machine.
// Everything is accessed from one goroutine; there is no locking.
type Session struct {
	cfg config.GameConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	level  *Level
	player *Player
	camera *Camera

	playerShots []*Projectile
	enemyShots  []*Projectile

	state      State
	spawnTimer int
	tick       uint64

	viewportW int // world pixels
	viewportH int

	stars []core.Vec2 // background decoration, fixed at generation
}

// NewSession creates an uninitialized session; Reset must be called before
// the first Step.
func NewSession(cfg config.GameConfig) *Session {
	cfg.Normalize()
	return &Session{cfg: cfg}
}

// Reset (re)builds the whole session from the runtime config: a fresh level,
// player, camera and empty projectile collections. The seed fully determines
// the generated layout and all gameplay randomness.
func (s *Session) Reset(rt core.RuntimeConfig) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	s.rt = rt
	s.rng = rand.New(rand.NewSource(rt.Seed))

	s.level = GenerateLevel(&s.cfg, s.rng)
	s.player = NewPlayer(&s.cfg, s.cfg.Player.SpawnX, s.level.Height-200)
	s.camera = NewCamera(s.level.Width, s.level.Height)

	s.playerShots = nil
	s.enemyShots = nil
	s.state = StateTitle
	s.spawnTimer = 0
	s.tick = 0

	s.viewportW = rt.ScreenW * PxPerCol
	s.viewportH = rt.ScreenH * PxPerRow

	s.generateStars()
	s.camera.Follow(s.player.Rect(), s.viewportW, s.viewportH)
}

// restart reconstructs the session for a new run after game over. The next
// seed is drawn from the current RNG so restarts stay on the deterministic
// path for a given initial seed.
func (s *Session) restart() {
	rt := s.rt
	rt.Seed = s.rng.Int63()
	if rt.Seed == 0 {
		rt.Seed = 1
	}
	s.Reset(rt)
}

// Step advances the session by one tick. State transitions happen first;
// only StatePlaying simulates. Within a simulated tick the update order is
// fixed: player, enemies, projectiles, combat resolver, camera, spawn check.
func (s *Session) Step(in core.Intent) {
	switch s.state {
	case StateTitle:
		if in.ConfirmPressed {
			s.state = StatePlaying
		}
		return
	case StatePaused:
		if in.PausePressed {
			s.state = StatePlaying
		}
		return
	case StateGameOver:
		if in.ConfirmPressed {
			s.restart()
			s.state = StatePlaying
		}
		return
	}

	if in.PausePressed {
		s.state = StatePaused
		return
	}

	s.tick++

	// Player: intent, jump, shoot, integrate against the platforms.
	s.player.ApplyInput(in)
	if in.JumpPressed {
		s.player.TryJump(s.level.Platforms)
	}
	if in.ShootHeld {
		if b := s.player.Shoot(); b != nil {
			s.playerShots = append(s.playerShots, b)
		}
	}
	s.player.Integrate(s.level.Platforms)

	// Enemies: iterate a stable snapshot; newly fired shots go straight to
	// the session-owned collection.
	playerRect := s.player.Rect()
	enemies := append([]*Enemy(nil), s.level.Enemies...)
	for _, e := range enemies {
		e.Update(s.tick, s.level.Platforms, playerRect, s.rng, func(b *Projectile) {
			s.enemyShots = append(s.enemyShots, b)
		})
	}

	// Projectiles: advance, then drop anything outside the level.
	s.playerShots = advanceProjectiles(s.playerShots, s.level.Width, s.level.Height)
	s.enemyShots = advanceProjectiles(s.enemyShots, s.level.Width, s.level.Height)

	s.resolveCombat()

	s.camera.Follow(s.player.Rect(), s.viewportW, s.viewportH)

	s.throttleSpawn()
}

// advanceProjectiles moves every projectile and filters out-of-bounds ones
// in place.
func advanceProjectiles(shots []*Projectile, levelW, levelH int) []*Projectile {
	kept := shots[:0]
	for _, b := range shots {
		b.Advance()
		if b.InBounds(levelW, levelH) {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(shots); i++ {
		shots[i] = nil
	}
	return kept
}

// throttleSpawn keeps the enemy population topped up: while fewer than the
// minimum are alive a timer runs, and when it expires one enemy of random
// kind appears at an offset from the player.
func (s *Session) throttleSpawn() {
	if s.level.AliveEnemies() >= s.cfg.Spawn.MinEnemies {
		return
	}
	s.spawnTimer++
	if s.spawnTimer <= s.cfg.Spawn.DelayTicks {
		return
	}

	offsets := s.cfg.Spawn.OffsetsX
	sx := s.player.Rect().X + offsets[s.rng.Intn(len(offsets))]
	sx = core.Clamp(sx, 100, core.Max(100, s.level.Width-80))
	sy := randRange(s.rng, 100, core.Max(100, s.level.Height-120))

	kind := KindPatrol
	if s.rng.Intn(2) == 1 {
		kind = KindFlying
	}
	s.level.Enemies = append(s.level.Enemies, NewEnemy(&s.cfg, kind, sx, sy, s.rng))
	s.spawnTimer = 0
}

// generateStars lays out the background starfield. A fixed seed keeps the
// pattern stable across sessions; it is scenery, not gameplay.
func (s *Session) generateStars() {
	rng := rand.New(rand.NewSource(123))
	s.stars = s.stars[:0]
	for i := 0; i < 120; i++ {
		s.stars = append(s.stars, core.Vec2{
			X: float64(rng.Intn(s.level.Width)),
			Y: float64(rng.Intn(s.level.Height)),
		})
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Player exposes the player for read-only consumption by the renderer.
func (s *Session) Player() *Player {
	return s.player
}

// Level exposes the level for read-only consumption by the renderer.
func (s *Session) Level() *Level {
	return s.level
}

// Camera exposes the camera for read-only consumption by the renderer.
func (s *Session) Camera() *Camera {
	return s.camera
}

// PlayerShots exposes the live player projectiles.
func (s *Session) PlayerShots() []*Projectile {
	return s.playerShots
}

// EnemyShots exposes the live enemy projectiles.
func (s *Session) EnemyShots() []*Projectile {
	return s.enemyShots
}

// Tick returns the number of simulated ticks since the last reset.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Score returns the player's score, 0 before the first Reset.
func (s *Session) Score() int {
	if s.player == nil {
		return 0
	}
	return s.player.Score
}
