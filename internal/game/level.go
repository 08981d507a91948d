package game

import (
	"math/rand"

	"github.com/goalsat7/space-game/internal/config"
	"github.com/goalsat7/space-game/internal/core"
)

// Level holds the static platforms and the dynamic enemy set. Platforms are
// immutable after generation; only enemies are added (spawn throttle) and
// removed (combat) during play.
type Level struct {
	Width  int
	Height int

	Platforms []core.Rect
	Enemies   []*Enemy
}

// GenerateLevel builds a procedural layout: a full-width ground platform,
// a forward walk of gapped platforms with optional enemies, and a handful
// of extra "tower" platforms. All randomness comes from rng so a seed fully
// determines the layout.
func GenerateLevel(cfg *config.GameConfig, rng *rand.Rand) *Level {
	lv := &Level{
		Width:  cfg.Level.Width,
		Height: cfg.Level.Height,
	}

	// Ground spans the entire level so there is always a floor to land on.
	lv.Platforms = append(lv.Platforms, core.NewRect(
		0, lv.Height-cfg.Level.GroundHeight, lv.Width, cfg.Level.GroundHeight,
	))

	// Forward walk of stepping platforms.
	x := 200
	for x < lv.Width-200 {
		w := randRange(rng, cfg.Level.PlatformMinWidth, cfg.Level.PlatformMaxWidth)
		y := randRange(rng, cfg.Level.BandTop, lv.Height-cfg.Level.BandBottomMargin)
		lv.Platforms = append(lv.Platforms, clampPlatform(core.NewRect(x, y, w, cfg.Level.PlatformHeight), lv))

		if rng.Float64() < cfg.Level.EnemyChance {
			kind := KindPatrol
			if rng.Intn(2) == 1 {
				kind = KindFlying
			}
			lv.Enemies = append(lv.Enemies, NewEnemy(cfg, kind, x+w/2, y-30, rng))
		}

		x += randRange(rng, cfg.Level.GapMin, cfg.Level.GapMax)
	}

	// Tower platforms scattered across the middle of the level.
	for i := 0; i < cfg.Level.TowerCount; i++ {
		px := randRange(rng, 500, core.Max(500, lv.Width-300))
		py := randRange(rng, 100, core.Max(100, lv.Height-280))
		w := randRange(rng, cfg.Level.TowerMinWidth, cfg.Level.TowerMaxWidth)
		lv.Platforms = append(lv.Platforms, clampPlatform(core.NewRect(px, py, w, cfg.Level.PlatformHeight), lv))

		if rng.Float64() < cfg.Level.TowerEnemyChance {
			lv.Enemies = append(lv.Enemies, NewEnemy(cfg, KindPatrol, px+40, py-30, rng))
		}
	}

	return lv
}

// clampPlatform keeps a generated platform fully inside the level bounds.
func clampPlatform(r core.Rect, lv *Level) core.Rect {
	r.X = core.Clamp(r.X, 0, core.Max(0, lv.Width-r.W))
	r.Y = core.Clamp(r.Y, 0, core.Max(0, lv.Height-r.H))
	return r
}

// AliveEnemies returns the number of enemies still in play.
func (lv *Level) AliveEnemies() int {
	n := 0
	for _, e := range lv.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// compactEnemies drops dead enemies from the collection. Called once per
// tick after combat resolution.
func (lv *Level) compactEnemies() {
	kept := lv.Enemies[:0]
	for _, e := range lv.Enemies {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	// Clear the tail so removed enemies are collectable.
	for i := len(kept); i < len(lv.Enemies); i++ {
		lv.Enemies[i] = nil
	}
	lv.Enemies = kept
}
