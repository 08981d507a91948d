package game

import "github.com/goalsat7/space-game/internal/core"

// Camera maps world coordinates to viewport coordinates. Offset is the
// world position of the viewport's top-left corner.
type Camera struct {
	Offset core.Vec2

	levelW int
	levelH int
}

// NewCamera creates a camera bounded to a level of the given size.
func NewCamera(levelW, levelH int) *Camera {
	return &Camera{levelW: levelW, levelH: levelH}
}

// Follow centers the viewport on the target, clamped so it never shows
// outside the level. When the level is smaller than the viewport the clamp
// collapses to 0. A pure function of the target; no momentum or easing.
func (c *Camera) Follow(target core.Rect, viewportW, viewportH int) {
	c.Offset.X = clampOffset(float64(target.CenterX())-float64(viewportW)/2, c.levelW, viewportW)
	c.Offset.Y = clampOffset(float64(target.CenterY())-float64(viewportH)/2, c.levelH, viewportH)
}

// Apply translates a world rectangle into viewport coordinates.
func (c *Camera) Apply(r core.Rect) core.Rect {
	return r.Translated(-int(c.Offset.X), -int(c.Offset.Y))
}

func clampOffset(want float64, level, viewport int) float64 {
	hi := float64(level - viewport)
	if hi < 0 {
		hi = 0
	}
	return core.ClampF(want, 0, hi)
}
