package game

import (
	"testing"

	"github.com/goalsat7/space-game/internal/core"
)

func TestCameraClampsToLevelStart(t *testing.T) {
	c := NewCamera(4000, 640)

	// Target near the left edge: centering would expose x < 0
	c.Follow(core.NewRect(100, 400, 36, 48), 800, 480)
	if c.Offset.X != 0 {
		t.Errorf("offset.X = %v, want clamped to 0", c.Offset.X)
	}
}

func TestCameraClampsToLevelEnd(t *testing.T) {
	c := NewCamera(4000, 640)

	c.Follow(core.NewRect(3950, 400, 36, 48), 800, 480)
	if want := float64(4000 - 800); c.Offset.X != want {
		t.Errorf("offset.X = %v, want clamped to %v", c.Offset.X, want)
	}
}

func TestCameraCentersTarget(t *testing.T) {
	c := NewCamera(4000, 640)

	target := core.NewRect(2000, 300, 36, 48)
	c.Follow(target, 800, 480)

	if want := float64(target.CenterX()) - 400; c.Offset.X != want {
		t.Errorf("offset.X = %v, want %v (target centered)", c.Offset.X, want)
	}
}

func TestCameraCollapsesForOversizedViewport(t *testing.T) {
	c := NewCamera(4000, 640)

	// Viewport taller than the level: the vertical clamp collapses to 0
	c.Follow(core.NewRect(2000, 300, 36, 48), 800, 1000)
	if c.Offset.Y != 0 {
		t.Errorf("offset.Y = %v, want 0 with an oversized viewport", c.Offset.Y)
	}
}

func TestCameraApply(t *testing.T) {
	c := NewCamera(4000, 640)
	c.Offset = core.Vec2{X: 100, Y: 50}

	got := c.Apply(core.NewRect(150, 80, 36, 48))
	want := core.NewRect(50, 30, 36, 48)
	if got != want {
		t.Errorf("Apply = %+v, want %+v", got, want)
	}
}
