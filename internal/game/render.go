package game

import (
	"fmt"

	"github.com/goalsat7/space-game/internal/core"
)

// Glyphs for the world elements.
const (
	platformChar = '█'
	playerChar   = '◘'
	patrolChar   = '▣'
	flyingChar   = '✈'
	bulletChar   = '•'
	starChar     = '·'
)

// Render draws the session into the screen buffer. The screen is cleared
// first; the platform layer only converts the buffer to terminal output and
// never feeds anything back into the simulation.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	switch s.state {
	case StateTitle:
		s.renderTitle(dst)
		return
	case StateGameOver:
		s.renderGameOver(dst)
		return
	}

	s.renderWorld(dst)
	s.renderHUD(dst)

	if s.state == StatePaused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// renderWorld draws the starfield, platforms, entities and projectiles
// through the camera.
func (s *Session) renderWorld(dst *core.Screen) {
	// Stars scroll at 0.3x the camera speed for cheap parallax depth.
	for _, st := range s.stars {
		cx := int(st.X-s.camera.Offset.X*0.3) / PxPerCol
		cy := int(st.Y-s.camera.Offset.Y) / PxPerRow
		if cx >= 0 && cx < dst.Width() {
			dst.SetCell(cx, cy, starChar, core.ColorGray)
		}
	}

	for _, p := range s.level.Platforms {
		s.fillWorldRect(dst, p, platformChar, core.ColorGreen)
	}

	for _, e := range s.level.Enemies {
		ch := patrolChar
		if e.Kind == KindFlying {
			ch = flyingChar
		}
		s.fillWorldRect(dst, e.Rect(), ch, core.ColorBrightRed)
	}

	for _, b := range s.playerShots {
		s.drawWorldPoint(dst, b.Rect(), bulletChar, core.ColorBrightYellow)
	}
	for _, b := range s.enemyShots {
		s.drawWorldPoint(dst, b.Rect(), bulletChar, core.ColorBrightMagenta)
	}

	s.fillWorldRect(dst, s.player.Rect(), playerChar, core.ColorBrightCyan)
}

// fillWorldRect fills every cell the world rectangle touches in view space.
func (s *Session) fillWorldRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	v := s.camera.Apply(r)
	x0 := floorDiv(v.X, PxPerCol)
	x1 := floorDiv(v.Right()-1, PxPerCol)
	y0 := floorDiv(v.Y, PxPerRow)
	y1 := floorDiv(v.Bottom()-1, PxPerRow)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetCell(x, y, ch, c)
		}
	}
}

// drawWorldPoint draws a small world rectangle as a single cell at its center.
func (s *Session) drawWorldPoint(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	v := s.camera.Apply(r)
	dst.SetCell(floorDiv(v.CenterX(), PxPerCol), floorDiv(v.CenterY(), PxPerRow), ch, c)
}

// floorDiv divides rounding toward negative infinity, so partially
// off-screen rectangles map to the correct cells.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// renderHUD draws score, lives and health pips on the top row.
func (s *Session) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.player.Score), core.ColorBrightWhite)

	lives := core.Max(s.player.Lives, 0)
	dst.DrawTextColored(16, 0, fmt.Sprintf("Lives: %d", lives), core.ColorBrightWhite)

	dst.DrawTextColored(28, 0, "HP:", core.ColorBrightWhite)
	for i := 0; i < s.cfg.Player.MaxHealth; i++ {
		ch, col := '♥', core.ColorBrightRed
		if i >= s.player.Health {
			ch, col = '·', core.ColorGray
		}
		dst.SetCell(32+i, 0, ch, col)
	}
}

func (s *Session) renderTitle(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/3, "S P A C E   P L A T F O R M E R")
	dst.DrawTextCentered(h/2, "←/→ or A/D: move   Space/W: jump   J: shoot")
	dst.DrawTextCentered(h/2+2, "Press ENTER to start")
	dst.DrawTextCentered(h/2+4, "P pauses during play")
}

func (s *Session) renderGameOver(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/3, "G A M E   O V E R")
	dst.DrawTextCentered(h/2, fmt.Sprintf("Score: %d", s.player.Score))
	dst.DrawTextCentered(h/2+2, "Press ENTER to restart")
}

// drawCenteredMessage draws a boxed two-line message in the screen center.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
