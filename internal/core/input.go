package core

// Intent is the discrete input for a single simulation tick. The platform
// layer owns key handling and edge detection; the simulation only ever sees
// this struct. Move flags are level-triggered (true while the key is held),
// the *Pressed flags are edge-triggered (true only on the tick the key went
// down) and must be computed by the platform, never by the core.
type Intent struct {
	MoveLeft       bool
	MoveRight      bool
	JumpPressed    bool
	ShootHeld      bool
	PausePressed   bool
	ConfirmPressed bool
}

// Any returns true if any flag is set. Handy for idle detection.
func (in Intent) Any() bool {
	return in.MoveLeft || in.MoveRight || in.JumpPressed ||
		in.ShootHeld || in.PausePressed || in.ConfirmPressed
}

// Merge combines another intent into this one. The platform accumulates key
// events between ticks this way and clears the result after each Step.
func (in *Intent) Merge(o Intent) {
	in.MoveLeft = in.MoveLeft || o.MoveLeft
	in.MoveRight = in.MoveRight || o.MoveRight
	in.JumpPressed = in.JumpPressed || o.JumpPressed
	in.ShootHeld = in.ShootHeld || o.ShootHeld
	in.PausePressed = in.PausePressed || o.PausePressed
	in.ConfirmPressed = in.ConfirmPressed || o.ConfirmPressed
}
