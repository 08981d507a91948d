package game

import "math"

// Snapshot is the complete observable session state in primitive types.
// The renderer never needs it (it reads the session directly), but tests
// and tooling use it for determinism checks and state dumps. Continuous
// values are fixed-point encoded at 1/1000 px so the hash is stable.
type Snapshot struct {
	Tick  uint64
	State string

	PlayerX   int64
	PlayerY   int64
	PlayerVX  int64
	PlayerVY  int64
	Facing    int
	OnGround  bool
	Health    int
	Lives     int
	Score     int
	Cooldown  int

	CameraX int64
	CameraY int64

	SpawnTimer int

	PlatformCount int

	// Each enemy is 6 ints: kind, x, y (fixed-point), health, dir, cooldown.
	EnemyCount int
	EnemyData  []int64

	// Each projectile is 5 ints: owner, x, y, vx, vy (fixed-point).
	PlayerShotCount int
	EnemyShotCount  int
	ShotData        []int64
}

const snapScale = 1000

func fixed(v float64) int64 {
	return int64(math.Round(v * snapScale))
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		State:      s.state.String(),
		SpawnTimer: s.spawnTimer,
	}

	if s.player != nil {
		snap.PlayerX = fixed(s.player.Pos.X)
		snap.PlayerY = fixed(s.player.Pos.Y)
		snap.PlayerVX = fixed(s.player.Vel.X)
		snap.PlayerVY = fixed(s.player.Vel.Y)
		snap.Facing = s.player.Facing
		snap.OnGround = s.player.OnGround
		snap.Health = s.player.Health
		snap.Lives = s.player.Lives
		snap.Score = s.player.Score
		snap.Cooldown = s.player.ShootCooldown
	}
	if s.camera != nil {
		snap.CameraX = fixed(s.camera.Offset.X)
		snap.CameraY = fixed(s.camera.Offset.Y)
	}
	if s.level != nil {
		snap.PlatformCount = len(s.level.Platforms)
		snap.EnemyCount = len(s.level.Enemies)
		snap.EnemyData = make([]int64, 0, len(s.level.Enemies)*6)
		for _, e := range s.level.Enemies {
			snap.EnemyData = append(snap.EnemyData,
				int64(e.Kind), fixed(e.Pos.X), fixed(e.Pos.Y),
				int64(e.Health), int64(e.Dir), int64(e.ShootCooldown),
			)
		}
	}

	snap.PlayerShotCount = len(s.playerShots)
	snap.EnemyShotCount = len(s.enemyShots)
	snap.ShotData = make([]int64, 0, (len(s.playerShots)+len(s.enemyShots))*5)
	for _, shots := range [][]*Projectile{s.playerShots, s.enemyShots} {
		for _, b := range shots {
			snap.ShotData = append(snap.ShotData,
				int64(b.Owner), fixed(b.Pos.X), fixed(b.Pos.Y),
				fixed(b.Vel.X), fixed(b.Vel.Y),
			)
		}
	}

	return snap
}

// Hash returns a simple order-sensitive hash of the snapshot for
// determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	mix := func(v int64) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	mix(snap.PlayerX)
	mix(snap.PlayerY)
	mix(snap.PlayerVX)
	mix(snap.PlayerVY)
	mix(int64(snap.Facing))
	if snap.OnGround {
		mix(1)
	}
	mix(int64(snap.Health))
	mix(int64(snap.Lives))
	mix(int64(snap.Score))
	mix(int64(snap.Cooldown))
	mix(snap.CameraX)
	mix(snap.CameraY)
	mix(int64(snap.SpawnTimer))
	mix(int64(snap.PlatformCount))
	mix(int64(snap.EnemyCount))
	for _, v := range snap.EnemyData {
		mix(v)
	}
	mix(int64(snap.PlayerShotCount))
	mix(int64(snap.EnemyShotCount))
	for _, v := range snap.ShotData {
		mix(v)
	}
	return h
}
