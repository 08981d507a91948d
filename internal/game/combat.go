package game

// resolveCombat runs the cross-entity interactions in fixed order:
//
//  1. player projectiles vs enemies
//  2. enemy projectiles vs the player
//  3. enemy body contact (stomp or side hit)
//
// Each step iterates a stable snapshot of the collections it reads, so
// removals earlier in the pass never fault later steps; they just see dead
// entities and skip them. A single enemy can take both a projectile hit and
// a body-contact hit in the same tick; that double resolution is accepted.
// Dead enemies are compacted out once at the end of the pass.
func (s *Session) resolveCombat() {
	s.resolvePlayerShots()
	s.resolveEnemyShots()
	s.resolveBodyContact()
	s.level.compactEnemies()
}

// resolvePlayerShots lets each player projectile damage at most one enemy,
// first overlap wins in iteration order.
func (s *Session) resolvePlayerShots() {
	kept := s.playerShots[:0]
	for _, b := range s.playerShots {
		var hit *Enemy
		br := b.Rect()
		for _, e := range s.level.Enemies {
			if e.Alive() && br.Intersects(e.Rect()) {
				hit = e
				break
			}
		}
		if hit == nil {
			kept = append(kept, b)
			continue
		}

		hit.Health -= s.cfg.Combat.BulletDamage
		if hit.Health <= 0 {
			hit.dead = true
			s.player.Score += s.cfg.Combat.ShootScore
		}
	}
	for i := len(kept); i < len(s.playerShots); i++ {
		s.playerShots[i] = nil
	}
	s.playerShots = kept
}

// resolveEnemyShots removes every enemy projectile overlapping the player
// and applies its damage, ending the game when the last life is spent.
func (s *Session) resolveEnemyShots() {
	playerRect := s.player.Rect()
	kept := s.enemyShots[:0]
	for _, b := range s.enemyShots {
		if !playerRect.Intersects(b.Rect()) {
			kept = append(kept, b)
			continue
		}
		s.damagePlayer(s.cfg.Combat.ContactDamage)
	}
	for i := len(kept); i < len(s.enemyShots); i++ {
		s.enemyShots[i] = nil
	}
	s.enemyShots = kept
}

// resolveBodyContact handles enemies touching the player. Landing on top is
// a stomp: bonus damage to the enemy and an upward bounce for the player.
// Any other contact damages the player.
func (s *Session) resolveBodyContact() {
	playerRect := s.player.Rect()
	enemies := append([]*Enemy(nil), s.level.Enemies...)
	for _, e := range enemies {
		if !e.Alive() || !playerRect.Intersects(e.Rect()) {
			continue
		}

		if playerRect.CenterY() < e.Rect().CenterY() {
			e.Health -= s.cfg.Combat.StompDamage
			s.player.Vel.Y = s.cfg.Physics.JumpVelocity / 2
			if e.Health <= 0 {
				e.dead = true
				s.player.Score += s.cfg.Combat.StompScore
			}
		} else {
			s.damagePlayer(s.cfg.Combat.ContactDamage)
		}
	}
}

// damagePlayer applies damage and transitions to game over when a death
// exhausts the lives. Lives go to -1 exactly at the transition instant; the
// renderer clamps the displayed value.
func (s *Session) damagePlayer(amount int) {
	if !s.player.TakeDamage(amount) {
		return
	}
	if s.player.Lives < 0 {
		s.state = StateGameOver
	}
}
