package sim

// IncreaseLevel moves to the next level and clears every projectile.
func (s *Service) IncreaseLevel() {
	s.level++
	for name := range s.playerBullets {
		s.playerBullets[name] = nil
	}
	s.enemyBullets = nil
	s.logger.Debug("level up", "level", s.level)
}

// IncreaseDifficulty applies the level-based escalation: an extra row on
// even levels, faster enemy fire every third level, a faster wave every
// fifth. Each stays within its configured limit, and a changed cadence
// restarts its counter.
func (s *Service) IncreaseDifficulty() {
	if s.level%2 == 0 && s.rowCount < s.cfg.MaxRowCount {
		s.rowCount++
	}
	if s.level%3 == 0 {
		if next := s.ticksBetweenShots - s.cfg.ShotCadenceStep; next >= s.cfg.MinTicksBetweenShots && next != s.ticksBetweenShots {
			s.ticksBetweenShots = next
			s.shotTicks = 0
		}
	}
	if s.level%5 == 0 {
		if next := s.ticksBetweenMoves - s.cfg.MoveCadenceStep; next >= s.cfg.MinTicksBetweenMoves && next != s.ticksBetweenMoves {
			s.ticksBetweenMoves = next
			s.moveTicks = 0
		}
	}
	s.logger.Debug("difficulty",
		"level", s.level,
		"rows", s.rowCount,
		"ticks_between_moves", s.ticksBetweenMoves,
		"ticks_between_shots", s.ticksBetweenShots,
	)
}
