package sim

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// MovePlayerLeft moves the named ship one step left.
func (s *Service) MovePlayerLeft(name string) {
	if p, ok := s.players[name]; ok {
		p.Move(entity.Left)
	}
}

// MovePlayerRight moves the named ship one step right.
func (s *Service) MovePlayerRight(name string) {
	if p, ok := s.players[name]; ok {
		p.Move(entity.Right)
	}
}

// MoveEnemies advances the wave once every TicksBetweenMoves calls.
//
// When any enemy is at an edge the whole wave steps down together and
// reverses; the game ends if that brings an enemy level with a ship.
// Otherwise every enemy takes one step in its own direction.
func (s *Service) MoveEnemies() {
	s.moveTicks++
	if s.moveTicks < s.ticksBetweenMoves {
		return
	}
	s.moveTicks = 0

	if !slices.ContainsFunc(s.enemies, (*entity.Enemy).BoundaryReached) {
		for _, e := range s.enemies {
			e.Move()
		}
		return
	}

	for _, e := range s.enemies {
		dir := e.Direction()
		e.SetDirection(entity.Down)
		e.Move()
		e.SetDirection(dir.Reverse())

		for _, p := range s.players {
			if e.Y+e.H >= p.Y {
				s.endGame("invaded")
			}
		}
	}
}

// MovePlayerBullets moves every player projectile up and drops those that
// reach the top.
func (s *Service) MovePlayerBullets() {
	for name, bullets := range s.playerBullets {
		s.playerBullets[name] = advance(bullets, entity.Up)
	}
}

// MoveEnemyBullets moves every enemy projectile down and drops those that
// reach the bottom.
func (s *Service) MoveEnemyBullets() {
	s.enemyBullets = advance(s.enemyBullets, entity.Down)
}

func advance(bullets []*entity.Projectile, dir entity.Direction) []*entity.Projectile {
	return slices.DeleteFunc(bullets, func(b *entity.Projectile) bool {
		return b.Move(dir) == entity.HitBoundary
	})
}
