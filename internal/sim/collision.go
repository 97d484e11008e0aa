package sim

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// CheckForPlayerBulletIntersections resolves player shots against enemies.
// Enemies are checked in order; for each, the first overlapping projectile
// (players in spawn order, oldest shot first) destroys it, scores for its
// owner and leaves an explosion where the enemy was.
func (s *Service) CheckForPlayerBulletIntersections(kind ExplosionKind) {
	s.enemies = slices.DeleteFunc(s.enemies, func(e *entity.Enemy) bool {
		return s.shootDown(e, kind)
	})
}

func (s *Service) shootDown(e *entity.Enemy, kind ExplosionKind) bool {
	for _, name := range s.order {
		bullets := s.playerBullets[name]
		i := slices.IndexFunc(bullets, func(b *entity.Projectile) bool {
			return b.Intersects(&e.Entity)
		})
		if i < 0 {
			continue
		}
		s.playerBullets[name] = slices.Delete(bullets, i, i+1)

		p := s.players[name]
		if every := s.cfg.ExtraLifeEvery; every > 0 && p.Score()%every+e.HitScore() >= every {
			p.AddLife()
		}
		p.AddToScore(e.HitScore())

		s.explosions = append(s.explosions, entity.NewExplosion(kind.Sprite, e.X, e.Y, kind.Animation))
		s.play(CueEnemyDestroyed)
		return true
	}
	return false
}

// CheckForEnemyBulletIntersections resolves enemy shots against ships.
// Every hit costs a life and leaves an explosion kept inside the playfield;
// a ship with no lives left ends the game.
func (s *Service) CheckForEnemyBulletIntersections(kind ExplosionKind) {
	for _, name := range s.order {
		p := s.players[name]
		s.enemyBullets = slices.DeleteFunc(s.enemyBullets, func(b *entity.Projectile) bool {
			if !b.Intersects(&p.Entity) {
				return false
			}
			x, y := s.clampExplosion(p.X, p.Y, kind)
			s.explosions = append(s.explosions, entity.NewExplosion(kind.Sprite, x, y, kind.Animation))
			s.play(CuePlayerHit)

			p.RemoveLife()
			if p.Lives() == 0 {
				s.endGame("destroyed")
			}
			return true
		})
	}
}

// clampExplosion pulls an explosion back by however far it would overflow
// the right or bottom edge.
func (s *Service) clampExplosion(x, y float64, kind ExplosionKind) (float64, float64) {
	if fw := kind.frameWidth(); x+fw > s.field.Width {
		x -= math.Mod(x+fw, s.field.Width)
	}
	if fh := kind.Sprite.Height; y+fh > s.field.Height {
		y -= math.Mod(y+fh, s.field.Height)
	}
	return x, y
}
