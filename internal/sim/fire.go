package sim

import "github.com/vovakirdan/tui-invaders/internal/entity"

// FireBullet launches a projectile from the named ship's nose.
// Rate limiting is up to the caller.
func (s *Service) FireBullet(name string, sprite entity.Sprite) {
	p, ok := s.players[name]
	if !ok {
		return
	}
	b := entity.NewProjectile(s.field, sprite, p.Bounds().CenterX(), p.Y)
	s.playerBullets[name] = append(s.playerBullets[name], b)
	s.play(CueLaser)
}

// FireEnemyBullet lets a random enemy fire once every TicksBetweenShots
// calls. The counter keeps running while there are no enemies and fires
// as soon as one is back.
func (s *Service) FireEnemyBullet(sprite entity.Sprite) {
	s.shotTicks++
	if s.shotTicks < s.ticksBetweenShots || len(s.enemies) == 0 {
		return
	}
	s.shotTicks = 0

	e := s.enemies[s.rng.Intn(len(s.enemies))]
	s.enemyBullets = append(s.enemyBullets, entity.NewProjectile(s.field, sprite, e.Bounds().CenterX(), e.Y))
}
