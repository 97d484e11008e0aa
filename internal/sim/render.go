package sim

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// RenderGameObjects returns the draw calls for every live entity, ships
// first and explosions last, and advances each entity's animation. Finished
// explosions are removed after being drawn one last time.
func (s *Service) RenderGameObjects() []entity.DrawCall {
	s.tick++

	n := len(s.players) + len(s.enemies) + len(s.enemyBullets) + len(s.explosions)
	for _, bullets := range s.playerBullets {
		n += len(bullets)
	}
	draws := make([]entity.DrawCall, 0, n)

	for _, name := range s.order {
		p := s.players[name]
		draws = append(draws, p.DrawCall())
		p.Update()
	}
	for _, e := range s.enemies {
		draws = append(draws, e.DrawCall())
		e.Update()
	}
	for _, name := range s.order {
		for _, b := range s.playerBullets[name] {
			draws = append(draws, b.DrawCall())
			b.Update()
		}
	}
	for _, b := range s.enemyBullets {
		draws = append(draws, b.DrawCall())
		b.Update()
	}
	s.explosions = slices.DeleteFunc(s.explosions, func(x *entity.Explosion) bool {
		draws = append(draws, x.DrawCall())
		return x.Update() == entity.Finished
	})
	return draws
}
