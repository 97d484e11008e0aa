package sim

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// SpawnPlayer creates a ship for name and gives it an empty projectile
// queue. A nil pos places the ship centered at the bottom of the playfield.
// Spawning an existing name replaces that ship.
func (s *Service) SpawnPlayer(name string, sprite entity.Sprite, anim entity.Animation, pos *Point) {
	at := Point{X: s.field.Width / 2, Y: s.field.Height}
	if pos != nil {
		at = *pos
	}
	if _, ok := s.players[name]; !ok {
		s.order = append(s.order, name)
	}
	s.players[name] = entity.NewPlayer(s.field, sprite, at.X, at.Y, anim)
	s.playerBullets[name] = nil
}

// SpawnEnemies spawns one wave of RowCount rows, taking kinds round-robin
// by row.
func (s *Service) SpawnEnemies(kinds []EnemyKind) {
	if len(kinds) == 0 {
		return
	}
	for i := 0; i < s.rowCount; i++ {
		s.SpawnEnemyRow(kinds[i%len(kinds)])
	}
}

// SpawnEnemyRow appends a row of enemies of one kind below the last enemy,
// all heading right.
func (s *Service) SpawnEnemyRow(kind EnemyKind) {
	w, h, gap := kind.Sprite.Width, kind.Sprite.Height, s.cfg.RowGap
	perRow := int(math.Floor((s.field.Width - 2*w) / (w + gap)))

	y := h
	if n := len(s.enemies); n > 0 {
		y = s.enemies[n-1].Y + h + gap
	}
	for i := 0; i < perRow; i++ {
		x := float64(i) * (w + gap)
		s.enemies = append(s.enemies, entity.NewEnemy(s.field, kind.Sprite, x, y, kind.HitScore, entity.Right, kind.Animation))
	}
}
