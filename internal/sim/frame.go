package sim

import "github.com/vovakirdan/tui-invaders/internal/entity"

// PlayerStatus is the HUD view of one player.
type PlayerStatus struct {
	Name  string `msgpack:"n"`
	Score int    `msgpack:"s"`
	Lives int    `msgpack:"l"`
}

// Frame is everything an external viewer needs to draw one tick.
type Frame struct {
	Tick     uint64            `msgpack:"t"`
	Width    float64           `msgpack:"w"`
	Height   float64           `msgpack:"h"`
	Level    int               `msgpack:"lv"`
	GameOver bool              `msgpack:"go"`
	Players  []PlayerStatus    `msgpack:"p"`
	Draws    []entity.DrawCall `msgpack:"d"`
}

// Frame wraps draw calls returned by RenderGameObjects with the HUD state.
func (s *Service) Frame(draws []entity.DrawCall) Frame {
	f := Frame{
		Tick:     s.tick,
		Width:    s.field.Width,
		Height:   s.field.Height,
		Level:    s.level,
		GameOver: s.gameOver,
		Draws:    draws,
		Players:  make([]PlayerStatus, 0, len(s.order)),
	}
	for _, name := range s.order {
		p := s.players[name]
		f.Players = append(f.Players, PlayerStatus{Name: name, Score: p.Score(), Lives: p.Lives()})
	}
	return f
}
