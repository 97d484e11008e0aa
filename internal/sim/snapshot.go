package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// PlayerState is one ship in a Snapshot.
type PlayerState struct {
	Name    string
	X, Y    float64
	Score   int
	Lives   int
	Bullets int
}

// Snapshot captures the simulation state for determinism checks.
// Entities are flattened into primitive slices.
type Snapshot struct {
	Tick              uint64
	Level             int
	RowCount          int
	TicksBetweenMoves int
	MoveTicks         int
	TicksBetweenShots int
	ShotTicks         int
	GameOver          bool
	SoundMuted        bool

	Players []PlayerState

	// Each enemy is 4 values: X, Y, Direction, HitScore.
	EnemyData []float64
	// Each projectile is 2 values: X, Y.
	EnemyBulletData []float64
	ExplosionCount  int
}

// Snapshot returns the current state.
func (s *Service) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:              s.tick,
		Level:             s.level,
		RowCount:          s.rowCount,
		TicksBetweenMoves: s.ticksBetweenMoves,
		MoveTicks:         s.moveTicks,
		TicksBetweenShots: s.ticksBetweenShots,
		ShotTicks:         s.shotTicks,
		GameOver:          s.gameOver,
		SoundMuted:        s.soundMuted,
		ExplosionCount:    len(s.explosions),
	}

	for _, name := range s.order {
		p := s.players[name]
		snap.Players = append(snap.Players, PlayerState{
			Name:    name,
			X:       p.X,
			Y:       p.Y,
			Score:   p.Score(),
			Lives:   p.Lives(),
			Bullets: len(s.playerBullets[name]),
		})
	}

	snap.EnemyData = make([]float64, 0, len(s.enemies)*4)
	for _, e := range s.enemies {
		snap.EnemyData = append(snap.EnemyData, e.X, e.Y, float64(e.Direction()), float64(e.HitScore()))
	}
	snap.EnemyBulletData = make([]float64, 0, len(s.enemyBullets)*2)
	for _, b := range s.enemyBullets {
		snap.EnemyBulletData = append(snap.EnemyBulletData, b.X, b.Y)
	}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putInt := func(v int) { put(uint64(v)) } //#nosec G115 -- hash computation
	putBool := func(v bool) {
		if v {
			put(1)
		} else {
			put(0)
		}
	}

	put(snap.Tick)
	putInt(snap.Level)
	putInt(snap.RowCount)
	putInt(snap.TicksBetweenMoves)
	putInt(snap.MoveTicks)
	putInt(snap.TicksBetweenShots)
	putInt(snap.ShotTicks)
	putBool(snap.GameOver)
	putBool(snap.SoundMuted)

	for _, p := range snap.Players {
		_, _ = h.Write([]byte(p.Name))
		put(math.Float64bits(p.X))
		put(math.Float64bits(p.Y))
		putInt(p.Score)
		putInt(p.Lives)
		putInt(p.Bullets)
	}
	for _, v := range snap.EnemyData {
		put(math.Float64bits(v))
	}
	for _, v := range snap.EnemyBulletData {
		put(math.Float64bits(v))
	}
	putInt(snap.ExplosionCount)

	return h.Sum64()
}
