package highscore

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps leaderboards in process. Used when no database is
// configured and in tests.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	single []SinglePlayerScore
	multi  []MultiPlayerScore
	now    func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) AddSingle(_ context.Context, s SinglePlayerScore) (SinglePlayerScore, error) {
	if err := s.Normalize(); err != nil {
		return SinglePlayerScore{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID, s.CreatedAt = m.nextID, m.now()
	m.single = append(m.single, s)
	slices.SortStableFunc(m.single, func(a, b SinglePlayerScore) int { return cmp.Compare(b.Score, a.Score) })
	return s, nil
}

func (m *MemoryStore) AddMulti(_ context.Context, s MultiPlayerScore) (MultiPlayerScore, error) {
	if err := s.Normalize(); err != nil {
		return MultiPlayerScore{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID, s.CreatedAt = m.nextID, m.now()
	m.multi = append(m.multi, s)
	slices.SortStableFunc(m.multi, func(a, b MultiPlayerScore) int { return cmp.Compare(b.Score, a.Score) })
	return s, nil
}

func (m *MemoryStore) Singles(_ context.Context, limit int) ([]SinglePlayerScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(head(m.single, limit)), nil
}

func (m *MemoryStore) Multis(_ context.Context, limit int) ([]MultiPlayerScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(head(m.multi, limit)), nil
}

func head[T any](s []T, limit int) []T {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
