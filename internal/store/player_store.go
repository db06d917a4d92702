package store

import (
	"sync"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

// PlayerStore is the process-wide, append-only player collection.
// Appends are serialized by the write lock; reads run in parallel and return copies.
type PlayerStore struct {
	mu      sync.RWMutex
	players []players.Player
}

// NewPlayerStore constructs a store seeded with the given players.
func NewPlayerStore(seed []players.Player) *PlayerStore {
	items := make([]players.Player, 0, len(seed))
	for _, p := range seed {
		items = append(items, p.Clone())
	}
	return &PlayerStore{players: items}
}

// ListPlayers returns a copy of the collection in insertion order.
func (s *PlayerStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyLocked()
}

// Len returns the current collection size.
func (s *PlayerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.players)
}

// AppendPlayer assigns the next id (size + 1), builds the record with it and appends it.
// build runs under the write lock, so concurrent appends never observe the same size.
// It returns the stored record and a copy of the updated collection.
func (s *PlayerStore) AppendPlayer(build func(id int) players.Player) (players.Player, []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := build(len(s.players) + 1)
	p.ID = len(s.players) + 1
	s.players = append(s.players, p.Clone())
	return p, s.copyLocked()
}

func (s *PlayerStore) copyLocked() []players.Player {
	result := make([]players.Player, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p.Clone())
	}
	return result
}
