package ledger

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PlayerStore owns the team roster.
type PlayerStore struct {
	mu      sync.RWMutex
	players map[string]Player
	locale  language.Tag
}

// NewPlayerStore creates an empty roster whose List order follows the collation of locale.
func NewPlayerStore(locale language.Tag) *PlayerStore {
	return &PlayerStore{
		players: make(map[string]Player),
		locale:  locale,
	}
}

// Add creates a player, or returns the existing player whose name matches
// ignoring case. The existing player is returned unchanged.
func (s *PlayerStore) Add(name string, jerseyNumber *int) (Player, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Player{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	key := FoldName(trimmed)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.players {
		if FoldName(p.Name) == key {
			return clonePlayer(p), nil
		}
	}

	p := Player{
		ID:           uuid.NewString(),
		Name:         trimmed,
		JerseyNumber: cloneInt(jerseyNumber),
	}
	s.players[p.ID] = p
	return clonePlayer(p), nil
}

// Remove deletes the player. Outstanding assignments must be checked in first.
func (s *PlayerStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return &NotFoundError{Kind: KindPlayer, ID: id}
	}
	delete(s.players, id)
	return nil
}

// Clear removes every player.
func (s *PlayerStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = make(map[string]Player)
}

// Find returns the player with the given id.
func (s *PlayerStore) Find(id string) (Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return Player{}, false
	}
	return clonePlayer(p), true
}

// List returns the roster ordered by name.
func (s *PlayerStore) List() []Player {
	s.mu.RLock()
	out := make([]Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, clonePlayer(p))
	}
	s.mu.RUnlock()

	// Collators keep internal buffers and are not shared between calls.
	col := collate.New(s.locale)
	sort.SliceStable(out, func(i, j int) bool {
		if c := col.CompareString(out[i].Name, out[j].Name); c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of players.
func (s *PlayerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// Restore replaces the roster with a previously saved snapshot.
func (s *PlayerStore) Restore(players []Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[string]Player, len(players))
	for _, p := range players {
		if p.ID == "" {
			continue
		}
		s.players[p.ID] = clonePlayer(p)
	}
}

func clonePlayer(p Player) Player {
	p.JerseyNumber = cloneInt(p.JerseyNumber)
	return p
}
