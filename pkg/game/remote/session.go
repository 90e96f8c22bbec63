// Package remote serves DungeonDaily games over HTTP and websockets.
package remote

import (
	"sync"

	"github.com/google/uuid"

	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/gameplay"
	"dungeondaily/pkg/game/state"
)

// Session is one game being played through the API. All access to the game
// goes through the session lock so a turn is never observed half applied.
type Session struct {
	ID uuid.UUID

	mu   sync.Mutex
	game *state.Game
}

// Snapshot returns the current view of the game
func (s *Session) Snapshot() state.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Move applies one move and returns the post-move view
func (s *Session) Move(dir world.Direction) (gameplay.MoveResult, state.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := gameplay.ApplyMove(s.game, dir)
	return result, s.game.Snapshot()
}

// Restart regenerates the session's dungeon from its seed
func (s *Session) Restart() (state.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := gameplay.ResetLevel(s.game); err != nil {
		return state.Snapshot{}, err
	}
	return s.game.Snapshot(), nil
}

// Share returns the share text for the game so far
func (s *Session) Share(url string) (string, state.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gameplay.ShareText(s.game, url), s.game.Snapshot()
}

// Store is the in-memory session table
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty session table
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

// Add registers a game under a fresh id
func (st *Store) Add(g *state.Game) *Session {
	s := &Session{ID: uuid.New(), game: g}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
	return s
}

// Get looks up a session
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session, reporting whether it existed
func (st *Store) Delete(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
