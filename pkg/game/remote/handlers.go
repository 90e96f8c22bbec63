package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/daily"
	"dungeondaily/pkg/game/gameplay"
	"dungeondaily/pkg/game/state"
)

// createRequest picks the dungeon for a new game. Seed wins over date;
// neither means today.
type createRequest struct {
	Date string `json:"date,omitempty"`
	Seed *int64 `json:"seed,omitempty"`
}

type gameResponse struct {
	ID       string         `json:"id"`
	Snapshot state.Snapshot `json:"snapshot"`
}

type moveRequest struct {
	Direction string `json:"direction"`
}

type moveResponse struct {
	Result   gameplay.MoveResult `json:"result"`
	Snapshot state.Snapshot      `json:"snapshot"`
}

type shareResponse struct {
	Text     string         `json:"text"`
	Snapshot state.Snapshot `json:"snapshot"`
}

var errNoSession = errors.New("no such game")

// seedFor resolves the seed for a date string, or today when empty
func (s *Server) seedFor(date string) (int64, error) {
	if date == "" {
		return daily.Seed(s.opts.Now()), nil
	}
	return daily.SeedForString(date)
}

// handleDaily returns a fresh dungeon for ?date= without creating a session
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	seed, err := s.seedFor(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, err := s.generate(seed)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, g.Snapshot())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}

	var seed int64
	if req.Seed != nil {
		if *req.Seed < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("seed must not be negative, got %d", *req.Seed))
			return
		}
		seed = *req.Seed
	} else {
		var err error
		if seed, err = s.seedFor(req.Date); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	g, err := s.generate(seed)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	sess := s.store.Add(g)
	s.log.Info().Str("session", sess.ID.String()).Int64("seed", seed).Msg("game created")
	writeJSON(w, http.StatusCreated, gameResponse{ID: sess.ID.String(), Snapshot: sess.Snapshot()})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, gameResponse{ID: sess.ID.String(), Snapshot: sess.Snapshot()})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid game id: %w", err))
		return
	}
	if !s.store.Delete(id) {
		writeError(w, http.StatusNotFound, errNoSession)
		return
	}
	s.log.Info().Str("session", id.String()).Msg("game ended")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}
	dir, ok := world.ParseDirection(req.Direction)
	if !ok {
		writeError(w, http.StatusBadRequest, &world.UnknownDirectionError{Name: req.Direction})
		return
	}

	result, snap := sess.Move(dir)
	writeJSON(w, http.StatusOK, moveResponse{Result: result, Snapshot: snap})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	snap, err := sess.Restart()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, gameResponse{ID: sess.ID.String(), Snapshot: snap})
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	text, snap := sess.Share(s.opts.ShareURL)
	writeJSON(w, http.StatusOK, shareResponse{Text: text, Snapshot: snap})
}

// session resolves the {id} route variable, writing the error response on failure
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid game id: %w", err))
		return nil, false
	}
	sess, ok := s.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, errNoSession)
		return nil, false
	}
	return sess, true
}
