package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/state"
)

// socketFrame is every frame the server sends. The first frame after the
// upgrade carries only the snapshot; move replies add the result.
type socketFrame struct {
	Result   string          `json:"result,omitempty"`
	Snapshot *state.Snapshot `json:"snapshot,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// handleSocket streams moves for one session over a websocket. Each client
// frame {"direction": "..."} is answered with one reply frame.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Server shutdown does not track hijacked connections
	stop := context.AfterFunc(r.Context(), func() { conn.Close() })
	defer stop()

	log := s.log.With().Str("session", sess.ID.String()).Logger()
	log.Debug().Msg("websocket connected")

	snap := sess.Snapshot()
	if err := conn.WriteJSON(socketFrame{Snapshot: &snap}); err != nil {
		return
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("websocket read failed")
			}
			return
		}

		if err := conn.WriteJSON(s.socketReply(sess, message)); err != nil {
			log.Warn().Err(err).Msg("websocket write failed")
			return
		}
	}
}

func (s *Server) socketReply(sess *Session, message []byte) socketFrame {
	var req moveRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return socketFrame{Error: fmt.Sprintf("decoding frame: %v", err)}
	}
	dir, ok := world.ParseDirection(req.Direction)
	if !ok {
		return socketFrame{Error: (&world.UnknownDirectionError{Name: req.Direction}).Error()}
	}

	result, snap := sess.Move(dir)
	return socketFrame{Result: result.String(), Snapshot: &snap}
}
