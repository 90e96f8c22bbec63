package remote

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"dungeondaily/pkg/game/gameplay"
	"dungeondaily/pkg/game/state"
)

// fixedNow is 19 October 2026, seed 2026919
var fixedNow = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.Local)

type createdGame struct {
	ID       string         `json:"id"`
	Snapshot state.Snapshot `json:"snapshot"`
}

type movedGame struct {
	Result   string         `json:"result"`
	Snapshot state.Snapshot `json:"snapshot"`
	Error    string         `json:"error"`
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(Options{
		Policy:   state.PolicyCompat,
		ShareURL: "https://example.test/",
		Now:      func() time.Time { return fixedNow },
	}, zerolog.Nop())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func doJSON(t *testing.T, method, url, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decoding response: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

func createGame(t *testing.T, ts *httptest.Server, body string) createdGame {
	t.Helper()
	var game createdGame
	if status := doJSON(t, http.MethodPost, ts.URL+"/api/games", body, &game); status != http.StatusCreated {
		t.Fatalf("POST /api/games status = %d, want 201", status)
	}
	return game
}

func TestDaily(t *testing.T) {
	_, ts := newTestServer(t)

	want, err := gameplay.GenerateDungeon(2026919, state.PolicyCompat)
	if err != nil {
		t.Fatal(err)
	}

	for _, url := range []string{"/api/daily", "/api/daily?date=2026-10-19"} {
		var snap state.Snapshot
		if status := doJSON(t, http.MethodGet, ts.URL+url, "", &snap); status != http.StatusOK {
			t.Fatalf("GET %s status = %d", url, status)
		}
		if snap.Seed != 2026919 || strings.Join(snap.Rows, "\n") != want.Grid.String() {
			t.Errorf("GET %s = seed %d, want the 2026919 dungeon", url, snap.Seed)
		}
	}

	var errBody errorResponse
	if status := doJSON(t, http.MethodGet, ts.URL+"/api/daily?date=yesterday", "", &errBody); status != http.StatusBadRequest || errBody.Error == "" {
		t.Errorf("bad date: status %d body %+v", status, errBody)
	}
}

func TestGameLifecycle(t *testing.T) {
	s, ts := newTestServer(t)

	game := createGame(t, ts, `{"seed": 2026919}`)
	if game.Snapshot.Seed != 2026919 || game.Snapshot.Health != state.InitialHealth {
		t.Fatalf("created snapshot = %+v", game.Snapshot)
	}
	if s.Sessions().Len() != 1 {
		t.Errorf("sessions = %d, want 1", s.Sessions().Len())
	}
	base := ts.URL + "/api/games/" + game.ID

	var got createdGame
	if status := doJSON(t, http.MethodGet, base, "", &got); status != http.StatusOK || got.ID != game.ID {
		t.Errorf("GET game: status %d id %q", status, got.ID)
	}

	// Try every direction; each reply must agree with its own snapshot
	moves := 0
	for _, dir := range []string{"up", "right", "down", "left"} {
		var moved movedGame
		if status := doJSON(t, http.MethodPost, base+"/moves", `{"direction":"`+dir+`"}`, &moved); status != http.StatusOK {
			t.Fatalf("move %s status = %d (%s)", dir, status, moved.Error)
		}
		if moved.Result != "ignored" && moved.Result != "blocked" {
			moves++
		}
		if moved.Snapshot.Moves != moves {
			t.Errorf("after %s (%s) moves = %d, want %d", dir, moved.Result, moved.Snapshot.Moves, moves)
		}
	}

	var share shareResponse
	if status := doJSON(t, http.MethodGet, base+"/share", "", &share); status != http.StatusOK {
		t.Fatalf("share status = %d", status)
	}
	if !strings.HasPrefix(share.Text, "DungeonDaily - ") || !strings.HasSuffix(share.Text, "Play at: https://example.test/") {
		t.Errorf("share text = %q", share.Text)
	}

	var restarted createdGame
	if status := doJSON(t, http.MethodPost, base+"/restart", "", &restarted); status != http.StatusOK {
		t.Fatalf("restart status = %d", status)
	}
	if restarted.Snapshot.Moves != 0 || strings.Join(restarted.Snapshot.Rows, "\n") != strings.Join(game.Snapshot.Rows, "\n") {
		t.Errorf("restart did not regenerate the same dungeon: %+v", restarted.Snapshot)
	}

	if status := doJSON(t, http.MethodDelete, base, "", nil); status != http.StatusNoContent {
		t.Errorf("DELETE status = %d, want 204", status)
	}
	if status := doJSON(t, http.MethodGet, base, "", &errorResponse{}); status != http.StatusNotFound {
		t.Errorf("GET deleted game status = %d, want 404", status)
	}
}

func TestCreate_DefaultsToToday(t *testing.T) {
	_, ts := newTestServer(t)

	for _, body := range []string{"", `{}`, `{"date":"2026-10-19"}`} {
		if game := createGame(t, ts, body); game.Snapshot.Seed != 2026919 {
			t.Errorf("POST %q seed = %d, want 2026919", body, game.Snapshot.Seed)
		}
	}
}

func TestErrors(t *testing.T) {
	_, ts := newTestServer(t)
	game := createGame(t, ts, `{"seed": 2026919}`)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"negative seed", http.MethodPost, "/api/games", `{"seed": -1}`, http.StatusBadRequest},
		{"bad body", http.MethodPost, "/api/games", `{"seed":`, http.StatusBadRequest},
		{"bad date", http.MethodPost, "/api/games", `{"date":"19/10/2026"}`, http.StatusBadRequest},
		{"generation failure", http.MethodPost, "/api/games", `{"seed": 2020129}`, http.StatusInternalServerError},
		{"bad id", http.MethodGet, "/api/games/not-a-uuid", "", http.StatusBadRequest},
		{"unknown id", http.MethodGet, "/api/games/6a0e7a8e-5a8f-4f39-9d0b-3b8c1e7f2d10", "", http.StatusNotFound},
		{"bad direction", http.MethodPost, "/api/games/" + game.ID + "/moves", `{"direction":"sideways"}`, http.StatusBadRequest},
		{"move body", http.MethodPost, "/api/games/" + game.ID + "/moves", `nope`, http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/nothing", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errorResponse
			if status := doJSON(t, tt.method, ts.URL+tt.path, tt.body, &body); status != tt.want {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, status, tt.want)
			}
			if body.Error == "" {
				t.Error("error body should carry a message")
			}
		})
	}
}

func TestSocket(t *testing.T) {
	_, ts := newTestServer(t)
	game := createGame(t, ts, `{"seed": 2026919}`)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/games/" + game.ID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first movedGame
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatal(err)
	}
	if first.Snapshot.Seed != 2026919 || first.Result != "" {
		t.Errorf("first frame = %+v, want the bare snapshot", first)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"direction":"left"}`)); err != nil {
		t.Fatal(err)
	}
	var reply movedGame
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.Result == "" || reply.Error != "" {
		t.Errorf("move reply = %+v", reply)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"direction":"nowhere"}`)); err != nil {
		t.Fatal(err)
	}
	var bad movedGame
	if err := conn.ReadJSON(&bad); err != nil {
		t.Fatal(err)
	}
	if bad.Error == "" || !bytes.Contains([]byte(bad.Error), []byte("nowhere")) {
		t.Errorf("bad frame reply = %+v", bad)
	}
}

func TestSocket_UnknownGame(t *testing.T) {
	_, ts := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/games/6a0e7a8e-5a8f-4f39-9d0b-3b8c1e7f2d10"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("dial should fail for an unknown game")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("dial response = %v, want 404", resp)
	}
}

func TestCheckOrigin(t *testing.T) {
	s := New(Options{AllowedOrigins: []string{"https://play.example"}}, zerolog.Nop())

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"https://play.example", true},
		{"https://evil.example", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/ws/games/x", nil)
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		if got := s.checkOrigin(r); got != tt.want {
			t.Errorf("checkOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}
