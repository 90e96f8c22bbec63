package state

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/entities"
)

const (
	InitialHealth = 3
	CoinValue     = 10
	maxMessages   = 5
)

// EnemyPolicy decides what happens to an enemy the player walks into
type EnemyPolicy int

const (
	// PolicyCompat keeps the enemy tracked after the player overwrites its
	// cell. It stays in the roster and may step back onto the grid later.
	PolicyCompat EnemyPolicy = iota
	// PolicyRemove drops the enemy from the roster when the player lands on it
	PolicyRemove
)

func (p EnemyPolicy) String() string {
	switch p {
	case PolicyCompat:
		return "compat"
	case PolicyRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// ParseEnemyPolicy converts a config name into a policy
func ParseEnemyPolicy(s string) (EnemyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compat":
		return PolicyCompat, nil
	case "remove":
		return PolicyRemove, nil
	default:
		return PolicyCompat, fmt.Errorf("unknown enemy policy %q (want compat or remove)", s)
	}
}

// Status is the high level state of a game
type Status int

const (
	StatusPlaying Status = iota
	StatusVictory
	StatusDefeat
)

func (s Status) String() string {
	switch s {
	case StatusVictory:
		return "victory"
	case StatusDefeat:
		return "defeat"
	default:
		return "playing"
	}
}

// Game represents the state of one daily dungeon run
type Game struct {
	RunID uuid.UUID
	Seed  int64

	Grid   *world.Grid
	Player world.Position

	Health int
	Moves  int
	Score  int

	GameOver bool
	Victory  bool

	Enemies *entities.Roster
	Policy  EnemyPolicy

	Messages []string

	Quit bool // set by the frontend when the player asks to leave
}

// NewGame creates a new game instance around a generated grid
func NewGame(seed int64, grid *world.Grid, policy EnemyPolicy) *Game {
	return &Game{
		RunID:    uuid.New(),
		Seed:     seed,
		Grid:     grid,
		Health:   InitialHealth,
		Enemies:  entities.NewRoster(),
		Policy:   policy,
		Messages: make([]string, 0),
	}
}

// Status returns whether the game is still being played, won or lost
func (g *Game) Status() Status {
	switch {
	case !g.GameOver:
		return StatusPlaying
	case g.Victory:
		return StatusVictory
	default:
		return StatusDefeat
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// LastMessage returns the most recent message, or "" if there are none
func (g *Game) LastMessage() string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	c.Grid = g.Grid.Clone()
	c.Enemies = g.Enemies.Clone()
	c.Messages = append([]string(nil), g.Messages...)
	return &c
}

// Snapshot is an immutable, serialisable view of a game for presentation
type Snapshot struct {
	RunID    string           `json:"run_id"`
	Seed     int64            `json:"seed"`
	Size     int              `json:"size"`
	Rows     []string         `json:"rows"`
	Player   world.Position   `json:"player"`
	Enemies  []world.Position `json:"enemies"`
	Health   int              `json:"health"`
	Moves    int              `json:"moves"`
	Score    int              `json:"score"`
	GameOver bool             `json:"game_over"`
	Victory  bool             `json:"victory"`
	Status   string           `json:"status"`
	Messages []string         `json:"messages"`
}

// Snapshot captures the current state
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		RunID:    g.RunID.String(),
		Seed:     g.Seed,
		Size:     g.Grid.Size(),
		Rows:     g.Grid.Rows(),
		Player:   g.Player,
		Enemies:  g.Enemies.Positions(),
		Health:   g.Health,
		Moves:    g.Moves,
		Score:    g.Score,
		GameOver: g.GameOver,
		Victory:  g.Victory,
		Status:   g.Status().String(),
		Messages: append([]string(nil), g.Messages...),
	}
}

// Cell returns the cell type at p in the snapshot
func (s Snapshot) Cell(p world.Position) world.CellType {
	if p.Y < 0 || p.Y >= len(s.Rows) {
		return world.Wall
	}
	row := []rune(s.Rows[p.Y])
	if p.X < 0 || p.X >= len(row) {
		return world.Wall
	}
	return world.CellType(row[p.X])
}
