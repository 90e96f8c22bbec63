package ebiten

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"

	engineinput "dungeondaily/pkg/engine/input"
	"dungeondaily/pkg/game/state"
)

// renderSnapshot holds a consistent snapshot of game state for rendering.
// Draw only ever reads this copy, never the live game.
type renderSnapshot struct {
	valid bool
	game  state.Snapshot

	health int
	moves  int
	score  int

	// notice is a transient message such as the share text
	notice string

	gameOver        bool
	gameOverVictory bool
	gameOverScore   int
	gameOverMoves   int
}

// Options configures the window
type Options struct {
	Width          int
	Height         int
	TileSize       int
	SwipeThreshold float64
	Title          string
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int
	title        string

	// Tile size for rendering, adjustable with =/-
	tileSize    int
	defaultTile int

	initOnce sync.Once

	// Font source for all text
	monoFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when sizes change)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedTileFace     *text.GoTextFace
	cachedUIFace       *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// done is closed once the window has gone away
	done     chan struct{}
	doneOnce sync.Once

	// closing asks Update to end the Ebiten loop
	closing atomic.Bool

	// Touch and mouse swipe tracking (Update goroutine only)
	swipe      *engineinput.SwipeDetector
	touchID    ebiten.TouchID
	touching   bool
	mouseSwipe bool
	debouncer  engineinput.Debouncer

	log zerolog.Logger
}
