package renderer

import (
	"dungeondaily/pkg/engine/input"
	"dungeondaily/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleExplored
	StylePlayer
	StyleEnemy
	StyleHealth
	StyleExit
	StyleTrap
	StyleCoin
	StyleTitle
	StyleAction
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for game rendering backends.
// The game loop only talks to the display and input devices through it.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders the board and message log
	RenderFrame(g *state.Game)

	// UpdateStats shows the health, move and score readout
	UpdateStats(health, moves, score int)

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// ShowGameOver displays the end of game panel
	ShowGameOver(victory bool, score, moves int)

	// GetInput waits for the next player intent (blocking for TUI, channel-fed for GUI)
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// StyleText applies a style to text using the current renderer
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}
