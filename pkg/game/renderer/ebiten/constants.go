// Package ebiten provides an Ebiten-based 2D graphical renderer for DungeonDaily.
package ebiten

import (
	"image/color"
	"time"

	"dungeondaily/pkg/engine/world"
)

// Color palette for the game
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall            = color.RGBA{180, 180, 200, 255} // Light gray-blue for wall text
	colorWallBg          = color.RGBA{60, 60, 80, 255}    // Darker background for walls
	colorFloor           = color.RGBA{100, 100, 120, 255} // Medium gray for unexplored floor
	colorExplored        = color.RGBA{40, 40, 60, 255}    // Background for explored floor
	colorEnemy           = color.RGBA{255, 80, 80, 255}   // Bright red
	colorHealth          = color.RGBA{255, 150, 255, 255} // Bright pink
	colorExit            = color.RGBA{100, 255, 100, 255} // Bright green
	colorTrap            = color.RGBA{255, 220, 100, 255} // Yellow
	colorCoin            = color.RGBA{255, 200, 100, 255} // Orange-gold
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Icon constants - Go Mono has no emoji, so tiles use plain glyphs
var cellIcons = map[world.CellType]string{
	world.Empty:        "·",
	world.Wall:         "▒",
	world.Player:       "@",
	world.Enemy:        "E",
	world.HealthPotion: "+",
	world.Exit:         "X",
	world.Trap:         "^",
	world.Coin:         "$",
	world.Explored:     " ",
}

var cellColors = map[world.CellType]color.Color{
	world.Empty:        colorFloor,
	world.Wall:         colorWall,
	world.Player:       colorPlayer,
	world.Enemy:        colorEnemy,
	world.HealthPotion: colorHealth,
	world.Exit:         colorExit,
	world.Trap:         colorTrap,
	world.Coin:         colorCoin,
	world.Explored:     colorSubtle,
}

// Layout and sizing
const (
	defaultWindowWidth  = 480
	defaultWindowHeight = 640
	defaultTileSize     = 40

	minTileSize  = 16
	maxTileSize  = 96
	tileSizeStep = 4

	baseFontSize = 24.0

	// Margin around the map area
	mapMargin = 20

	// Intents buffered between the window and the game loop
	inputBufferSize = 16

	// Repeated identical key or swipe codes within this window are dropped
	debounceInterval = 120 * time.Millisecond
)
