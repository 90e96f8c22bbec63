package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	// Fill background first
	screen.Fill(colorBackground)

	// Get snapshot for consistent rendering
	snap := e.currentSnapshot()
	if !snap.valid || e.monoFontSource == nil || snap.game.Size == 0 {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	uiFontSize := e.getUIFontSize()

	// Title, seed and stats lines
	headerHeight := int(uiFontSize*3) + mapMargin
	// Message log below the map
	footerHeight := int(uiFontSize*1.5)*len(snap.game.Messages) + mapMargin

	availableHeight := screenHeight - headerHeight - footerHeight - mapMargin*2
	availableWidth := screenWidth - mapMargin*2

	// Shrink tiles so the whole board is visible
	size := snap.game.Size
	tile := min(e.tileSize, availableWidth/size, availableHeight/size)
	tile = max(tile, 1)

	mapAreaSize := tile * size
	mapX := (screenWidth - mapAreaSize) / 2
	mapY := headerHeight + mapMargin

	e.drawHeader(screen, &snap, screenWidth)

	// Draw map background with consistent margins
	vector.DrawFilledRect(screen, float32(mapX-mapMargin), float32(mapY-mapMargin),
		float32(mapAreaSize+mapMargin*2), float32(mapAreaSize+mapMargin*2),
		colorMapBackground, false)

	e.drawMap(screen, &snap, mapX, mapY, tile)
	e.drawMessages(screen, &snap, mapX, mapY+mapAreaSize+mapMargin*2)

	if snap.notice != "" {
		e.drawPanel(screen, screenWidth, screenHeight, strings.Split(snap.notice, "\n"), colorText)
	}
	if snap.gameOver {
		e.drawGameOver(screen, &snap, screenWidth, screenHeight)
	}
}

// Layout tracks the window size and uses it as the logical screen (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	}
	return e.windowWidth, e.windowHeight
}

// drawHeader draws the title, the seed and the stats readout
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderSnapshot, screenWidth int) {
	face := e.getUIFace()
	lineHeight := face.Size * 1.3
	cx := float64(screenWidth) / 2
	y := float64(mapMargin) / 2

	e.drawText(screen, gotext.Get("TITLE"), face, cx, y, colorText, text.AlignCenter)
	e.drawText(screen, fmt.Sprintf("#%d", snap.game.Seed), face, cx, y+lineHeight, colorSubtle, text.AlignCenter)
	e.drawText(screen, renderer.StatsText(snap.health, snap.moves, snap.score), face, cx, y+lineHeight*2, colorText, text.AlignCenter)
}

// drawMap draws every cell of the board as a filled tile with its glyph
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap *renderSnapshot, mapX, mapY, tile int) {
	face := e.getTileFace()
	if tile < e.tileSize {
		// Board was shrunk to fit; scale the glyphs with it
		face = &text.GoTextFace{Source: e.monoFontSource, Size: face.Size * float64(tile) / float64(e.tileSize)}
	}

	for y := 0; y < snap.game.Size; y++ {
		for x := 0; x < snap.game.Size; x++ {
			cell := snap.game.Cell(world.Pos(x, y))
			px := float32(mapX + x*tile)
			py := float32(mapY + y*tile)

			switch cell {
			case world.Wall:
				vector.DrawFilledRect(screen, px, py, float32(tile), float32(tile), colorWallBg, false)
			case world.Explored:
				vector.DrawFilledRect(screen, px, py, float32(tile), float32(tile), colorExplored, false)
			}

			icon, ok := cellIcons[cell]
			if !ok || icon == " " {
				continue
			}
			clr, ok := cellColors[cell]
			if !ok {
				clr = colorText
			}
			e.drawGlyph(screen, icon, face, float64(px)+float64(tile)/2, float64(py)+float64(tile)/2, clr)
		}
	}
}

// drawMessages draws the message log, oldest first, below the map
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, x, y int) {
	face := e.getUIFace()
	lineHeight := face.Size * 1.5

	for i, msg := range snap.game.Messages {
		line := renderer.Markup(e, strings.ReplaceAll(msg, "\n", " "))
		e.drawText(screen, line, face, float64(x), float64(y)+lineHeight*float64(i), colorSubtle, text.AlignStart)
	}
}

// drawGameOver draws the end of game overlay
func (e *EbitenRenderer) drawGameOver(screen *ebiten.Image, snap *renderSnapshot, screenWidth, screenHeight int) {
	title, message := renderer.GameOverText(snap.gameOverVictory)

	clr := colorDenied
	if snap.gameOverVictory {
		clr = colorExit
	}

	lines := []string{
		title,
		message,
		fmt.Sprintf("%s %d   %s %d", gotext.Get("SCORE"), snap.gameOverScore, gotext.Get("MOVES"), snap.gameOverMoves),
		renderer.Markup(e, gotext.Get("GAME_OVER_HINT")),
	}
	e.drawPanel(screen, screenWidth, screenHeight, lines, clr)
}

// drawPanel draws centred lines on a translucent panel; the first line uses titleColor
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, screenWidth, screenHeight int, lines []string, titleColor color.Color) {
	face := e.getUIFace()
	lineHeight := face.Size * 1.5

	panelWidth := 0.0
	for _, line := range lines {
		w, _ := text.Measure(line, face, lineHeight)
		panelWidth = max(panelWidth, w)
	}
	panelWidth += float64(mapMargin * 2)
	panelHeight := lineHeight*float64(len(lines)) + float64(mapMargin*2)

	px := (float64(screenWidth) - panelWidth) / 2
	py := (float64(screenHeight) - panelHeight) / 2
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelWidth), float32(panelHeight), colorPanelBackground, false)
	vector.StrokeRect(screen, float32(px), float32(py), float32(panelWidth), float32(panelHeight), 1, colorSubtle, false)

	for i, line := range lines {
		clr := color.Color(colorText)
		if i == 0 {
			clr = titleColor
		}
		e.drawText(screen, line, face, float64(screenWidth)/2, py+float64(mapMargin)+lineHeight*float64(i), clr, text.AlignCenter)
	}
}

// drawText draws a line of text with its top edge at y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

// drawGlyph draws a tile glyph centred on (cx, cy)
func (e *EbitenRenderer) drawGlyph(screen *ebiten.Image, s string, face *text.GoTextFace, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
