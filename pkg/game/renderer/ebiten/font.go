package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFonts parses the embedded Go Mono face used for tiles and UI text
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("loading mono font: %w", err)
	}
	e.monoFontSource = src
	e.invalidateFontCache()
	return nil
}

// invalidateFontCache drops cached faces so they are rebuilt at the current tile size
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedTileFace = nil
	e.cachedUIFace = nil
}

// getTileFontSize returns the font size for map tiles, scaled to the current tile size
func (e *EbitenRenderer) getTileFontSize() float64 {
	return baseFontSize * float64(e.tileSize) / defaultTileSize
}

// getUIFontSize returns the font size for UI text (half the tile font, at least 12)
func (e *EbitenRenderer) getUIFontSize() float64 {
	return max(e.getTileFontSize()*0.5, 12)
}

// getTileFace returns a cached monospace font face for map tiles
func (e *EbitenRenderer) getTileFace() *text.GoTextFace {
	size := e.getTileFontSize()
	if e.cachedTileFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedTileFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedTileFace
}

// getUIFace returns a cached font face for the header, messages and overlay
func (e *EbitenRenderer) getUIFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedUIFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedUIFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedUIFace
}
