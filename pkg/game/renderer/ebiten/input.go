package ebiten

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "dungeondaily/pkg/engine/input"
	"dungeondaily/pkg/engine/world"
)

// keyCodes maps keys to the raw codes understood by the input bindings
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyF5, "f5"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyF1, "help"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.closing.Load() {
		return ebiten.Termination
	}

	e.handleZoom()

	now := time.Now()
	if code, ok := e.checkKeyboard(); ok {
		e.emit(engineinput.DeviceKeyboard, code, now)
	}
	if code, ok := e.checkSwipe(); ok {
		e.emit(engineinput.DeviceTouch, code, now)
	}

	return nil
}

// emit debounces a raw code, maps it to an intent and hands it to the game loop
func (e *EbitenRenderer) emit(device engineinput.Device, code string, now time.Time) {
	ev, ok := e.debouncer.Accept(engineinput.RawInput{Device: device, Code: code, Timestamp: now})
	if !ok {
		return
	}

	intent := engineinput.MapToIntent(ev)
	if intent.Action == engineinput.ActionNone {
		return
	}

	// Non-blocking send to input channel
	select {
	case e.inputChan <- intent:
	default:
		e.log.Debug().Str("code", code).Msg("input buffer full, dropping")
	}
}

// checkKeyboard returns the code of the first bound key pressed this tick
func (e *EbitenRenderer) checkKeyboard() (string, bool) {
	for _, k := range keyCodes {
		if inpututil.IsKeyJustPressed(k.key) {
			return k.code, true
		}
	}
	return "", false
}

// checkSwipe tracks one touch (or a mouse drag) and returns a swipe code once it
// has travelled past the threshold
func (e *EbitenRenderer) checkSwipe() (string, bool) {
	var ids []ebiten.TouchID
	ids = inpututil.AppendJustPressedTouchIDs(ids)
	if len(ids) > 0 && !e.touching {
		e.touchID = ids[0]
		e.touching = true
		x, y := ebiten.TouchPosition(e.touchID)
		e.swipe.Begin(float64(x), float64(y))
	}

	if e.touching {
		if inpututil.IsTouchJustReleased(e.touchID) {
			e.touching = false
			e.swipe.Cancel()
			return "", false
		}
		x, y := ebiten.TouchPosition(e.touchID)
		return swipeCode(e.swipe.Move(float64(x), float64(y)))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		e.swipe.Begin(float64(x), float64(y))
		e.mouseSwipe = true
	}
	if e.mouseSwipe {
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			e.mouseSwipe = false
			e.swipe.Cancel()
			return "", false
		}
		x, y := ebiten.CursorPosition()
		return swipeCode(e.swipe.Move(float64(x), float64(y)))
	}

	return "", false
}

func swipeCode(dir world.Direction, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	return "swipe_" + strings.ToLower(dir.String()), true
}

// handleZoom handles =/- for tile size adjustment and 0 to reset
func (e *EbitenRenderer) handleZoom() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		e.setTileSize(e.tileSize + tileSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		e.setTileSize(e.tileSize - tileSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.Key0), inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		e.setTileSize(e.defaultTile)
	}
}

func (e *EbitenRenderer) setTileSize(size int) {
	size = min(max(size, minTileSize), maxTileSize)
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	e.invalidateFontCache()
}
