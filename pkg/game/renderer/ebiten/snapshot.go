package ebiten

import (
	"dungeondaily/pkg/game/state"
)

// RenderFrame captures a snapshot of the game for the next Draw call
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if g == nil || g.Grid == nil {
		e.snapshot.valid = false
		return
	}

	e.snapshot.valid = true
	e.snapshot.game = g.Snapshot()
}

// UpdateStats stores the header readout
func (e *EbitenRenderer) UpdateStats(health, moves, score int) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	e.snapshot.health = health
	e.snapshot.moves = moves
	e.snapshot.score = score
}

// ShowMessage stores a notice drawn above the map until the next Clear
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	e.snapshot.notice = msg
}

// ShowGameOver stores the end of game overlay
func (e *EbitenRenderer) ShowGameOver(victory bool, score, moves int) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	e.snapshot.gameOver = true
	e.snapshot.gameOverVictory = victory
	e.snapshot.gameOverScore = score
	e.snapshot.gameOverMoves = moves
}

// Clear drops the per-frame notice and overlay; the board stays until replaced
func (e *EbitenRenderer) Clear() {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	e.snapshot.notice = ""
	e.snapshot.gameOver = false
}

// currentSnapshot returns a copy of the snapshot for drawing
func (e *EbitenRenderer) currentSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()

	return e.snapshot
}
