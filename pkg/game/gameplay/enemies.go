package gameplay

import (
	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/entities"
	"dungeondaily/pkg/game/state"
)

// AdvanceEnemies gives every tracked enemy one step toward the player, in
// roster order. Each enemy sees the moves made by those before it.
func AdvanceEnemies(g *state.Game) {
	for _, e := range g.Enemies.All() {
		stepEnemy(g, e)
	}
}

// stepEnemy tries the vertical step first, then the horizontal one. An enemy
// only ever enters an Empty cell.
func stepEnemy(g *state.Game, e *entities.Enemy) {
	dx := sign(g.Player.X - e.Position.X)
	dy := sign(g.Player.Y - e.Position.Y)

	vertical := world.Pos(e.Position.X, e.Position.Y+dy)
	if g.Grid.Is(vertical, world.Empty) {
		g.Enemies.MoveTo(g.Grid, e, vertical)
		return
	}

	horizontal := world.Pos(e.Position.X+dx, e.Position.Y)
	if g.Grid.Is(horizontal, world.Empty) {
		g.Enemies.MoveTo(g.Grid, e, horizontal)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
