// Package setup places the player, exit and scattered entities on a
// generated grid and guarantees the exit can be reached.
package setup

import (
	"dungeondaily/pkg/engine/rng"
	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/state"
)

// Counts holds how many of each scattered entity were placed
type Counts struct {
	Enemies       int
	HealthPotions int
	Traps         int
	Coins         int
}

// SetupConfig describes what SetupLevel did to the grid
type SetupConfig struct {
	Exit     world.Position
	Counts   Counts
	Repaired bool // an L-shaped corridor was carved to reach the exit
}

// SetupLevel populates g.Grid, which must hold a freshly generated maze, and
// sets g.Player. The draw order on r is fixed: enemy count then one (x, y)
// pair per enemy attempt, then the same for health potions, traps and coins.
// Player and exit placement draw nothing.
func SetupLevel(g *state.Game, r *rng.LCG) (*SetupConfig, error) {
	player, err := PlacePlayer(g.Grid)
	if err != nil {
		return nil, err
	}
	g.Player = player

	exit, err := PlaceExit(g.Grid)
	if err != nil {
		return nil, err
	}

	cfg := &SetupConfig{Exit: exit}

	// Enemies go through the roster so list and grid stay in step
	cfg.Counts.Enemies, err = PlaceScattered(g.Grid, r, Enemies, func(p world.Position) bool {
		return g.Enemies.Spawn(g.Grid, p) != nil
	})
	if err != nil {
		return nil, err
	}

	cfg.Counts.HealthPotions, err = PlaceScattered(g.Grid, r, HealthPotions, setCell(g.Grid, world.HealthPotion))
	if err != nil {
		return nil, err
	}

	cfg.Counts.Traps, err = PlaceScattered(g.Grid, r, Traps, setCell(g.Grid, world.Trap))
	if err != nil {
		return nil, err
	}

	cfg.Counts.Coins, err = PlaceScattered(g.Grid, r, Coins, setCell(g.Grid, world.Coin))
	if err != nil {
		return nil, err
	}

	cfg.Repaired, err = EnsureSolvable(g.Grid, g.Player)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
