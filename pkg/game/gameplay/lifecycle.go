package gameplay

import (
	"fmt"
	"time"

	"dungeondaily/pkg/engine/rng"
	"dungeondaily/pkg/game/daily"
	"dungeondaily/pkg/game/generator"
	"dungeondaily/pkg/game/setup"
	"dungeondaily/pkg/game/state"
)

// GenerateDungeon builds the dungeon for seed. The result depends only on
// the seed: one generator stream drives the maze and then the placement.
func GenerateDungeon(seed int64, policy state.EnemyPolicy) (*state.Game, error) {
	r := rng.New(seed)
	g := state.NewGame(seed, generator.DefaultGenerator.Generate(r), policy)

	if _, err := setup.SetupLevel(g, r); err != nil {
		return nil, fmt.Errorf("generating dungeon for seed %d: %w", seed, err)
	}
	return g, nil
}

// BuildGame generates the dungeon for seed and greets the player
func BuildGame(seed int64, policy state.EnemyPolicy) (*state.Game, error) {
	g, err := GenerateDungeon(seed, policy)
	if err != nil {
		return nil, err
	}
	logMessage(g, "WELCOME")
	return g, nil
}

// NewDailyGame builds the game for the local calendar day of now
func NewDailyGame(now time.Time, policy state.EnemyPolicy) (*state.Game, error) {
	return BuildGame(daily.Seed(now), policy)
}

// ResetLevel regenerates the same dungeon from the game's seed and starts over
func ResetLevel(g *state.Game) error {
	fresh, err := BuildGame(g.Seed, g.Policy)
	if err != nil {
		return err
	}
	*g = *fresh
	return nil
}
