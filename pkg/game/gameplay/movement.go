// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/state"
)

// MoveResult reports what a single move did
type MoveResult int

const (
	// MoveIgnored means the game was already over or the target is off the grid
	MoveIgnored MoveResult = iota
	// MoveBlocked means the target is a wall
	MoveBlocked
	MoveStepped
	MoveDamaged
	MoveHealed
	MoveCoin
	MoveVictory
	MoveDefeat
)

func (r MoveResult) String() string {
	switch r {
	case MoveIgnored:
		return "ignored"
	case MoveBlocked:
		return "blocked"
	case MoveStepped:
		return "stepped"
	case MoveDamaged:
		return "damaged"
	case MoveHealed:
		return "healed"
	case MoveCoin:
		return "coin"
	case MoveVictory:
		return "victory"
	case MoveDefeat:
		return "defeat"
	default:
		return fmt.Sprintf("MoveResult(%d)", int(r))
	}
}

// MarshalText encodes the result as its name
func (r MoveResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Consumed reports whether the move changed the game state
func (r MoveResult) Consumed() bool {
	return r != MoveIgnored && r != MoveBlocked
}

// ApplyMove moves the player one cell in dir and resolves whatever is there.
// Walls, the grid edge and a finished game leave the state untouched.
func ApplyMove(g *state.Game, dir world.Direction) MoveResult {
	if g.GameOver || !dir.IsValid() {
		return MoveIgnored
	}

	target := g.Player.Step(dir)
	cell, ok := g.Grid.Get(target)
	if !ok {
		return MoveIgnored
	}

	result := MoveStepped

	switch cell {
	case world.Wall:
		return MoveBlocked

	case world.Exit:
		// The player never steps onto the exit
		g.GameOver = true
		g.Victory = true
		logMessage(g, "VICTORY_MESSAGE")
		return MoveVictory

	case world.Enemy, world.Trap:
		g.Health = max(g.Health-1, 0)
		result = MoveDamaged
		if cell == world.Enemy {
			if g.Policy == state.PolicyRemove {
				g.Enemies.RemoveAt(target)
			}
			logMessage(g, "MSG_HIT_ENEMY")
		} else {
			logMessage(g, "MSG_HIT_TRAP")
		}

	case world.HealthPotion:
		g.Health = min(g.Health+1, state.InitialHealth)
		result = MoveHealed
		logMessage(g, "MSG_HEALED")

	case world.Coin:
		g.Score += state.CoinValue
		result = MoveCoin
		logMessage(g, "MSG_COIN")
	}

	relocate(g, target)

	if g.Health <= 0 {
		g.GameOver = true
		g.Victory = false
		logMessage(g, "DEFEAT_MESSAGE")
		return MoveDefeat
	}

	AdvanceEnemies(g)
	return result
}

// relocate moves the player marker and counts the move
func relocate(g *state.Game, target world.Position) {
	g.Grid.Set(g.Player, world.Explored)
	g.Grid.Set(target, world.Player)
	g.Player = target
	g.Moves++
}

// translate looks up message keys. A function variable keeps go vet from
// treating the key as a non-constant format string.
var translate = gotext.Get

// logMessage adds a translated message to the game's message log
func logMessage(g *state.Game, key string) {
	g.AddMessage(translate(key))
}
