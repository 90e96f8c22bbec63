package gameplay

import (
	engineinput "dungeondaily/pkg/engine/input"
	"dungeondaily/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// Only movement intents produce a MoveResult other than MoveIgnored.
func ProcessIntent(g *state.Game, intent engineinput.Intent) (MoveResult, error) {
	if dir, ok := intent.Direction(); ok {
		return ApplyMove(g, dir), nil
	}

	switch intent.Action {
	case engineinput.ActionRestart:
		if err := ResetLevel(g); err != nil {
			return MoveIgnored, err
		}
		logMessage(g, "MSG_RESTARTED")

	case engineinput.ActionHelp:
		logMessage(g, "HELP")

	case engineinput.ActionQuit:
		g.Quit = true
	}

	return MoveIgnored, nil
}
