package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "dungeondaily/pkg/engine/input"
	"dungeondaily/pkg/game/menu"
	"dungeondaily/pkg/game/renderer"
	"dungeondaily/pkg/game/state"
)

// Options tunes the interactive loop
type Options struct {
	ShareURL string
}

// Run initialises the renderer and drives g until the player quits. Each
// iteration draws one frame and applies one intent.
func Run(g *state.Game, r renderer.Renderer, opts Options) error {
	var notice string

	r.Init()

	for !g.Quit {
		r.Clear()
		r.RenderFrame(g)
		r.UpdateStats(g.Health, g.Moves, g.Score)

		if g.GameOver {
			r.ShowGameOver(g.Victory, g.Score, g.Moves)
		}
		if notice != "" {
			r.ShowMessage(notice)
			notice = ""
		}

		intent := r.GetInput()

		if intent.Action == engineinput.ActionShare {
			if g.GameOver {
				notice = ShareText(g, opts.ShareURL)
			} else {
				notice = gotext.Get("MSG_SHARE_LATER")
			}
			continue
		}
		if intent.Action == engineinput.ActionHelp {
			notice = menu.HelpText()
		}

		if _, err := ProcessIntent(g, intent); err != nil {
			return err
		}
	}

	return nil
}
