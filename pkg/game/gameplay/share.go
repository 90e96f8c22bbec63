package gameplay

import (
	"fmt"
	"strings"

	"dungeondaily/pkg/game/state"
)

// DefaultShareURL is used when no share link is configured
const DefaultShareURL = "https://dungeondaily.example/"

// ShareText returns the result summary players paste to others
func ShareText(g *state.Game, url string) string {
	if url == "" {
		url = DefaultShareURL
	}

	outcome := "Game Over"
	if g.Victory {
		outcome = "Victory"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DungeonDaily - %s\n", outcome)
	fmt.Fprintf(&b, "Score: %d\n", g.Score)
	fmt.Fprintf(&b, "Moves: %d\n", g.Moves)
	fmt.Fprintf(&b, "Play at: %s", url)
	return b.String()
}
