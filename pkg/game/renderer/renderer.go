package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"

	"dungeondaily/pkg/engine/world"
)

// Styler is the part of a Renderer that markup formatting needs
type Styler interface {
	StyleText(text string, style TextStyle) string
}

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

var regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:!'.?-]+)}`)

// FormatText formats msg like fmt.Sprintf and expands the markup in the result
func FormatText(s Styler, msg string, a ...any) string {
	return Markup(s, fmt.Sprintf(msg, a...))
}

// Markup expands markup in text: GT{KEY} translates a key, while TITLE{..},
// ACTION{..}, DENIED{..} and SUBTLE{..} apply a style. Unknown markup is kept.
func Markup(s Styler, text string) string {
	ret := text

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "TITLE":
			val = s.StyleText(operand, StyleTitle)
		case "ACTION":
			val = s.StyleText(operand, StyleAction)
		case "DENIED":
			val = s.StyleText(operand, StyleDenied)
		case "SUBTLE":
			val = s.StyleText(operand, StyleSubtle)
		default:
			continue
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// CellStyle returns the style a cell type is drawn with
func CellStyle(t world.CellType) TextStyle {
	switch t {
	case world.Wall:
		return StyleWall
	case world.Empty:
		return StyleFloor
	case world.Explored:
		return StyleExplored
	case world.Player:
		return StylePlayer
	case world.Enemy:
		return StyleEnemy
	case world.HealthPotion:
		return StyleHealth
	case world.Exit:
		return StyleExit
	case world.Trap:
		return StyleTrap
	case world.Coin:
		return StyleCoin
	default:
		return StyleNormal
	}
}

// LegendEntry describes one cell type for the on-screen legend
type LegendEntry struct {
	Cell   world.CellType
	Symbol string
	Title  string
}

// Legend returns the translated legend for every cell a player can meet
func Legend() []LegendEntry {
	var entries []LegendEntry
	for _, t := range world.AllCellTypes() {
		if t == world.Explored {
			continue
		}
		entries = append(entries, LegendEntry{
			Cell:   t,
			Symbol: t.Symbol(),
			Title:  dynamicGet(t.Title()),
		})
	}
	return entries
}

// GameOverText returns the translated title and message for the end panel
func GameOverText(victory bool) (title, message string) {
	if victory {
		return gotext.Get("VICTORY_TITLE"), gotext.Get("VICTORY_MESSAGE")
	}
	return gotext.Get("DEFEAT_TITLE"), gotext.Get("DEFEAT_MESSAGE")
}

// StatsText returns the translated health, moves and score readout
func StatsText(health, moves, score int) string {
	return fmt.Sprintf("%s %d   %s %d   %s %d",
		gotext.Get("HEALTH"), health, gotext.Get("MOVES"), moves, gotext.Get("SCORE"), score)
}
