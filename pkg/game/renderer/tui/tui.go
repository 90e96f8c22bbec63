package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeondaily/pkg/engine/input"
	"dungeondaily/pkg/engine/terminal"
	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/renderer"
	"dungeondaily/pkg/game/state"
)

// Icon constants for the terminal board. All are one column wide so the
// grid stays aligned; graphical frontends use world.CellType.Symbol.
const (
	IconEmpty    = "·"
	IconWall     = "▒"
	IconPlayer   = "@"
	IconEnemy    = "E"
	IconHealth   = "+"
	IconExit     = "▣"
	IconTrap     = "^"
	IconCoin     = "$"
	IconExplored = " "
)

var cellIcons = map[world.CellType]string{
	world.Empty:        IconEmpty,
	world.Wall:         IconWall,
	world.Player:       IconPlayer,
	world.Enemy:        IconEnemy,
	world.HealthPotion: IconHealth,
	world.Exit:         IconExit,
	world.Trap:         IconTrap,
	world.Coin:         IconCoin,
	world.Explored:     IconExplored,
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	// Width overrides the detected terminal width when positive
	Width int

	out    io.Writer
	reader *input.Reader

	colorWall     color.Style
	colorFloor    color.Style
	colorExplored color.Style
	colorPlayer   color.Style
	colorEnemy    color.Style
	colorHealth   color.Style
	colorExit     color.Style
	colorTrap     color.Style
	colorCoin     color.Style
	colorTitle    color.Style
	colorAction   color.Style
	colorDenied   color.Style
	colorSubtle   color.Style

	// ReadErr holds the error that ended input, if any
	ReadErr error
}

// New creates a TUI renderer on stdin and stdout
func New() *TUIRenderer {
	return NewWith(os.Stdout, input.NewReader())
}

// NewWith creates a TUI renderer writing to out and reading from reader
func NewWith(out io.Writer, reader *input.Reader) *TUIRenderer {
	return &TUIRenderer{out: out, reader: reader}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgWhite}
	t.colorFloor = color.Style{color.FgDarkGray}
	t.colorExplored = color.Style{color.FgDefault}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorHealth = color.Style{color.FgMagenta, color.OpBold}
	t.colorExit = color.Style{color.FgGreen}
	t.colorTrap = color.Style{color.FgYellow, color.OpBold}
	t.colorCoin = color.Style{color.FgYellow}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, terminal.ClearScreen())
}

// GetInput reads one command and maps it through the input tiers. A read
// error (end of input, Ctrl+C) is reported as a quit.
func (t *TUIRenderer) GetInput() input.Intent {
	fmt.Fprint(t.out, "\n> ")

	code, err := t.reader.Read()
	if err != nil {
		t.ReadErr = err
		return input.Intent{Action: input.ActionQuit}
	}

	intent := input.ParseIntent(input.DeviceTerminal, code)
	if intent.Action == input.ActionNone && strings.TrimSpace(code) != "" {
		fmt.Fprintln(t.out, t.FormatText("DENIED{%s}", gotext.Get("UNKNOWN_COMMAND")))
	}
	return intent
}

// Interrupted reports whether input ended with Ctrl+C
func (t *TUIRenderer) Interrupted() bool {
	return errors.Is(t.ReadErr, input.ErrInterrupted)
}

func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleExplored:
		return t.colorExplored.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleHealth:
		return t.colorHealth.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleTrap:
		return t.colorTrap.Sprint(text)
	case renderer.StyleCoin:
		return t.colorCoin.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats msg and expands markup using this renderer's colours
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatText(t, msg, args...)
}

// Markup expands markup in already formatted text
func (t *TUIRenderer) Markup(text string) string {
	return renderer.Markup(t, text)
}

func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out)
	for _, line := range strings.Split(msg, "\n") {
		fmt.Fprintln(t.out, "  "+t.Markup(line))
	}
}

func (t *TUIRenderer) UpdateStats(health, moves, score int) {
	fmt.Fprintln(t.out, t.center(renderer.StatsText(health, moves, score)))
}

// ShowGameOver prints the end of game panel
func (t *TUIRenderer) ShowGameOver(victory bool, score, moves int) {
	title, message := renderer.GameOverText(victory)

	style := renderer.StyleDenied
	if victory {
		style = renderer.StyleExit
	}

	width := t.width()
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("═", width)))
	fmt.Fprintln(t.out, t.center(t.StyleText(title, style)))
	fmt.Fprintln(t.out, t.center(message))
	fmt.Fprintln(t.out, t.center(fmt.Sprintf("%s %d   %s %d", gotext.Get("SCORE"), score, gotext.Get("MOVES"), moves)))
	fmt.Fprintln(t.out, t.center(t.Markup(gotext.Get("GAME_OVER_HINT"))))
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("═", width)))
}

func (t *TUIRenderer) RenderFrame(g *state.Game) {
	fmt.Fprintln(t.out, t.center(t.colorTitle.Sprint(gotext.Get("TITLE"))))
	fmt.Fprintln(t.out, t.center(t.colorSubtle.Sprintf("#%d", g.Seed)))
	fmt.Fprintln(t.out)

	t.printMap(g)
	t.printLegend()
	t.printMessagesPane(g)
}

// renderCell returns the coloured icon for a cell
func (t *TUIRenderer) renderCell(c world.CellType) string {
	icon, ok := cellIcons[c]
	if !ok {
		icon = "?"
	}
	return t.StyleText(icon, renderer.CellStyle(c))
}

func (t *TUIRenderer) printMap(g *state.Game) {
	size := g.Grid.Size()

	// Each cell is drawn as icon + space
	indent := (t.width() - size*2) / 2
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)

	for y := 0; y < size; y++ {
		var b strings.Builder
		b.WriteString(pad)
		for x := 0; x < size; x++ {
			b.WriteString(t.renderCell(g.Grid.At(world.Pos(x, y))))
			b.WriteString(" ")
		}
		fmt.Fprintln(t.out, strings.TrimRight(b.String(), " "))
	}

	fmt.Fprintln(t.out)
}

// printLegend prints one line of icon and title pairs
func (t *TUIRenderer) printLegend() {
	var parts []string
	for _, e := range renderer.Legend() {
		parts = append(parts, t.renderCell(e.Cell)+" "+t.colorSubtle.Sprint(e.Title))
	}
	fmt.Fprintln(t.out, t.center(strings.Join(parts, "  ")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := t.width()

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := terminal.DisplayWidth(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := max(width-sideLen-labelLen, 1)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
	} else {
		for _, msg := range g.Messages {
			for _, line := range strings.Split(msg, "\n") {
				fmt.Fprintf(t.out, "  %s\n", t.Markup(line))
			}
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

func (t *TUIRenderer) width() int {
	if t.Width > 0 {
		return t.Width
	}
	return terminal.GetWidth()
}

// center centres a possibly coloured line
func (t *TUIRenderer) center(s string) string {
	plain := color.ClearCode(s)
	centered := terminal.Center(plain, t.width())
	return strings.Repeat(" ", len(centered)-len(plain)) + s
}
