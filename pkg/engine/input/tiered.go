package input

import (
	"sort"
	"strings"
	"time"

	"dungeondaily/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceTouch
	DeviceNetwork
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Meta / UI
	ActionRestart
	ActionShare
	ActionHelp
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// MoveIntent returns the movement intent for a direction
func MoveIntent(dir world.Direction) Intent {
	switch dir {
	case world.Up:
		return Intent{Action: ActionMoveUp}
	case world.Down:
		return Intent{Action: ActionMoveDown}
	case world.Left:
		return Intent{Action: ActionMoveLeft}
	case world.Right:
		return Intent{Action: ActionMoveRight}
	}
	return Intent{Action: ActionNone}
}

// Direction returns the movement direction of the intent, if it is a move
func (i Intent) Direction() (world.Direction, bool) {
	switch i.Action {
	case ActionMoveUp:
		return world.Up, true
	case ActionMoveDown:
		return world.Down, true
	case ActionMoveLeft:
		return world.Left, true
	case ActionMoveRight:
		return world.Right, true
	}
	return world.Up, false
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "swipe_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event without filtering
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// Debouncer drops a repeat of the same code from the same device that
// arrives within Interval of the previous accepted one.
type Debouncer struct {
	Interval time.Duration

	last     RawInput
	hasInput bool
}

// Accept filters a raw event. ok is false when the event is a bounce.
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	if d.hasInput && raw.Device == d.last.Device && raw.Code == d.last.Code &&
		raw.Timestamp.Sub(d.last.Timestamp) < d.Interval {
		return DebouncedInput{}, false
	}
	d.last = raw
	d.hasInput = true
	return NewDebouncedInput(raw), true
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim, words)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"k":           ActionMoveUp,
	"up":          ActionMoveUp,
	"north":       ActionMoveUp,
	"swipe_up":    ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"j":           ActionMoveDown,
	"down":        ActionMoveDown,
	"south":       ActionMoveDown,
	"swipe_down":  ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,
	"left":        ActionMoveLeft,
	"west":        ActionMoveLeft,
	"swipe_left":  ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,
	"right":       ActionMoveRight,
	"east":        ActionMoveRight,
	"swipe_right": ActionMoveRight,

	// Restart the day's dungeon
	"r":       ActionRestart,
	"restart": ActionRestart,
	"f5":      ActionRestart,

	// Share results
	"share": ActionShare,
	"c":     ActionShare,

	// Help / legend
	"?":      ActionHelp,
	"help":   ActionHelp,
	"legend": ActionHelp,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// fuzzyWords are the typed commands eligible for typo correction
var fuzzyWords = []string{"up", "down", "left", "right", "north", "south", "east", "west", "restart", "share", "help", "legend", "quit"}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a
// debounced input and returns a high‑level Intent. Typed words that are
// not bound exactly are matched against the command words with a small
// edit distance allowance.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	if word, ok := closestWord(ev.Code, fuzzyWords); ok {
		return Intent{Action: bindings[word]}
	}
	return Intent{Action: ActionNone}
}

// ParseIntent maps a raw code from any device straight to an intent
func ParseIntent(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// IsInstantKey reports whether a single typed key is bound on its own
func IsInstantKey(code string) bool {
	if len(code) != 1 {
		return false
	}
	_, ok := bindings[strings.ToLower(code)]
	return ok
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionRestart:
		return "Restart"
	case ActionShare:
		return "Share"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't change between calls
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
