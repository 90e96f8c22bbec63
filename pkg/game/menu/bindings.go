// Package menu builds the controls listing shown by the help command.
package menu

import (
	"fmt"
	"strings"

	engineinput "dungeondaily/pkg/engine/input"
)

// BindingItem is one player action and the codes bound to it
type BindingItem struct {
	Action engineinput.Action
	Codes  []string
}

// Label returns the display label for this binding, e.g. "Restart: f5, r, restart"
func (b BindingItem) Label() string {
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("ACTION{%s}: %s", engineinput.ActionName(b.Action), codeText)
}

// menuActions is the order actions are listed in
var menuActions = []engineinput.Action{
	engineinput.ActionMoveUp,
	engineinput.ActionMoveDown,
	engineinput.ActionMoveLeft,
	engineinput.ActionMoveRight,
	engineinput.ActionRestart,
	engineinput.ActionShare,
	engineinput.ActionHelp,
	engineinput.ActionQuit,
}

// BindingItems returns the bindings for every player action in menu order
func BindingItems() []BindingItem {
	byAction := engineinput.GetBindingsByAction()

	items := make([]BindingItem, len(menuActions))
	for i, act := range menuActions {
		items[i] = BindingItem{Action: act, Codes: byAction[act]}
	}
	return items
}

// HelpText returns one labelled line per action
func HelpText() string {
	items := BindingItems()
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = item.Label()
	}
	return strings.Join(lines, "\n")
}
