package ui

import "github.com/gdamore/tcell/v2"

// Action is a player request decoded from a key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionSelect
	ActionBack
	ActionEndTurn
	ActionItems
	ActionEquip
	ActionQuit
)

// keyToAction maps a tcell key event to an action. Digits are handled
// separately as direct picks.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyLeft:
		return ActionUp
	case tcell.KeyDown, tcell.KeyRight, tcell.KeyTab:
		return ActionDown
	case tcell.KeyEnter:
		return ActionSelect
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionBack
	case tcell.KeyCtrlC:
		return ActionQuit
	}
	switch ev.Rune() {
	case 'k', 'K', 'h', 'H':
		return ActionUp
	case 'j', 'J', 'l', 'L':
		return ActionDown
	case ' ':
		return ActionSelect
	case 'e', 'E':
		return ActionEndTurn
	case 'i', 'I':
		return ActionItems
	case 'g', 'G':
		return ActionEquip
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// digit returns the zero-based index for keys 1-9, or -1.
func digit(ev *tcell.EventKey) int {
	r := ev.Rune()
	if ev.Key() == tcell.KeyRune && r >= '1' && r <= '9' {
		return int(r - '1')
	}
	return -1
}
