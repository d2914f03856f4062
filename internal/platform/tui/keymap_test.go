package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"r", runeKey('r'), core.ActionRestart},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"t", runeKey('t'), core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestTrackerToggleKey(t *testing.T) {
	km := NewKeyMapper()
	if !km.IsTrackerToggle(runeKey('t')) {
		t.Error("t should toggle the tracker")
	}
	if km.IsTrackerToggle(runeKey('r')) {
		t.Error("r should not toggle the tracker")
	}
}

func TestIsMovement(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if !IsMovement(a) {
			t.Errorf("%v should be a movement", a)
		}
	}
	for _, a := range []core.Action{core.ActionStart, core.ActionPause, core.ActionRestart, core.ActionQuit} {
		if IsMovement(a) {
			t.Errorf("%v should not be a movement", a)
		}
	}
}

func TestHoldTicks(t *testing.T) {
	tests := []struct {
		rate int
		want int
	}{
		{60, 7},
		{30, 3},
		{0, 7},
		{5, 1},
	}
	for _, tc := range tests {
		if got := holdTicks(tc.rate); got != tc.want {
			t.Errorf("holdTicks(%d) = %d, expected %d", tc.rate, got, tc.want)
		}
	}
}
