package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinwren/pocket-arcade/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		want   core.Action
		isQuit bool
	}{
		{"a", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"w", core.ActionJump, false},
		{" ", core.ActionJump, false},
		{"x", core.ActionDash, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, isQuit := km.MapKey(keyMsg(tt.key))
			if got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
			if isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.key, isQuit, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("a"), &frame); quit {
		t.Error("movement key should not quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should record the mapped action")
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("q should request quit")
	}
}
