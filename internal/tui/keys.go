package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/trailviz/internal/control"
)

type binding struct {
	key.Binding
	action control.Key
	// Terminals report no key-up events, so a held binding counts as down
	// for the one frame that follows each repeat.
	held bool
}

func bind(action control.Key, held bool, help string, keys ...string) binding {
	label := keys[0]
	if label == " " {
		label = "space"
	}
	return binding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, help)),
		action:  action,
		held:    held,
	}
}

var helpKey = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))

var keyBindings = keyMap{
	bind(control.KeyPanUp, true, "pan", "up", "w"),
	bind(control.KeyPanDown, true, "pan", "down", "s"),
	bind(control.KeyPanLeft, true, "pan", "left", "a"),
	bind(control.KeyPanRight, true, "pan", "right", "d"),
	bind(control.KeyResetView, false, "reset view", "r"),
	bind(control.KeyAxes, false, "axes", "1"),
	bind(control.KeyGrid, false, "grid", "2"),
	bind(control.KeyDepthSort, false, "depth sort", "3"),
	bind(control.KeyPointBigger, false, "bigger", "=", "+"),
	bind(control.KeyPointSmaller, false, "smaller", "-"),
	bind(control.KeyTrailLonger, false, "longer", "]"),
	bind(control.KeyTrailShorter, false, "shorter", "["),
	bind(control.KeyClearTrail, false, "clear", "c"),
	bind(control.KeyPause, false, "pause", " "),
	bind(control.KeyPalette, false, "palette", "t"),
	bind(control.KeyHUD, false, "status", "h"),
	bind(control.KeyScreenshot, false, "snapshot", "p"),
	bind(control.KeyQuit, false, "quit", "q", "esc", "ctrl+c"),
}

// keyMap implements help.KeyMap.
type keyMap []binding

func (k keyMap) ShortHelp() []key.Binding {
	out := []key.Binding{helpKey}
	for _, b := range k {
		out = append(out, b.Binding)
	}
	return out
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func keyInput(in control.Input, msg tea.KeyMsg) control.Input {
	for _, b := range keyBindings {
		if !key.Matches(msg, b.Binding) {
			continue
		}
		if b.held {
			in.Held = in.Held.With(b.action)
		} else {
			in.Pressed = in.Pressed.With(b.action)
		}
	}
	return in
}
