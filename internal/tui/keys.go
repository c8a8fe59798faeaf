// SPDX-License-Identifier: Unlicense OR MIT

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Advance key.Binding
	Back    key.Binding
	Success key.Binding
	Fail    key.Binding
	Reset   key.Binding
	Disable key.Binding
	Auto    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Advance: key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→/space", "+10%")),
		Back:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "-10%")),
		Success: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Fail:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fail")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Disable: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle disabled")),
		Auto:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto progress")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Success, k.Fail, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.Back, k.Auto},
		{k.Success, k.Fail, k.Reset, k.Disable},
		{k.Help, k.Quit},
	}
}
