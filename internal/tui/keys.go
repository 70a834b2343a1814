package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Step key.Binding
	Auto key.Binding
	Take key.Binding
	Pass key.Binding
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Auto, k.Take, k.Pass, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Auto, k.Take, k.Pass},
		{k.Up, k.Down, k.Quit},
	}
}

func newKeyMap(human bool) keyMap {
	k := keyMap{
		Step: key.NewBinding(key.WithKeys("n", " "), key.WithHelp("n/space", "step")),
		Auto: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto play")),
		Take: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "take")),
		Pass: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "no thanks")),
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	k.Take.SetEnabled(human)
	k.Pass.SetEnabled(human)
	return k
}
