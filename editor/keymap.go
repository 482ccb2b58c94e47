package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Sprint key.Binding
	Stop   key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Sprint: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "new sprint")),
		Stop:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "stop sprint")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sprint, k.Stop, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
