package cli

import "github.com/charmbracelet/bubbles/key"

// editorKeyMap lists the editor bindings. It implements help.KeyMap.
type editorKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Edit       key.Binding
	Add        key.Binding
	Delete     key.Binding
	BudgetUp   key.Binding
	BudgetDown key.Binding
	Preset     key.Binding
	Calculate  key.Binding
	About      key.Binding
	Quit       key.Binding
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle done")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		BudgetUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "budget +1h")),
		BudgetDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "budget -1h")),
		Preset:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next preset")),
		Calculate:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		About:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "about")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Calculate, k.Toggle, k.Edit, k.Add, k.Delete, k.BudgetUp, k.BudgetDown, k.Preset, k.About, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Edit, k.Add, k.Delete},
		{k.BudgetUp, k.BudgetDown, k.Preset, k.Calculate, k.About, k.Quit},
	}
}
