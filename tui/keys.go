package tui

import "github.com/charmbracelet/bubbles/key"

// browseKeys are active while the table has focus.
type browseKeys struct {
	Quit          key.Binding
	Down          key.Binding
	Up            key.Binding
	NextColor     key.Binding
	PrevColor     key.Binding
	Delete        key.Binding
	Create        key.Binding
	Edit          key.Binding
	CycleProgress key.Binding
	HideCompleted key.Binding
	Info          key.Binding
}

func newBrowseKeys() browseKeys {
	return browseKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "move down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "move up"),
		),
		NextColor: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next color"),
		),
		PrevColor: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous color"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Create: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "create"),
		),
		Edit: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "edit"),
		),
		CycleProgress: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next progress"),
		),
		HideCompleted: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "hide completed"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info"),
		),
	}
}

// ShortHelp is shown in the footer.
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Info, k.Create, k.Edit, k.Delete, k.CycleProgress, k.Quit}
}

// FullHelp lists every browse binding, grouped by purpose.
func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Info, k.Quit},
		{k.Create, k.Edit, k.Delete},
		{k.CycleProgress, k.HideCompleted},
		{k.Up, k.Down, k.NextColor, k.PrevColor},
	}
}

// formKeys drive the create/edit form.
type formKeys struct {
	Cancel    key.Binding
	Enter     key.Binding
	SwapField key.Binding
	Backspace key.Binding
}

func newFormKeys() formKeys {
	return formKeys{
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next/save"),
		),
		SwapField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch field"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete char"),
		),
	}
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.SwapField, k.Enter, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// infoKeys drive the settings panel.
type infoKeys struct {
	Prev   key.Binding
	Next   key.Binding
	Toggle key.Binding
	Close  key.Binding
}

func newInfoKeys() infoKeys {
	return infoKeys{
		Prev: key.NewBinding(
			key.WithKeys("up", "left"),
			key.WithHelp("↑/←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "right"),
			key.WithHelp("↓/→", "next"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "i"),
			key.WithHelp("esc/i", "close"),
		),
	}
}

func (k infoKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Close}
}

func (k infoKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
