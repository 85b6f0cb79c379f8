package tui

import "github.com/stephenmfriend/tally/ui"

// mode is the active interaction state. Exactly one is live at a time, and
// each variant carries only the state it needs.
type mode interface {
	kind() ui.Mode
}

type browseMode struct{}

func (browseMode) kind() ui.Mode { return ui.ModeBrowse }

type editMode struct {
	form *taskForm
}

func (*editMode) kind() ui.Mode { return ui.ModeEditing }

type infoMode struct {
	cursor int
}

func (*infoMode) kind() ui.Mode { return ui.ModeInfo }
