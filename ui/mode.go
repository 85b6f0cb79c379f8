package ui

// Mode names the interaction state the TUI is in.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeEditing
	ModeInfo
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeInfo:
		return "info"
	default:
		return "browse"
	}
}
