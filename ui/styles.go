// Package ui holds the colours and styles shared by tally's terminal output.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/stephenmfriend/tally/task"
)

// Color palette
var (
	Green     = lipgloss.Color("#10B981")
	Amber     = lipgloss.Color("#F59E0B")
	Red       = lipgloss.Color("#EF4444")
	Gray      = lipgloss.Color("#6B7280")
	White     = lipgloss.Color("#F9FAFB")
	Slate200  = lipgloss.Color("#E2E8F0")
	Slate900  = lipgloss.Color("#0F172A")
	Slate950  = lipgloss.Color("#020617")
	LightGray = lipgloss.Color("#9CA3AF")
)

// Palette is one accent colour set the table can be drawn in.
type Palette struct {
	Name   string
	Dark   lipgloss.Color // shade 900, header background
	Accent lipgloss.Color // shade 400, selection and borders
}

// Palettes in cycling order. Names match config.Palettes.
var Palettes = []Palette{
	{Name: "blue", Dark: lipgloss.Color("#1E3A8A"), Accent: lipgloss.Color("#60A5FA")},
	{Name: "emerald", Dark: lipgloss.Color("#064E3B"), Accent: lipgloss.Color("#34D399")},
	{Name: "indigo", Dark: lipgloss.Color("#312E81"), Accent: lipgloss.Color("#818CF8")},
	{Name: "red", Dark: lipgloss.Color("#7F1D1D"), Accent: lipgloss.Color("#F87171")},
}

// PaletteAt returns the palette at i, wrapping in both directions.
func PaletteAt(i int) Palette {
	n := len(Palettes)
	return Palettes[((i%n)+n)%n]
}

// TableColors are the styles derived from a palette.
type TableColors struct {
	Header     lipgloss.Style
	Row        lipgloss.Style
	AltRow     lipgloss.Style
	Selected   lipgloss.Style
	Border     lipgloss.Style
	Accent     lipgloss.Color
	Buffer     lipgloss.Color
	Foreground lipgloss.Color
}

// NewTableColors builds the table styles for p.
func NewTableColors(p Palette) TableColors {
	return TableColors{
		Header:     lipgloss.NewStyle().Foreground(Slate200).Background(p.Dark).Bold(true),
		Row:        lipgloss.NewStyle().Foreground(Slate200).Background(Slate950),
		AltRow:     lipgloss.NewStyle().Foreground(Slate200).Background(Slate900),
		Selected:   lipgloss.NewStyle().Foreground(p.Accent).Reverse(true),
		Border:     lipgloss.NewStyle().Foreground(p.Accent),
		Accent:     p.Accent,
		Buffer:     Slate950,
		Foreground: Slate200,
	}
}

// ProgressStyle colours a progress label.
func ProgressStyle(p task.Progress) lipgloss.Style {
	switch p {
	case task.InProgress:
		return lipgloss.NewStyle().Foreground(Amber)
	case task.Done:
		return lipgloss.NewStyle().Foreground(Green)
	default:
		return lipgloss.NewStyle().Foreground(Red)
	}
}

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(Gray)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	// Status styles
	StatusError = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	StatusInfo = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true)

	// Empty state
	EmptyStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true).
			Align(lipgloss.Center)
)
