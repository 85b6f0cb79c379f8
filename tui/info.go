package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
)

// checkbox is one toggle on the info panel.
type checkbox int

const (
	checkHideCompleted checkbox = iota
	checkLockColor
	checkCompactRows
)

var checkboxes = []checkbox{checkHideCompleted, checkLockColor, checkCompactRows}

func (c checkbox) label() string {
	switch c {
	case checkLockColor:
		return "Lock Color"
	case checkCompactRows:
		return "Compact Rows"
	default:
		return "Hide Completed"
	}
}

// moveCursor steps through the checkboxes with wraparound.
func moveCursor(cur, delta int) int {
	n := len(checkboxes)
	return ((cur+delta)%n + n) % n
}

// commandsMarkdown lists the browse bindings for the info panel.
func commandsMarkdown(k browseKeys) string {
	var b strings.Builder
	b.WriteString("**Commands**\n\n")
	for _, group := range k.FullHelp() {
		var parts []string
		for _, binding := range group {
			parts = append(parts, helpEntry(binding))
		}
		b.WriteString("- " + strings.Join(parts, " · ") + "\n")
	}
	return b.String()
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("`%s` %s", h.Key, h.Desc)
}

func renderMarkdown(input string, width int) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStandardStyle("dark"),
	)
	if err != nil {
		return "", err
	}
	out, err := renderer.Render(input)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
