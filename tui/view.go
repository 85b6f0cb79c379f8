package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/stephenmfriend/tally/selection"
	"github.com/stephenmfriend/tally/ui"
)

// Layout constants
const (
	itemHeight   = 4
	footerHeight = 4

	markerWidth      = 3
	nameWidth        = 22
	descriptionWidth = 42
	progressWidth    = 11
	createdWidth     = 19
)

var columnWidths = []int{markerWidth, nameWidth, descriptionWidth, progressWidth, createdWidth}

// colProgress is the column tinted by task progress.
const colProgress = 3

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	colors := ui.NewTableColors(ui.PaletteAt(m.palette))
	footer := m.renderFooter(colors)
	bodyHeight := max(m.height-lipgloss.Height(footer), 1)

	var body string
	switch md := m.mode.(type) {
	case *editMode:
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.renderForm(md.form, colors.Accent))
	case *infoMode:
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.renderInfo(md, colors.Accent))
	default:
		body = m.renderTable(colors, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m *Model) rowHeight() int {
	if m.compactRows {
		return 1
	}
	return itemHeight
}

func (m *Model) rowsPerPage() int {
	avail := m.height - footerHeight - 1
	rh := m.rowHeight()
	if avail < rh {
		return 1
	}
	return avail / rh
}

func (m *Model) visibleRows() selection.View {
	end := min(m.offset+m.rowsPerPage(), m.view.Len())
	if m.offset >= end {
		return nil
	}
	return m.view[m.offset:end]
}

func (m *Model) renderTable(colors ui.TableColors, height int) string {
	var bar string
	if m.view.Len() > m.rowsPerPage() {
		bar = renderScrollbar(height, m.view.Len(), m.selected, colors.Accent)
	}
	tableWidth := m.width - lipgloss.Width(bar)

	frame := lipgloss.NewStyle().
		MaxWidth(tableWidth).
		Height(height).
		MaxHeight(height).
		Background(colors.Buffer)

	if m.view.Len() == 0 {
		msg := "No tasks yet\n\nPress a to create one"
		if m.store.Len() > 0 {
			msg = "All tasks are completed\n\nPress t to show them"
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			ui.EmptyStyle.Render(msg),
			lipgloss.WithWhitespaceBackground(colors.Buffer))
	}

	visible := m.visibleRows()
	rh := m.rowHeight()
	rows := make([][]string, len(visible))
	for i, r := range visible {
		rows[i] = m.rowCells(r, m.offset+i == m.selected, rh)
	}

	headers := []string{"", "Name", "Description", "Progress", "Created"}
	for i := range headers {
		headers[i] = cell(headers[i], columnWidths[i], 1, false)
	}

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				return colors.Header.Padding(0, 1)
			case m.offset+row == m.selected:
				s = colors.Selected
			case (m.offset+row)%2 == 0:
				s = colors.Row
			default:
				s = colors.AltRow
			}
			if col == colProgress && m.offset+row != m.selected && row < len(visible) {
				s = s.Foreground(ui.ProgressStyle(visible[row].Task.Progress).GetForeground())
			}
			return s.Padding(0, 1)
		})

	body := lipgloss.PlaceHorizontal(tableWidth, lipgloss.Left, frame.Render(t.Render()),
		lipgloss.WithWhitespaceBackground(colors.Buffer))
	return lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
}

// renderScrollbar draws a one-column track with the thumb placed by the
// selected row's position in the view.
func renderScrollbar(height, total, pos int, accent lipgloss.Color) string {
	if height <= 0 || total <= 1 {
		return ""
	}
	thumb := pos * (height - 1) / (total - 1)
	lines := make([]string, height)
	for i := range lines {
		if i == thumb {
			lines[i] = lipgloss.NewStyle().Foreground(accent).Render("┃")
			continue
		}
		lines[i] = ui.HelpStyle.Render("│")
	}
	return strings.Join(lines, "\n")
}

// rowCells lays out one task as fixed-size cells.
func (m *Model) rowCells(r selection.Row, selected bool, lines int) []string {
	marker := ""
	if selected {
		marker = "█"
		if lines > 1 {
			marker = "\n█\n█"
		}
	}
	return []string{
		cell(marker, markerWidth, lines, false),
		cell(r.Task.Name, nameWidth, lines, lines > 1),
		cell(r.Task.Description, descriptionWidth, lines, lines > 1),
		cell(r.Task.Progress.Label(), progressWidth, lines, false),
		cell(r.Task.Created, createdWidth, lines, false),
	}
}

// cell fits text into exactly lines rows of width columns, hard-wrapping
// when wrap is set and truncating otherwise.
func cell(text string, width, lines int, wrap bool) string {
	var out []string
	if wrap {
		text = strings.ReplaceAll(text, "\n", " ")
		out = strings.Split(ansi.Hardwrap(text, width, true), "\n")
	} else {
		out = strings.Split(text, "\n")
		for i := range out {
			out[i] = ansi.Truncate(out[i], width, "…")
		}
	}
	if len(out) > lines {
		out = out[:lines]
		last := out[lines-1]
		if ansi.StringWidth(last) >= width {
			out[lines-1] = ansi.Truncate(last, width-1, "") + "…"
		}
	}
	for len(out) < lines {
		out = append(out, "")
	}
	pad := lipgloss.NewStyle().Width(width)
	for i := range out {
		out[i] = pad.Render(out[i])
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderFooter(colors ui.TableColors) string {
	var helpView string
	switch m.mode.(type) {
	case *editMode:
		helpView = m.help.View(m.formKeys)
	case *infoMode:
		helpView = m.help.View(m.infoKeys)
	default:
		helpView = m.help.View(m.browseKeys)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colors.Border.GetForeground()).
		Foreground(colors.Foreground).
		Width(max(m.width-2, 0)).
		Align(lipgloss.Center).
		Render(helpView)

	return lipgloss.JoinVertical(lipgloss.Left, box, m.renderStatus())
}

func (m *Model) renderStatus() string {
	var left string
	switch {
	case m.status != "":
		left = ui.StatusError.Render("Error: " + m.status)
	case m.hideCompleted && m.view.Hidden(m.store.Len()) > 0:
		left = ui.StatusInfo.Render(fmt.Sprintf("hiding %d completed", m.view.Hidden(m.store.Len())))
	}

	right := ui.HelpStyle.Render(fmt.Sprintf("%s  %s",
		m.position(), ui.PaletteAt(m.palette).Name))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left+" "+right, m.width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) position() string {
	if m.view.Len() == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", m.selected+1, m.view.Len())
}

func (m *Model) popupWidth() int {
	w := max(m.width/2, 40)
	return min(w, m.width)
}

func (m *Model) renderForm(f *taskForm, accent lipgloss.Color) string {
	w := m.popupWidth()

	title := "New task"
	if f.editing() {
		title = "Edit task"
	}

	parts := []string{
		ui.TitleStyle.Foreground(accent).Render(title),
		"",
		renderFormField(w, "Name", f.name, f.focus == fieldName, accent),
		renderFormField(w, "Description", f.description, f.focus == fieldDescription, accent),
	}
	if f.invalid {
		parts = append(parts, ui.StatusError.Render("name is required"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(w).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderFormField(width int, label string, in textinput.Model, focused bool, accent lipgloss.Color) string {
	border := ui.White
	if focused {
		border = accent
	}
	count := ui.HelpStyle.Render(fmt.Sprintf("%d/%d", utf8.RuneCountInString(in.Value()), in.CharLimit))
	header := label + " " + count

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(width-6, 10)).
		Render(in.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, box)
}

func (m *Model) renderInfo(md *infoMode, accent lipgloss.Color) string {
	w := m.popupWidth()
	inner := max(w-4, 10)

	title := ui.TitleStyle.
		Foreground(accent).
		Width(inner).
		Align(lipgloss.Center).
		Render("t a l l y")

	const columns = 3
	colWidth := inner / columns
	var gridRows []string
	var row []string
	for i, c := range checkboxes {
		mark := "[ ]"
		if m.checked(c) {
			mark = "[x]"
		}
		s := lipgloss.NewStyle().Width(colWidth)
		if i == md.cursor {
			s = s.Foreground(accent).Bold(true)
		}
		row = append(row, s.Render(mark+" "+c.label()))
		if len(row) == columns || i == len(checkboxes)-1 {
			gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	body := m.infoBody
	if body == "" {
		body = commandsMarkdown(m.browseKeys)
	}
	information := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(inner - 2).
		Render(ui.TitleStyle.Render("Information") + "\n" + body)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, gridRows...),
		"",
		information,
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(w).
		Render(content)
}

// renderInfoBody renders the command reference for the info panel.
func (m *Model) renderInfoBody() {
	body, err := renderMarkdown(commandsMarkdown(m.browseKeys), m.popupWidth()-8)
	if err != nil {
		m.logger.Debug("render info markdown", "err", err)
		return
	}
	m.infoBody = body
}
