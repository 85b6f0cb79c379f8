// Package tui provides the interactive terminal user interface for tally.
package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/stephenmfriend/tally/config"
	"github.com/stephenmfriend/tally/selection"
	"github.com/stephenmfriend/tally/store"
	"github.com/stephenmfriend/tally/task"
	"github.com/stephenmfriend/tally/ui"
)

// Options configures a new Model.
type Options struct {
	Store  *store.Store
	Config config.Config
	Logger *log.Logger

	// Now stamps new and edited tasks. Defaults to time.Now.
	Now func() time.Time
}

// Model is the TUI state: the task store, the filtered view over it, the
// highlighted row and the active mode.
type Model struct {
	store  *store.Store
	logger *log.Logger
	now    func() time.Time

	view     selection.View
	selected int
	offset   int

	hideCompleted bool
	lockColor     bool
	compactRows   bool
	palette       int

	mode mode

	browseKeys browseKeys
	formKeys   formKeys
	infoKeys   infoKeys
	help       help.Model

	width    int
	height   int
	infoBody string

	// status holds the last save error shown in the footer.
	status string

	// err is set when the program must exit with a failure.
	err error
}

// NewModel creates a new TUI model
func NewModel(opts Options) *Model {
	if opts.Store == nil {
		opts.Store = store.New(nil, nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	h := help.New()
	h.Styles.ShortKey = ui.HelpKeyStyle
	h.Styles.ShortDesc = ui.HelpStyle
	h.Styles.ShortSeparator = ui.HelpStyle

	m := &Model{
		store:         opts.Store,
		logger:        opts.Logger,
		now:           opts.Now,
		hideCompleted: opts.Config.HideCompleted,
		lockColor:     opts.Config.LockColor,
		compactRows:   opts.Config.CompactRows,
		palette:       opts.Config.PaletteIndex(),
		mode:          browseMode{},
		browseKeys:    newBrowseKeys(),
		formKeys:      newFormKeys(),
		infoKeys:      newInfoKeys(),
		help:          h,
	}
	m.refresh()
	return m
}

// Init starts the TUI
func (m *Model) Init() tea.Cmd {
	return nil
}

// Mode reports the active interaction mode.
func (m *Model) Mode() ui.Mode { return m.mode.kind() }

// Selected returns the highlighted row in the current view.
func (m *Model) Selected() int { return m.selected }

// Rows returns the current filtered view.
func (m *Model) Rows() selection.View { return m.view }

// Status returns the message shown on the status line.
func (m *Model) Status() string { return m.status }

// Err returns the error that ended the program, if any.
func (m *Model) Err() error { return m.err }

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - 4
		m.infoBody = ""
		if _, ok := m.mode.(*infoMode); ok {
			m.renderInfoBody()
		}

	case tea.KeyMsg:
		switch md := m.mode.(type) {
		case *editMode:
			cmd = m.handleFormKey(md.form, msg)
		case *infoMode:
			cmd = m.handleInfoKey(md, msg)
		default:
			cmd = m.handleBrowseKey(msg)
		}

	default:
		if md, ok := m.mode.(*editMode); ok {
			cmd = md.form.forward(msg)
		}
	}

	m.syncScroll()
	return m, cmd
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	k := m.browseKeys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit

	case key.Matches(msg, k.Down):
		m.selected = selection.Next(m.view.Len(), m.selected)

	case key.Matches(msg, k.Up):
		m.selected = selection.Previous(m.view.Len(), m.selected)

	case key.Matches(msg, k.NextColor):
		if !m.lockColor {
			m.palette = (m.palette + 1) % len(ui.Palettes)
		}

	case key.Matches(msg, k.PrevColor):
		if !m.lockColor {
			m.palette = (m.palette + len(ui.Palettes) - 1) % len(ui.Palettes)
		}

	case key.Matches(msg, k.Delete):
		m.deleteSelected()

	case key.Matches(msg, k.Create):
		form, cmd := newTaskForm()
		m.mode = &editMode{form: form}
		return cmd

	case key.Matches(msg, k.Edit):
		return m.editSelected()

	case key.Matches(msg, k.CycleProgress):
		m.cycleSelected()

	case key.Matches(msg, k.HideCompleted):
		m.setHideCompleted(!m.hideCompleted)

	case key.Matches(msg, k.Info):
		m.mode = &infoMode{}
		m.renderInfoBody()
	}
	return nil
}

func (m *Model) handleFormKey(f *taskForm, msg tea.KeyMsg) tea.Cmd {
	k := m.formKeys
	switch {
	case key.Matches(msg, k.Cancel):
		m.mode = browseMode{}

	case key.Matches(msg, k.Enter):
		if f.focus == fieldName {
			return f.setFocus(fieldDescription)
		}
		return m.submit(f)

	case key.Matches(msg, k.SwapField):
		return f.swapFocus()

	case key.Matches(msg, k.Backspace):
		f.backspace()

	case msg.Type == tea.KeyRunes && !msg.Alt, msg.Type == tea.KeySpace:
		return f.typeRunes(msg)
	}
	return nil
}

func (m *Model) handleInfoKey(md *infoMode, msg tea.KeyMsg) tea.Cmd {
	k := m.infoKeys
	switch {
	case key.Matches(msg, k.Close):
		m.mode = browseMode{}
	case key.Matches(msg, k.Prev):
		md.cursor = moveCursor(md.cursor, -1)
	case key.Matches(msg, k.Next):
		md.cursor = moveCursor(md.cursor, 1)
	case key.Matches(msg, k.Toggle):
		m.toggle(checkboxes[md.cursor])
	}
	return nil
}

// submit saves the form. A blank name keeps the form open.
func (m *Model) submit(f *taskForm) tea.Cmd {
	name, description := f.values()
	if err := task.ValidateName(name); err != nil {
		f.invalid = true
		return nil
	}

	firstTask := m.store.Len() == 0
	var err error
	if f.editing() {
		i, ok := m.store.IndexOf(f.target)
		if !ok {
			m.logger.Warn("edited task no longer exists", "id", f.target)
			m.mode = browseMode{}
			return nil
		}
		orig, _ := m.store.At(i)
		err = m.store.ReplaceAt(i, orig.Edited(name, description, m.now()))
	} else {
		err = m.store.Append(task.New(name, description, m.now()))
	}

	m.mode = browseMode{}
	m.refresh()

	if err != nil && !f.editing() && firstTask {
		m.err = fmt.Errorf("saving first task: %w", err)
		m.logger.Error("cannot save task file", "err", err)
		return tea.Quit
	}
	m.saved(err)
	return nil
}

func (m *Model) editSelected() tea.Cmd {
	id, ok := m.view.IDAt(m.selected)
	if !ok {
		return nil
	}
	i, ok := m.store.IndexOf(id)
	if !ok {
		return nil
	}
	t, _ := m.store.At(i)
	form, cmd := editTaskForm(t)
	m.mode = &editMode{form: form}
	return cmd
}

func (m *Model) deleteSelected() {
	i, ok := m.view.StoreIndex(m.selected)
	if !ok {
		return
	}
	err := m.store.RemoveAt(i)
	m.refresh()
	m.saved(err)
}

func (m *Model) cycleSelected() {
	i, ok := m.view.StoreIndex(m.selected)
	if !ok {
		return
	}
	err := m.store.CycleProgressAt(i)
	m.refresh()
	m.saved(err)
}

func (m *Model) setHideCompleted(hide bool) {
	m.hideCompleted = hide
	m.refresh()
}

func (m *Model) checked(c checkbox) bool {
	switch c {
	case checkLockColor:
		return m.lockColor
	case checkCompactRows:
		return m.compactRows
	default:
		return m.hideCompleted
	}
}

func (m *Model) toggle(c checkbox) {
	switch c {
	case checkLockColor:
		m.lockColor = !m.lockColor
	case checkCompactRows:
		m.compactRows = !m.compactRows
	default:
		m.setHideCompleted(!m.hideCompleted)
	}
}

// refresh recomputes the view from the store and clamps the selection.
func (m *Model) refresh() {
	m.view = selection.Compute(m.store.Tasks(), m.hideCompleted)
	m.selected = selection.Clamp(m.view.Len(), m.selected)
}

// saved records the outcome of a store write. Failures are logged and shown
// until the next successful write.
func (m *Model) saved(err error) {
	if err == nil {
		m.status = ""
		return
	}
	m.logger.Error("save failed", "err", err)
	m.status = err.Error()
}

// syncScroll keeps the selected row inside the visible window.
func (m *Model) syncScroll() {
	per := m.rowsPerPage()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+per {
		m.offset = m.selected - per + 1
	}
	if maxOffset := m.view.Len() - per; m.offset > maxOffset {
		m.offset = max(maxOffset, 0)
	}
}
