package tui

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stephenmfriend/tally/task"
)

type formField int

const (
	fieldName formField = iota
	fieldDescription
)

// taskForm is the create/edit form. It only exists while the form is open.
type taskForm struct {
	name        textinput.Model
	description textinput.Model
	focus       formField

	// target is the ID of the task being edited, empty when creating.
	target string

	// invalid is set after a submit with a blank name.
	invalid bool

	// loaded holds the edited task's text, written back verbatim for any
	// field the user does not touch.
	loaded  [2]string
	touched [2]bool
}

func newInput(limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = limit
	return ti
}

// newTaskForm returns an empty form for a new task.
func newTaskForm() (*taskForm, tea.Cmd) {
	f := &taskForm{
		name:        newInput(task.MaxNameLen),
		description: newInput(task.MaxDescriptionLen),
	}
	return f, f.setFocus(fieldName)
}

// editTaskForm returns a form filled from t.
func editTaskForm(t task.Task) (*taskForm, tea.Cmd) {
	f, cmd := newTaskForm()
	f.target = t.ID
	f.loaded = [2]string{t.Name, t.Description}
	fill(&f.name, t.Name)
	fill(&f.description, t.Description)
	return f, cmd
}

// fill loads text into in. A value longer than the cap raises the cap to
// its length so nothing is cut; it can shrink but not grow.
func fill(in *textinput.Model, text string) {
	in.CharLimit = max(in.CharLimit, utf8.RuneCountInString(text))
	in.SetValue(text)
	in.CursorEnd()
}

func (f *taskForm) editing() bool { return f.target != "" }

func (f *taskForm) input() *textinput.Model {
	if f.focus == fieldDescription {
		return &f.description
	}
	return &f.name
}

func (f *taskForm) setFocus(field formField) tea.Cmd {
	f.focus = field
	if field == fieldDescription {
		f.name.Blur()
		return f.description.Focus()
	}
	f.description.Blur()
	return f.name.Focus()
}

func (f *taskForm) swapFocus() tea.Cmd {
	if f.focus == fieldName {
		return f.setFocus(fieldDescription)
	}
	return f.setFocus(fieldName)
}

// typeRunes appends printable input to the focused field. The input's
// CharLimit drops anything past the field cap.
func (f *taskForm) typeRunes(msg tea.KeyMsg) tea.Cmd {
	in := f.input()
	in.CursorEnd()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	f.touched[f.focus] = true
	f.invalid = false
	return cmd
}

// backspace removes the last character of the focused field.
func (f *taskForm) backspace() {
	in := f.input()
	runes := []rune(in.Value())
	if len(runes) == 0 {
		return
	}
	in.SetValue(string(runes[:len(runes)-1]))
	in.CursorEnd()
	f.touched[f.focus] = true
}

// forward hands non-key messages, such as cursor blinks, to the focused field.
func (f *taskForm) forward(msg tea.Msg) tea.Cmd {
	in := f.input()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (f *taskForm) values() (name, description string) {
	return f.value(fieldName), f.value(fieldDescription)
}

func (f *taskForm) value(field formField) string {
	if f.editing() && !f.touched[field] {
		return f.loaded[field]
	}
	if field == fieldDescription {
		return f.description.Value()
	}
	return f.name.Value()
}
