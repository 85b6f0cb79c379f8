// Package selection derives the visible rows from the task store and keeps
// the highlighted row inside them.
package selection

import "github.com/stephenmfriend/tally/task"

// Row is a visible task together with its position in the store.
type Row struct {
	Index int
	Task  task.Task
}

// View is the filtered, display-ordered list of rows.
type View []Row

// Compute filters tasks, dropping Done tasks when hideCompleted is set.
// Store order is preserved.
func Compute(tasks []task.Task, hideCompleted bool) View {
	view := make(View, 0, len(tasks))
	for i, t := range tasks {
		if hideCompleted && t.Progress == task.Done {
			continue
		}
		view = append(view, Row{Index: i, Task: t})
	}
	return view
}

// Len returns the number of visible rows.
func (v View) Len() int { return len(v) }

// Row returns the row at viewIndex.
func (v View) Row(viewIndex int) (Row, bool) {
	if viewIndex < 0 || viewIndex >= len(v) {
		return Row{}, false
	}
	return v[viewIndex], true
}

// StoreIndex maps a view row to its index in the store.
func (v View) StoreIndex(viewIndex int) (int, bool) {
	r, ok := v.Row(viewIndex)
	if !ok {
		return -1, false
	}
	return r.Index, true
}

// IDAt returns the ID of the task shown at viewIndex.
func (v View) IDAt(viewIndex int) (string, bool) {
	r, ok := v.Row(viewIndex)
	if !ok {
		return "", false
	}
	return r.Task.ID, true
}

// Hidden reports how many of total tasks the view leaves out.
func (v View) Hidden(total int) int {
	return total - len(v)
}
