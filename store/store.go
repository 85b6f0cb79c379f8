// Package store owns the ordered task list and writes it through a
// Persister after every change.
package store

import (
	"errors"

	"github.com/stephenmfriend/tally/task"
)

// Store is the canonical, ordered list of tasks. Insertion order is
// display order.
type Store struct {
	tasks []task.Task
	p     Persister
}

// New creates a store over tasks, persisting through p.
func New(p Persister, tasks []task.Task) *Store {
	return &Store{
		tasks: append([]task.Task(nil), tasks...),
		p:     p,
	}
}

// Open loads tasks from p. The returned store is always usable; a non-nil
// error is a *LoadError describing why the store started empty.
func Open(p Persister) (*Store, error) {
	tasks, err := p.Load()
	if err != nil {
		return New(p, nil), err
	}
	return New(p, tasks), nil
}

// Tasks returns a copy of the current list.
func (s *Store) Tasks() []task.Task {
	return append([]task.Task(nil), s.tasks...)
}

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// At returns the task at store index i.
func (s *Store) At(i int) (task.Task, bool) {
	if i < 0 || i >= len(s.tasks) {
		return task.Task{}, false
	}
	return s.tasks[i], true
}

// IndexOf returns the store index of the task with the given ID.
func (s *Store) IndexOf(id string) (int, bool) {
	for i, t := range s.tasks {
		if t.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Append adds t to the end of the list.
func (s *Store) Append(t task.Task) error {
	s.tasks = append(s.tasks, t)
	return s.save()
}

// ReplaceAt overwrites the task at index i.
func (s *Store) ReplaceAt(i int, t task.Task) error {
	if i < 0 || i >= len(s.tasks) {
		return ErrIndexOutOfRange
	}
	s.tasks[i] = t
	return s.save()
}

// RemoveAt deletes the task at index i.
func (s *Store) RemoveAt(i int) error {
	if i < 0 || i >= len(s.tasks) {
		return ErrIndexOutOfRange
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return s.save()
}

// CycleProgressAt advances the progress of the task at index i.
func (s *Store) CycleProgressAt(i int) error {
	if i < 0 || i >= len(s.tasks) {
		return ErrIndexOutOfRange
	}
	s.tasks[i].Progress = s.tasks[i].Progress.Next()
	return s.save()
}

// save writes the whole list. Failures are returned as *SaveError and leave
// memory untouched.
func (s *Store) save() error {
	if s.p == nil {
		return nil
	}
	if err := s.p.Save(s.Tasks()); err != nil {
		var se *SaveError
		if errors.As(err, &se) {
			return se
		}
		return &SaveError{Err: err}
	}
	return nil
}
