package store

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a store index does not name a task.
var ErrIndexOutOfRange = errors.New("task index out of range")

// LoadKind classifies why a task file could not be loaded.
type LoadKind int

const (
	LoadMissing LoadKind = iota
	LoadUnreadable
	LoadMalformed
)

func (k LoadKind) String() string {
	switch k {
	case LoadUnreadable:
		return "unreadable"
	case LoadMalformed:
		return "malformed"
	default:
		return "missing"
	}
}

// LoadError reports a task file that could not be loaded. Callers recover
// by starting with an empty list.
type LoadError struct {
	Path string
	Kind LoadKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failed write. The in-memory store keeps the change
// that triggered it.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("save tasks: %v", e.Err)
	}
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
