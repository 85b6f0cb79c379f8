// Package task defines the to-do entries tally keeps in its store.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field limits, counted in characters.
const (
	MaxNameLen        = 50
	MaxDescriptionLen = 255
)

// CreatedLayout is the format of Task.Created, in local time.
const CreatedLayout = "2006-01-02 15:04:05"

// ErrBlankName is returned when a task name is empty after trimming.
var ErrBlankName = errors.New("task name is required")

// Progress is the lifecycle state of a task.
type Progress int

const (
	Waiting Progress = iota
	InProgress
	Done
)

// Next returns the following state in the InProgress -> Waiting -> Done cycle.
func (p Progress) Next() Progress {
	switch p {
	case InProgress:
		return Waiting
	case Waiting:
		return Done
	default:
		return InProgress
	}
}

// String returns the tag used in the data file.
func (p Progress) String() string {
	switch p {
	case InProgress:
		return "InProgress"
	case Done:
		return "Done"
	default:
		return "Waiting"
	}
}

// Label returns the human readable form shown in the table.
func (p Progress) Label() string {
	if p == InProgress {
		return "In Progress"
	}
	return p.String()
}

func (p Progress) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Progress) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Waiting":
		*p = Waiting
	case "InProgress":
		*p = InProgress
	case "Done":
		*p = Done
	default:
		return fmt.Errorf("unknown progress %q", text)
	}
	return nil
}

// Task is a single to-do entry.
type Task struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Progress    Progress `json:"progress"`
	Created     string   `json:"created"`
}

// New creates an in-progress task stamped with now.
func New(name, description string, now time.Time) Task {
	return Task{
		ID:          NewID(),
		Name:        name,
		Description: description,
		Progress:    InProgress,
		Created:     now.Local().Format(CreatedLayout),
	}
}

// NewID returns a fresh task identifier.
func NewID() string {
	return uuid.NewString()
}

// Edited returns a copy with name, description and creation time replaced.
// ID and progress carry over.
func (t Task) Edited(name, description string, now time.Time) Task {
	t.Name = name
	t.Description = description
	t.Created = now.Local().Format(CreatedLayout)
	return t
}

// Equal reports whether both tasks have the same name, description,
// progress and creation time. IDs are not compared.
func (t Task) Equal(o Task) bool {
	return t.Name == o.Name &&
		t.Description == o.Description &&
		t.Progress == o.Progress &&
		t.Created == o.Created
}

// ValidateName rejects names that are blank once trimmed.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	return nil
}
