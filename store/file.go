package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stephenmfriend/tally/task"
)

// DefaultPath is the task file used when no other path is configured.
const DefaultPath = "data.json"

// Persister loads and saves the full task list.
type Persister interface {
	Load() ([]task.Task, error)
	Save(tasks []task.Task) error
}

// File persists tasks as a JSON array at Path.
type File struct {
	Path string
}

// NewFile returns a File for path, falling back to DefaultPath.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{Path: path}
}

// Load reads the task list. A missing, unreadable or malformed file yields
// an empty list together with a *LoadError. Tasks without an ID get one.
func (f *File) Load() ([]task.Task, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		kind := LoadUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			kind = LoadMissing
		}
		return []task.Task{}, &LoadError{Path: f.Path, Kind: kind, Err: err}
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return []task.Task{}, &LoadError{Path: f.Path, Kind: LoadMalformed, Err: err}
	}
	if tasks == nil {
		tasks = []task.Task{}
	}

	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = task.NewID()
		}
	}
	return tasks, nil
}

// Save writes the list to a temporary file next to Path and renames it
// into place.
func (f *File) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &SaveError{Path: f.Path, Err: fmt.Errorf("encode: %w", err)}
	}

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return &SaveError{Path: f.Path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &SaveError{Path: f.Path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &SaveError{Path: f.Path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return &SaveError{Path: f.Path, Err: err}
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		return &SaveError{Path: f.Path, Err: err}
	}
	return nil
}
