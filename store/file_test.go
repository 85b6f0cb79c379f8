package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephenmfriend/tally/task"
)

func TestFile_RoundTrip(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "data.json"))
	want := []task.Task{
		{ID: "1", Name: "A", Description: "first", Progress: task.Done, Created: "2024-01-02 03:04:05"},
		{ID: "2", Name: "B", Description: "", Progress: task.Waiting, Created: "2024-01-03 00:00:00"},
		{ID: "3", Name: "C", Description: "third", Progress: task.InProgress, Created: "2024-01-04 12:00:00"},
	}

	require.NoError(t, f.Save(want))
	got, err := f.Load()
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "task %d: want %+v, got %+v", i, want[i], got[i])
		assert.Equal(t, want[i].ID, got[i].ID)
	}
}

func TestFile_SaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	f := NewFile(path)
	require.NoError(t, f.Save([]task.Task{
		{ID: "abc", Name: "A", Description: "d", Progress: task.InProgress, Created: "2024-01-02 03:04:05"},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"progress": "InProgress"`)
	assert.Contains(t, string(data), `"created": "2024-01-02 03:04:05"`)
	assert.Contains(t, string(data), `"name": "A"`)
}

func TestFile_SaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, NewFile(path).Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFile_LoadMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nope.json"))
	got, err := f.Load()

	assert.Empty(t, got)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, LoadMissing, le.Kind)
}

func TestFile_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	got, err := NewFile(path).Load()
	assert.Empty(t, got)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, LoadMalformed, le.Kind)
}

func TestFile_LoadUnknownProgressIsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	content := `[{"name":"a","description":"","progress":"Blocked","created":"2024-01-01 00:00:00"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := NewFile(path).Load()
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, LoadMalformed, le.Kind)
}

func TestFile_LoadAssignsMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	content := `[
  {"name":"a","description":"x","progress":"Waiting","created":"2024-01-01 00:00:00"},
  {"name":"a","description":"x","progress":"Waiting","created":"2024-01-01 00:00:00"}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewFile(path).Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.NotEmpty(t, got[0].ID)
	assert.NotEmpty(t, got[1].ID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.True(t, got[0].Equal(got[1]))
}

func TestFile_SaveIntoMissingDirFails(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "missing", "data.json"))
	err := f.Save([]task.Task{{Name: "a"}})

	var se *SaveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, f.Path, se.Path)
}

func TestNewFile_Default(t *testing.T) {
	assert.Equal(t, DefaultPath, NewFile("").Path)
}
