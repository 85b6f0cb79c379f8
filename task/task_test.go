package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressNext(t *testing.T) {
	assert.Equal(t, Waiting, InProgress.Next())
	assert.Equal(t, Done, Waiting.Next())
	assert.Equal(t, InProgress, Done.Next())
}

func TestProgressNext_CyclesInThree(t *testing.T) {
	for _, p := range []Progress{Waiting, InProgress, Done} {
		assert.Equal(t, p, p.Next().Next().Next(), "start %s", p)
		assert.NotEqual(t, p, p.Next())
		assert.NotEqual(t, p, p.Next().Next())
	}
}

func TestProgressZeroValueIsWaiting(t *testing.T) {
	var p Progress
	assert.Equal(t, Waiting, p)
}

func TestProgressLabel(t *testing.T) {
	assert.Equal(t, "Waiting", Waiting.Label())
	assert.Equal(t, "In Progress", InProgress.Label())
	assert.Equal(t, "Done", Done.Label())
}

func TestProgressJSON(t *testing.T) {
	tests := []struct {
		tag  string
		want Progress
	}{
		{`"Waiting"`, Waiting},
		{`"InProgress"`, InProgress},
		{`"Done"`, Done},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			var p Progress
			require.NoError(t, json.Unmarshal([]byte(tt.tag), &p))
			assert.Equal(t, tt.want, p)

			out, err := json.Marshal(p)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, string(out))
		})
	}
}

func TestProgressJSON_Unknown(t *testing.T) {
	var p Progress
	assert.Error(t, json.Unmarshal([]byte(`"Blocked"`), &p))
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	got := New("Task1", "desc", now)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Task1", got.Name)
	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, InProgress, got.Progress)
	assert.Equal(t, "2024-03-09 14:05:07", got.Created)
}

func TestNew_UniqueIDs(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for range 100 {
		task := New("x", "y", now)
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}
}

func TestEdited_KeepsIDAndProgress(t *testing.T) {
	orig := New("old", "old desc", time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local))
	orig.Progress = Done

	later := time.Date(2024, 2, 2, 10, 0, 0, 0, time.Local)
	got := orig.Edited("new", "new desc", later)

	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, Done, got.Progress)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, "new desc", got.Description)
	assert.Equal(t, "2024-02-02 10:00:00", got.Created)
	assert.Equal(t, "old", orig.Name, "receiver must not change")
}

func TestEqual_IgnoresID(t *testing.T) {
	a := Task{ID: "1", Name: "a", Description: "d", Progress: Done, Created: "2024-01-01 00:00:00"}
	b := a
	b.ID = "2"
	assert.True(t, a.Equal(b))

	b.Progress = Waiting
	assert.False(t, a.Equal(b))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("a"))
	assert.NoError(t, ValidateName("  a  "))
	assert.ErrorIs(t, ValidateName(""), ErrBlankName)
	assert.ErrorIs(t, ValidateName(" \t "), ErrBlankName)
}
