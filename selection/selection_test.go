package selection

import (
	"testing"

	"github.com/stephenmfriend/tally/task"
)

func mk(name string, p task.Progress) task.Task {
	return task.Task{ID: name, Name: name, Progress: p, Created: "2024-01-01 00:00:00"}
}

func TestCompute(t *testing.T) {
	tasks := []task.Task{
		mk("a", task.Done),
		mk("b", task.Waiting),
		mk("c", task.InProgress),
		mk("d", task.Done),
	}

	tests := []struct {
		name          string
		hideCompleted bool
		wantIDs       []string
		wantIdx       []int
	}{
		{"show all", false, []string{"a", "b", "c", "d"}, []int{0, 1, 2, 3}},
		{"hide completed", true, []string{"b", "c"}, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compute(tasks, tt.hideCompleted)
			if v.Len() != len(tt.wantIDs) {
				t.Fatalf("expected %d rows, got %d", len(tt.wantIDs), v.Len())
			}
			for i := range tt.wantIDs {
				if v[i].Task.ID != tt.wantIDs[i] {
					t.Errorf("row %d: expected %q, got %q", i, tt.wantIDs[i], v[i].Task.ID)
				}
				idx, ok := v.StoreIndex(i)
				if !ok || idx != tt.wantIdx[i] {
					t.Errorf("row %d: expected store index %d, got %d (ok=%v)", i, tt.wantIdx[i], idx, ok)
				}
			}
		})
	}
}

func TestCompute_HideCompletedExcludesOnlyDone(t *testing.T) {
	var tasks []task.Task
	for i, p := range []task.Progress{task.Done, task.Waiting, task.InProgress, task.Done, task.Waiting} {
		tasks = append(tasks, mk(string(rune('a'+i)), p))
	}

	v := Compute(tasks, true)
	for _, r := range v {
		if r.Task.Progress == task.Done {
			t.Errorf("row %q is Done but visible", r.Task.ID)
		}
	}
	notDone := 0
	for _, tk := range tasks {
		if tk.Progress != task.Done {
			notDone++
		}
	}
	if v.Len() != notDone {
		t.Errorf("expected %d rows, got %d", notDone, v.Len())
	}
	if got := v.Hidden(len(tasks)); got != 2 {
		t.Errorf("expected 2 hidden, got %d", got)
	}
}

func TestCompute_Empty(t *testing.T) {
	v := Compute(nil, true)
	if v.Len() != 0 {
		t.Fatalf("expected empty view, got %d rows", v.Len())
	}
	if _, ok := v.StoreIndex(0); ok {
		t.Error("expected no store index in an empty view")
	}
	if _, ok := v.IDAt(0); ok {
		t.Error("expected no id in an empty view")
	}
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	tasks := []task.Task{mk("a", task.Done), mk("b", task.Waiting)}
	toggle := func(b bool) bool { return !b }

	for _, hide := range []bool{false, true} {
		orig := Compute(tasks, hide)
		once := Compute(tasks, toggle(hide))
		twice := Compute(tasks, toggle(toggle(hide)))

		if twice.Len() != orig.Len() {
			t.Errorf("hide=%v: toggling twice changed the view", hide)
		}
		if once.Len() == orig.Len() {
			t.Errorf("hide=%v: a single toggle should change this view", hide)
		}
	}
}

func TestNextPrevious(t *testing.T) {
	tests := []struct {
		name     string
		n, cur   int
		wantNext int
		wantPrev int
	}{
		{"middle", 5, 2, 3, 1},
		{"top", 5, 0, 1, 4},
		{"bottom", 5, 4, 0, 3},
		{"single row", 1, 0, 0, 0},
		{"empty view", 0, 0, 0, 0},
		{"stale cursor", 3, 7, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.n, tt.cur); got != tt.wantNext {
				t.Errorf("Next(%d, %d) = %d, want %d", tt.n, tt.cur, got, tt.wantNext)
			}
			if got := Previous(tt.n, tt.cur); got != tt.wantPrev {
				t.Errorf("Previous(%d, %d) = %d, want %d", tt.n, tt.cur, got, tt.wantPrev)
			}
		})
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	for n := 1; n <= 6; n++ {
		cur := 0
		for step := 0; step < 3*n; step++ {
			if step%3 == 2 {
				cur = Previous(n, cur)
			} else {
				cur = Next(n, cur)
			}
			if cur < 0 || cur >= n {
				t.Fatalf("n=%d step=%d: cursor %d out of bounds", n, step, cur)
			}
		}
	}
}

func TestNextWrapsExactlyAtEnd(t *testing.T) {
	n := 4
	cur := 0
	for i := 1; i < n; i++ {
		cur = Next(n, cur)
		if cur != i {
			t.Fatalf("expected %d, got %d", i, cur)
		}
	}
	if cur = Next(n, cur); cur != 0 {
		t.Fatalf("expected wrap to 0, got %d", cur)
	}
	if cur = Previous(n, cur); cur != n-1 {
		t.Fatalf("expected wrap to %d, got %d", n-1, cur)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		n, cur, want int
	}{
		{3, 1, 1},
		{3, 3, 0},
		{1, 2, 0},
		{0, 0, 0},
		{0, 4, 0},
		{2, -1, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.n, tt.cur); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.n, tt.cur, got, tt.want)
		}
	}
}

func TestScenario_ToggleHideCompletedClampsSelection(t *testing.T) {
	tasks := []task.Task{mk("A", task.Done), mk("B", task.Waiting)}
	sel := 0

	v := Compute(tasks, true)
	sel = Clamp(v.Len(), sel)

	id, ok := v.IDAt(sel)
	if !ok || id != "B" {
		t.Fatalf("expected selection on B, got %q (ok=%v)", id, ok)
	}
}
