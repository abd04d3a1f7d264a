package cursor

import "testing"

func TestSelectionBounds(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selection
		start    ByteOffset
		end      ByteOffset
		empty    bool
		backward bool
	}{
		{"point", NewCursorSelection(4), 4, 4, true, false},
		{"forward", NewSelection(2, 6), 2, 6, false, false},
		{"backward", NewSelection(6, 2), 2, 6, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Start(); got != tt.start {
				t.Errorf("Start() = %d, want %d", got, tt.start)
			}
			if got := tt.sel.End(); got != tt.end {
				t.Errorf("End() = %d, want %d", got, tt.end)
			}
			if got := tt.sel.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
			if got := tt.sel.IsBackward(); got != tt.backward {
				t.Errorf("IsBackward() = %v, want %v", got, tt.backward)
			}
		})
	}
}

func TestSelectionMoveAndExtend(t *testing.T) {
	sel := NewSelection(2, 5)

	if got, want := sel.MoveTo(8), NewSelection(5, 8); got != want {
		t.Errorf("MoveTo(8) = %v, want %v", got, want)
	}
	if got, want := sel.Extend(8), NewSelection(2, 8); got != want {
		t.Errorf("Extend(8) = %v, want %v", got, want)
	}
	if got, want := sel.Collapse(), NewCursorSelection(5); got != want {
		t.Errorf("Collapse() = %v, want %v", got, want)
	}
	if got, want := sel.Flip(), NewSelection(5, 2); got != want {
		t.Errorf("Flip() = %v, want %v", got, want)
	}
	if got, want := NewSelection(-1, 20).Clamp(10), NewSelection(0, 10); got != want {
		t.Errorf("Clamp(10) = %v, want %v", got, want)
	}
}

func TestSelectionMerge(t *testing.T) {
	if got, want := NewSelection(0, 4).Merge(NewSelection(2, 7)), NewSelection(0, 7); got != want {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
	if got, want := NewSelection(4, 0).Merge(NewSelection(2, 7)), NewSelection(7, 0); got != want {
		t.Errorf("Merge() backward = %v, want %v", got, want)
	}
}

func TestSelectionSetNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []Selection
		want []Selection
	}{
		{
			name: "empty resets to origin",
			in:   nil,
			want: []Selection{NewCursorSelection(0)},
		},
		{
			name: "sorted",
			in:   []Selection{NewSelection(8, 9), NewSelection(1, 3)},
			want: []Selection{NewSelection(1, 3), NewSelection(8, 9)},
		},
		{
			name: "overlapping merge",
			in:   []Selection{NewSelection(1, 5), NewSelection(3, 8)},
			want: []Selection{NewSelection(1, 8)},
		},
		{
			name: "adjacent kept apart",
			in:   []Selection{NewSelection(1, 3), NewSelection(3, 5)},
			want: []Selection{NewSelection(1, 3), NewSelection(3, 5)},
		},
		{
			name: "identical points merge",
			in:   []Selection{NewCursorSelection(4), NewCursorSelection(4)},
			want: []Selection{NewCursorSelection(4)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss := NewSelectionSetFromSlice(tt.in)
			got := ss.All()
			if len(got) != len(tt.want) {
				t.Fatalf("All() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("All()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSelectionSetOperations(t *testing.T) {
	ss := NewSelectionSetFromSlice([]Selection{NewSelection(0, 2), NewSelection(6, 4)})

	ss.FlipAll()
	if got, want := ss.Get(0), NewSelection(2, 0); got != want {
		t.Errorf("after FlipAll Get(0) = %v, want %v", got, want)
	}
	if got, want := ss.Get(1), NewSelection(4, 6); got != want {
		t.Errorf("after FlipAll Get(1) = %v, want %v", got, want)
	}

	ss.CollapseAll()
	if got, want := ss.Primary(), NewCursorSelection(0); got != want {
		t.Errorf("after CollapseAll Primary() = %v, want %v", got, want)
	}

	ss.Clamp(3)
	if got := ss.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if got, want := ss.Get(1), NewCursorSelection(3); got != want {
		t.Errorf("after Clamp Get(1) = %v, want %v", got, want)
	}

	ss.Set(NewSelection(0, 3))
	if got := ss.Count(); got != 1 {
		t.Errorf("Count() after Set = %d, want 1", got)
	}
}
