package domain

import "testing"

func TestInsertionIndex(t *testing.T) {
	tests := []struct {
		name   string
		focus  int
		length int
		want   int
	}{
		{"no selection empty queue", -1, 0, 0},
		{"no selection", -1, 4, 0},
		{"focus zero counts as no selection", 0, 4, 0},
		{"focus zero empty queue", 0, 0, 0},
		{"after focus", 1, 4, 2},
		{"after last item", 3, 4, 4},
		{"focus past end clamps", 10, 4, 4},
		{"far negative never negative", -7, 3, 0},
		{"negative empty queue", -2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsertionIndex(tt.focus, tt.length); got != tt.want {
				t.Fatalf("InsertionIndex(%d, %d) = %d, want %d", tt.focus, tt.length, got, tt.want)
			}
		})
	}
}

func TestInsertionIndexBounds(t *testing.T) {
	for length := 0; length <= 6; length++ {
		for focus := -8; focus <= 8; focus++ {
			got := InsertionIndex(focus, length)
			if got < 0 || got > length {
				t.Fatalf("InsertionIndex(%d, %d) = %d out of [0, %d]", focus, length, got, length)
			}
			if focus > 0 && got != min(focus+1, length) {
				t.Fatalf("InsertionIndex(%d, %d) = %d, want %d", focus, length, got, min(focus+1, length))
			}
		}
	}
}

func TestItemAt(t *testing.T) {
	queue := []QueueItem{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}, {ID: "c", Title: "C"}}
	tests := []struct {
		index int
		want  string
		ok    bool
	}{
		{0, "a", true},
		{2, "c", true},
		{3, "", false},
		{-1, "c", true},
		{-3, "a", true},
		{-4, "", false},
	}
	for _, tt := range tests {
		got, ok := ItemAt(queue, tt.index)
		if ok != tt.ok || got.ID != tt.want {
			t.Fatalf("ItemAt(%d) = %q, %v; want %q, %v", tt.index, got.ID, ok, tt.want, tt.ok)
		}
	}
	if _, ok := ItemAt(nil, 0); ok {
		t.Fatal("expected no item in empty queue")
	}
}

func TestInsertAt(t *testing.T) {
	queue := []QueueItem{{ID: "a"}, {ID: "b"}}
	queue = InsertAt(queue, 1, QueueItem{ID: "x"})
	queue = InsertAt(queue, 0, QueueItem{ID: "y"})
	queue = InsertAt(queue, len(queue), QueueItem{ID: "z"})
	queue = InsertAt(queue, 1, QueueItem{ID: "x"})

	want := []string{"y", "x", "a", "x", "b", "z"}
	if len(queue) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(queue))
	}
	for i, id := range want {
		if queue[i].ID != id {
			t.Fatalf("queue[%d] = %q, want %q", i, queue[i].ID, id)
		}
	}
}
