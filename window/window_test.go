package window

import (
	"reflect"
	"testing"
)

// matchSet builds a predicate matching the given indices of a unit
// slice that simply holds its own indices.
func matchSet(indices ...int) func(int) bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return func(u int) bool { return set[u] }
}

func units(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		matches []int
		cfg     Config
		want    []Window[int]
	}{
		{
			name:    "single match mid-document",
			total:   5,
			matches: []int{2},
			cfg:     Config{Before: 1, After: 1},
			want: []Window[int]{
				{Units: []int{1, 2, 3}, UsedFirst: false, UsedLast: false},
			},
		},
		{
			name:    "no context",
			total:   5,
			matches: []int{1, 3},
			cfg:     Config{Before: 0, After: 0},
			want: []Window[int]{
				{Units: []int{1}},
				{Units: []int{3}},
			},
		},
		{
			name:    "adjacent matches share a window",
			total:   5,
			matches: []int{1, 2},
			cfg:     Config{Before: 0, After: 0},
			want: []Window[int]{
				{Units: []int{1, 2}},
			},
		},
		{
			name:    "match at document start",
			total:   4,
			matches: []int{0},
			cfg:     Config{Before: 1, After: 1},
			want: []Window[int]{
				{Units: []int{0, 1}, UsedFirst: true},
			},
		},
		{
			name:    "match at document end",
			total:   4,
			matches: []int{3},
			cfg:     Config{Before: 1, After: 1},
			want: []Window[int]{
				{Units: []int{2, 3}, UsedLast: true},
			},
		},
		{
			name:    "nearby matches coalesce via look-ahead",
			total:   5,
			matches: []int{0, 3},
			cfg:     Config{Before: 1, After: 1},
			want: []Window[int]{
				{Units: []int{0, 1, 2, 3, 4}, UsedFirst: true, UsedLast: true},
			},
		},
		{
			name:    "distant matches stay separate",
			total:   8,
			matches: []int{1, 6},
			cfg:     Config{Before: 1, After: 1},
			want: []Window[int]{
				{Units: []int{0, 1, 2}, UsedFirst: true},
				{Units: []int{5, 6, 7}, UsedLast: true},
			},
		},
		{
			name:    "everything matches",
			total:   3,
			matches: []int{0, 1, 2},
			cfg:     Config{Before: 1, After: 1},
			want: []Window[int]{
				{Units: []int{0, 1, 2}, UsedFirst: true, UsedLast: true},
			},
		},
		{
			name:    "no matches",
			total:   5,
			matches: nil,
			cfg:     Config{Before: 1, After: 1},
			want:    nil,
		},
		{
			name:    "empty input",
			total:   0,
			matches: nil,
			cfg:     Config{Before: 1, After: 1},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(units(tt.total), matchSet(tt.matches...), tt.cfg)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractWindowsNeverOverlap(t *testing.T) {
	// Dense scattered matches with generous context must still produce
	// strictly ordered, non-overlapping windows.
	total := units(30)
	match := matchSet(2, 3, 9, 15, 16, 24, 29)

	windows := Extract(total, match, Config{Before: 2, After: 2})
	if len(windows) == 0 {
		t.Fatal("expected windows")
	}

	prevEnd := -1
	for i, w := range windows {
		if len(w.Units) == 0 {
			t.Fatalf("window %d is empty", i)
		}
		if w.Units[0] <= prevEnd {
			t.Errorf("window %d starts at %d, overlapping previous end %d", i, w.Units[0], prevEnd)
		}
		prevEnd = w.Units[len(w.Units)-1]
	}
}

func TestExtractIdempotent(t *testing.T) {
	// Flattening the extracted windows and re-extracting with an
	// always-true predicate returns the same units as one window.
	total := units(12)
	first := Extract(total, matchSet(3, 8), Config{Before: 1, After: 1})

	var flat []int
	for _, w := range first {
		flat = append(flat, w.Units...)
	}

	second := Extract(flat, func(int) bool { return true }, Config{Before: 1, After: 1})
	if len(second) != 1 {
		t.Fatalf("expected a single window, got %d", len(second))
	}
	if !reflect.DeepEqual(second[0].Units, flat) {
		t.Errorf("re-extraction changed units: got %v, want %v", second[0].Units, flat)
	}
	if !second[0].UsedFirst || !second[0].UsedLast {
		t.Error("full-coverage window should set both edge flags")
	}
}

func TestExtractNegativeContext(t *testing.T) {
	got := Extract(units(5), matchSet(2), Config{Before: -3, After: -1})
	want := []Window[int]{{Units: []int{2}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}
