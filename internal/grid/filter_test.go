package grid

import (
	"reflect"
	"strings"
	"testing"
)

func TestFilterShowAllKeepsGenerationOrder(t *testing.T) {
	cells := Generate(DefaultAlphabet(), 6)
	got := Filter(cells, "zz", ModeShowAll)
	if len(got) != len(cells) {
		t.Fatalf("expected %d indices, got %d", len(cells), len(got))
	}
	for i, idx := range got {
		if idx != i {
			t.Fatalf("expected index %d at position %d, got %d", i, i, idx)
		}
	}
	if empty := Filter(cells, "", ModePrefix); !reflect.DeepEqual(empty, got) {
		t.Fatalf("expected empty prefix to behave like show-all")
	}
}

func TestFilterNarrowsMonotonically(t *testing.T) {
	cells := Generate(DefaultAlphabet(), 8)
	for _, prefix := range []string{"a", "a.", "a.c", "bd", "h.h", "h.hx"} {
		parent := Filter(cells, prefix[:len(prefix)-1], ModePrefix)
		child := Filter(cells, prefix, ModePrefix)
		members := make(map[int]struct{}, len(parent))
		for _, idx := range parent {
			members[idx] = struct{}{}
		}
		for _, idx := range child {
			if _, ok := members[idx]; !ok {
				t.Fatalf("prefix %q: index %d not in parent set", prefix, idx)
			}
			if !strings.HasPrefix(cells[idx].Label, prefix) {
				t.Fatalf("prefix %q: label %q does not match", prefix, cells[idx].Label)
			}
		}
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	cells := Generate(DefaultAlphabet(), 10)
	first := Filter(cells, "c", ModePrefix)
	second := Filter(cells, "c", ModePrefix)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
	// "c" + 10 plain + 10 dotted
	if len(first) != 20 {
		t.Fatalf("expected 20 matches, got %d", len(first))
	}
}

func TestFilterRoundTripsEveryLabel(t *testing.T) {
	cells := Generate(DefaultAlphabet(), 7)
	for i, c := range cells {
		got := Filter(cells, c.Label, ModePrefix)
		count := 0
		for _, idx := range got {
			if cells[idx].Label == c.Label {
				count++
				if idx != i {
					t.Fatalf("label %q resolved to index %d, expected %d", c.Label, idx, i)
				}
			}
		}
		if count != 1 {
			t.Fatalf("label %q: expected exactly one exact member, got %d", c.Label, count)
		}
	}
}

func TestFilterOverlongPrefixIsEmpty(t *testing.T) {
	cells := Generate(DefaultAlphabet(), 6)
	if got := Filter(cells, "a.bc", ModePrefix); len(got) != 0 {
		t.Fatalf("expected no matches for overlong prefix, got %v", got)
	}
	if got := Filter(cells, "A", ModePrefix); len(got) != 0 {
		t.Fatalf("expected case-sensitive miss, got %v", got)
	}
}

func TestFindExactSkipsInvalidCells(t *testing.T) {
	alphabet := DefaultAlphabet()
	cells := Generate(alphabet, 6)
	filtered := Filter(cells, "ab", ModePrefix)
	if idx := FindExact(cells, filtered, "ab"); idx != -1 {
		t.Fatalf("expected unlaid cells to be unmatchable, got %d", idx)
	}
	Layout(cells, alphabet, 6, Size{Width: 1200, Height: 600})
	idx := FindExact(cells, filtered, "ab")
	if idx < 0 || cells[idx].Label != "ab" {
		t.Fatalf("expected to find ab, got %d", idx)
	}
	if FindExact(cells, filtered, "a.b") != -1 {
		t.Fatalf("expected a.b outside filtered set to be ignored")
	}
}
