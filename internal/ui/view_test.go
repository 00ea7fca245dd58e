package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/gridjump/internal/grid"
	"github.com/atomicstack/gridjump/internal/pointer"
	"github.com/atomicstack/gridjump/internal/testutil"
)

func TestGridViewGolden(t *testing.T) {
	h := newTestHarness(t, ModeOneShot, pointer.NewRecorder(testViewport))
	testutil.AssertGolden(t, "grid_pool6.golden", h.View())
}

func TestViewHasOneLinePerRow(t *testing.T) {
	h := newTestHarness(t, ModeOneShot, nil)
	lines := strings.Split(h.View(), "\n")
	if len(lines) != 31 {
		t.Fatalf("expected 31 lines, got %d", len(lines))
	}
	for i, line := range lines[:30] {
		if len([]rune(line)) != 60 {
			t.Fatalf("line %d: expected 60 columns, got %d", i, len([]rune(line)))
		}
	}
}

func TestFilteredViewHidesOtherRows(t *testing.T) {
	h := newTestHarness(t, ModeOneShot, nil)
	h.Type("c")
	view := h.View()
	if !strings.Contains(view, " cf ") || !strings.Contains(view, "c.a") {
		t.Fatalf("expected row c labels:\n%s", view)
	}
	if strings.Contains(view, " aa ") || strings.Contains(view, "b.b") {
		t.Fatalf("expected other rows filtered out:\n%s", view)
	}
}

func TestPromptFlipsNearRightEdge(t *testing.T) {
	h := newTestHarness(t, ModeOneShot, pointer.NewRecorder(testViewport))
	h.Type("a.f")
	lines := strings.Split(h.View(), "\n")
	row := lines[2]
	promptAt := strings.Index(row, grid.PromptText)
	labelAt := strings.Index(row, "a.f")
	if promptAt < 0 || labelAt < 0 {
		t.Fatalf("expected prompt and label on row 2: %q", row)
	}
	if promptAt > labelAt {
		t.Fatalf("expected prompt left of the label near the right edge: %q", row)
	}
}

func TestViewWithoutSizeIsEmpty(t *testing.T) {
	m := NewModel(Options{Viewport: testViewport, Settings: poolSettings(6)})
	if m.View() != "" {
		t.Fatalf("expected empty view before the first window size")
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := truncateText("abc", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
