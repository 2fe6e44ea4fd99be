package widgets

import (
	"strings"
	"testing"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(20, 2)
	lines := strings.Split(out, "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		t.Fatalf("expected output")
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
}

func TestSplitWidthsDistributesRemainder(t *testing.T) {
	got := splitWidths(10, 3, nil)
	sum := 0
	for _, w := range got {
		sum += w
	}
	if sum != 10 {
		t.Fatalf("widths %v sum to %d, want 10", got, sum)
	}
}

func TestCursorListMarkers(t *testing.T) {
	l := CursorList{Items: []string{"14 INT. WAREHOUSE", "15 EXT. ROOFTOP", "16 INT. DINER"}, Cursor: 1, Grabbed: 2}
	out := l.Render(40, 10)
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[1], "> ") {
		t.Errorf("cursor row = %q, want > marker", lines[1])
	}
	if !strings.HasPrefix(lines[2], "◇ ") {
		t.Errorf("grabbed row = %q, want ◇ marker", lines[2])
	}
}

func TestCursorListGrabbedUnderCursor(t *testing.T) {
	l := CursorList{Items: []string{"a", "b"}, Cursor: 0, Grabbed: 0}
	out := l.Render(10, 5)
	if !strings.HasPrefix(out, "◆ ") {
		t.Errorf("row = %q, want ◆ marker", out)
	}
}

func TestCursorListScrollsToCursor(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	l := CursorList{Items: items, Cursor: 4, Grabbed: -1}
	out := l.Render(10, 2)
	if !strings.Contains(out, "e") {
		t.Errorf("window %q does not contain the cursor row", out)
	}
	if strings.Contains(out, "a") {
		t.Errorf("window %q kept the top row while cursor is at the bottom", out)
	}
}

func TestCursorListEmpty(t *testing.T) {
	l := CursorList{Empty: "No strips"}
	if out := l.Render(20, 3); !strings.Contains(out, "No strips") {
		t.Errorf("empty render = %q", out)
	}
}
