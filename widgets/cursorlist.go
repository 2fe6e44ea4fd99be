package widgets

import "strings"

// CursorList renders rows with a cursor marker and an optional grabbed row.
// Grabbed is -1 when nothing is held. The visible window follows the cursor.
type CursorList struct {
	Items   []string
	Cursor  int
	Grabbed int
	Empty   string
}

func (l CursorList) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(l.Items) == 0 {
		empty := l.Empty
		if empty == "" {
			empty = "(empty)"
		}
		return "  " + empty
	}

	start := 0
	if l.Cursor >= height {
		start = l.Cursor - height + 1
	}
	end := start + height
	if end > len(l.Items) {
		end = len(l.Items)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		marker := "  "
		switch {
		case i == l.Grabbed && i == l.Cursor:
			marker = "◆ "
		case i == l.Grabbed:
			marker = "◇ "
		case i == l.Cursor:
			marker = "> "
		}
		rows = append(rows, marker+l.Items[i])
	}
	return strings.Join(rows, "\n")
}
