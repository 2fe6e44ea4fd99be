package widgets

// Widget renders into a width x height cell budget.
type Widget interface {
	Render(width, height int) string
}
