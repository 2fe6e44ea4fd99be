// Package tabs contains the concrete tab and pane implementations built on
// the core pane host.
//
// Allowed here:
// - panes that satisfy core.Pane (reorderable lists, read-only detail panes)
// - per-tab pane composition and layout
//
// Not allowed here:
// - direct database access (panes consume loaded data and call back through
//   injected closures)
// - app-wide routing, key registry ownership, command registration
package tabs
