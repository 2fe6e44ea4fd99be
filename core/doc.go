// Package core owns the app shell: the root model, tab and pane hosting,
// screen stack, key and command registries, and the status/live-region bars.
//
// Tabs and screens plug in through the Tab and Screen interfaces; core never
// imports domain packages.
package core
