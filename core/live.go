package core

import "sync"

// StatusRegion is the assistive announcement sink. Announcers write from
// timer goroutines; the view reads on render, so access is locked.
type StatusRegion struct {
	mu   sync.Mutex
	text string
}

func NewStatusRegion() *StatusRegion { return &StatusRegion{} }

func (r *StatusRegion) SetText(text string) {
	r.mu.Lock()
	r.text = text
	r.mu.Unlock()
}

func (r *StatusRegion) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text
}
