package dnd

import (
	"sync"
	"time"

	"slate/internal/timing"
)

// suppressWindow is how long a repeated identical message stays suppressed.
const suppressWindow = 500 * time.Millisecond

// LiveRegion is the assistive output channel. In the app it is the status
// bar region; tests use a buffer.
type LiveRegion interface {
	SetText(text string)
}

// Announcer writes messages to a live region, de-duplicating consecutive
// identical messages within the suppression window so rapid re-renders do
// not produce screen-reader chatter. With a nil region, announcements are
// silently swallowed.
type Announcer struct {
	mu     sync.Mutex
	region LiveRegion
	window *timing.Debouncer
	last   string
}

func NewAnnouncer(region LiveRegion, clock timing.Clock) *Announcer {
	return &Announcer{
		region: region,
		window: timing.NewDebouncer(suppressWindow, clock),
	}
}

// Announce writes msg to the live region unless it equals the last announced
// message. The last-message memory clears after the suppression window, so
// the same message can be announced again later. A suppressed call does not
// reset the window.
func (a *Announcer) Announce(msg string) {
	a.mu.Lock()
	if msg == a.last {
		a.mu.Unlock()
		return
	}
	a.last = msg
	region := a.region
	a.mu.Unlock()

	if region != nil {
		region.SetText(msg)
	}
	a.window.Call("live", func() {
		a.mu.Lock()
		a.last = ""
		a.mu.Unlock()
	})
}
