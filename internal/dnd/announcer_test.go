package dnd

import (
	"testing"
	"time"

	"slate/internal/timing"
)

type regionBuffer struct {
	writes []string
}

func (r *regionBuffer) SetText(text string) { r.writes = append(r.writes, text) }

func TestDuplicateMessageSuppressed(t *testing.T) {
	clock := timing.NewManualClock()
	region := &regionBuffer{}
	a := NewAnnouncer(region, clock)

	a.Announce("moved")
	a.Announce("moved")
	a.Announce("moved")

	if len(region.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(region.writes))
	}
}

func TestDifferentMessageIntervenes(t *testing.T) {
	clock := timing.NewManualClock()
	region := &regionBuffer{}
	a := NewAnnouncer(region, clock)

	a.Announce("moved")
	a.Announce("cancelled")
	a.Announce("moved")

	want := []string{"moved", "cancelled", "moved"}
	if len(region.writes) != len(want) {
		t.Fatalf("writes = %v, want %v", region.writes, want)
	}
	for i := range want {
		if region.writes[i] != want[i] {
			t.Errorf("writes[%d] = %q, want %q", i, region.writes[i], want[i])
		}
	}
}

func TestSameMessageAfterWindowElapses(t *testing.T) {
	clock := timing.NewManualClock()
	region := &regionBuffer{}
	a := NewAnnouncer(region, clock)

	a.Announce("moved")
	clock.Advance(500 * time.Millisecond)
	a.Announce("moved")

	if len(region.writes) != 2 {
		t.Fatalf("writes = %d, want 2 after window elapsed", len(region.writes))
	}
}

func TestSuppressedCallDoesNotResetWindow(t *testing.T) {
	clock := timing.NewManualClock()
	region := &regionBuffer{}
	a := NewAnnouncer(region, clock)

	a.Announce("moved")
	clock.Advance(400 * time.Millisecond)
	a.Announce("moved") // suppressed, must not restart the 500ms window
	clock.Advance(100 * time.Millisecond)
	a.Announce("moved") // window elapsed from the first write

	if len(region.writes) != 2 {
		t.Fatalf("writes = %d, want 2 (suppressed call must not extend window)", len(region.writes))
	}
}

func TestNilRegionSwallowsAnnouncements(t *testing.T) {
	clock := timing.NewManualClock()
	a := NewAnnouncer(nil, clock)
	a.Announce("moved") // must not panic
}
