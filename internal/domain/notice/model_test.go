package notice

import (
	"testing"
	"time"
)

func TestVisibleAt(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	n := Notice{Active: true}
	if !n.VisibleAt(now) {
		t.Error("active notice with no window must be visible")
	}

	n.Active = false
	if n.VisibleAt(now) {
		t.Error("inactive notice must not be visible")
	}

	n = Notice{Active: true, ScheduledAt: &after}
	if n.VisibleAt(now) {
		t.Error("notice scheduled in the future must not be visible yet")
	}

	n = Notice{Active: true, ExpiresAt: &before}
	if n.VisibleAt(now) {
		t.Error("expired notice must not be visible")
	}

	n = Notice{Active: true, ScheduledAt: &before, ExpiresAt: &after}
	if !n.VisibleAt(now) {
		t.Error("notice inside its window must be visible")
	}
}
