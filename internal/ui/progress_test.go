package ui

import (
	"strings"
	"testing"

	"github.com/winging/slang/internal/driver"
)

func TestTruncateLeavesShortNamesUnchanged(t *testing.T) {
	if got := truncate("short", 20); got != "short" {
		t.Fatalf("truncate() = %q, want unchanged %q", got, "short")
	}
}

func TestTruncateShortensLongNamesWithEllipsis(t *testing.T) {
	long := "a_very_long_compilation_unit_name_indeed"
	got := truncate(long, 10)
	if len(got) >= len(long) {
		t.Fatalf("truncate(%q, 10) = %q, want a shortened string", long, got)
	}
	if got[len(got)-len("…"):] != "…" {
		t.Fatalf("truncate() = %q, want it to end with an ellipsis", got)
	}
}

func TestNewProgressModelSeedsAllUnitsQueued(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("binding", []string{"a", "b", "c"}, events).(*progressModel)
	if len(m.items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(m.items))
	}
	for _, it := range m.items {
		if it.status != driver.StatusQueued {
			t.Errorf("item %q status = %v, want StatusQueued", it.name, it.status)
		}
	}
	close(events)
}

func TestApplyEventUpdatesNamedUnitStatus(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("binding", []string{"a", "b"}, events).(*progressModel)
	m.applyEvent(driver.Event{Unit: "b", Status: driver.StatusDone})

	if m.items[m.index["b"]].status != driver.StatusDone {
		t.Fatalf("applyEvent did not update unit %q", "b")
	}
	if m.items[m.index["a"]].status != driver.StatusQueued {
		t.Fatalf("applyEvent must not touch unrelated units")
	}
	close(events)
}

func TestApplyEventIgnoresUnknownUnit(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("binding", []string{"a"}, events).(*progressModel)
	cmd := m.applyEvent(driver.Event{Unit: "never-registered", Status: driver.StatusDone})
	if cmd != nil {
		t.Fatalf("applyEvent on an unknown unit should be a no-op, got a non-nil Cmd")
	}
	if m.items[0].status != driver.StatusQueued {
		t.Fatalf("applyEvent on an unknown unit must not mutate known items")
	}
	close(events)
}

func TestViewIsEmptyWithNoItems(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("binding", nil, events).(*progressModel)
	if got := m.View(); got != "" {
		t.Fatalf("View() with no items = %q, want empty", got)
	}
	close(events)
}

func TestViewListsEveryUnitName(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("binding", []string{"alpha", "beta"}, events).(*progressModel)
	view := m.View()
	for _, name := range []string{"alpha", "beta"} {
		if !strings.Contains(view, name) {
			t.Errorf("View() missing unit name %q:\n%s", name, view)
		}
	}
	close(events)
}
