package pagecontext

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func eventForPage(n int) ChangeEvent {
	cur := Context{ID: fmt.Sprintf("page-%d", n), Name: fmt.Sprintf("Page %d", n), Route: fmt.Sprintf("/page/%d", n)}
	return NewChangeEvent(nil, cur)
}

func TestHistory_PushNewestFirst(t *testing.T) {
	h := NewHistory(10)

	for i := 1; i <= 3; i++ {
		h.Push(eventForPage(i))
	}

	events := h.Events()
	if len(events) != 3 {
		t.Fatalf("Len = %d, want 3", len(events))
	}
	for i, wantPage := range []int{3, 2, 1} {
		if got := events[i].Current.ID; got != fmt.Sprintf("page-%d", wantPage) {
			t.Errorf("events[%d].Current.ID = %q, want page-%d", i, got, wantPage)
		}
	}
}

func TestHistory_CapEvictsOldest(t *testing.T) {
	h := NewHistory(10)

	for i := 1; i <= 15; i++ {
		h.Push(eventForPage(i))
	}

	events := h.Events()
	if len(events) != 10 {
		t.Fatalf("Len = %d, want 10", len(events))
	}
	// Entries 15..6 survive newest first; 1..5 are evicted.
	for i := 0; i < 10; i++ {
		want := fmt.Sprintf("page-%d", 15-i)
		if events[i].Current.ID != want {
			t.Errorf("events[%d].Current.ID = %q, want %q", i, events[i].Current.ID, want)
		}
	}
}

func TestHistory_DefaultLimit(t *testing.T) {
	if got := NewHistory(0).Limit(); got != DefaultHistoryLimit {
		t.Errorf("Limit() = %d, want %d", got, DefaultHistoryLimit)
	}
	if got := NewHistory(-3).Limit(); got != DefaultHistoryLimit {
		t.Errorf("Limit() = %d, want %d", got, DefaultHistoryLimit)
	}
	if got := NewHistory(25).Limit(); got != 25 {
		t.Errorf("Limit() = %d, want 25", got)
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(10)
	h.Push(eventForPage(1))
	h.Push(eventForPage(2))

	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", h.Len())
	}
	if len(h.Events()) != 0 {
		t.Errorf("Events() = %v after Clear, want empty", h.Events())
	}
}

func TestHistory_EventsReturnsCopy(t *testing.T) {
	h := NewHistory(10)
	h.Push(eventForPage(1))

	events := h.Events()
	events[0].Current.ID = "mutated"

	if h.Events()[0].Current.ID != "page-1" {
		t.Error("mutating the returned slice should not affect the history")
	}
}

func TestHistory_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.IntRange(1, 20).Draw(t, "limit")
		pushes := rapid.IntRange(0, 50).Draw(t, "pushes")

		h := NewHistory(limit)
		for i := 1; i <= pushes; i++ {
			h.Push(eventForPage(i))
		}

		want := pushes
		if want > limit {
			want = limit
		}
		if h.Len() != want {
			t.Fatalf("Len() = %d, want %d", h.Len(), want)
		}

		// Newest first, contiguous, ending at the most recent push.
		for i, ev := range h.Events() {
			wantID := fmt.Sprintf("page-%d", pushes-i)
			if ev.Current.ID != wantID {
				t.Fatalf("events[%d].Current.ID = %q, want %q", i, ev.Current.ID, wantID)
			}
		}
	})
}
