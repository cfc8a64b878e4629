package host

import (
	"errors"
	"testing"

	"github.com/BrainDriveAI/pagecontext/internal/pagecontext"
)

func demoPages() []pagecontext.Context {
	return []pagecontext.Context{
		{ID: "home", Name: "Home", Route: "/"},
		{ID: "dashboard", Name: "Dashboard", Route: "/dashboard"},
		{ID: "settings", Name: "Settings", Route: "/settings"},
	}
}

func TestSimulator_RetrieveCurrent(t *testing.T) {
	s := NewSimulator(demoPages()...)

	got, err := s.RetrieveCurrent()
	if err != nil {
		t.Fatalf("RetrieveCurrent() error: %v", err)
	}
	if got == nil || got.ID != "home" {
		t.Errorf("RetrieveCurrent() = %v, want the first page", got)
	}
}

func TestSimulator_EmptyHasNoCurrentPage(t *testing.T) {
	s := NewSimulator()

	got, err := s.RetrieveCurrent()
	if err != nil {
		t.Fatalf("RetrieveCurrent() error: %v", err)
	}
	if got != nil {
		t.Errorf("RetrieveCurrent() = %v, want nil", got)
	}
}

func TestSimulator_GeneratesMissingIDs(t *testing.T) {
	s := NewSimulator(pagecontext.Context{Name: "Anon", Route: "/anon"})

	got, err := s.RetrieveCurrent()
	if err != nil {
		t.Fatalf("RetrieveCurrent() error: %v", err)
	}
	if got == nil || got.ID == "" {
		t.Error("pages without an ID should get a generated one")
	}
}

func TestSimulator_NavigateNotifies(t *testing.T) {
	s := NewSimulator(demoPages()...)

	var seen []string
	stop := s.Subscribe(func(ctx pagecontext.Context) {
		seen = append(seen, ctx.ID)
	})
	defer stop()

	if err := s.Navigate("settings"); err != nil {
		t.Fatalf("Navigate() error: %v", err)
	}
	if err := s.Navigate("dashboard"); err != nil {
		t.Fatalf("Navigate() error: %v", err)
	}

	if len(seen) != 2 || seen[0] != "settings" || seen[1] != "dashboard" {
		t.Errorf("notifications = %v, want [settings dashboard]", seen)
	}

	got, _ := s.RetrieveCurrent()
	if got.ID != "dashboard" {
		t.Errorf("current = %q, want dashboard", got.ID)
	}
}

func TestSimulator_NavigateUnknownPage(t *testing.T) {
	s := NewSimulator(demoPages()...)

	if err := s.Navigate("missing"); err == nil {
		t.Error("Navigate(missing) = nil, want error")
	}
}

func TestSimulator_AdvanceWraps(t *testing.T) {
	s := NewSimulator(demoPages()...)

	var seen []string
	stop := s.Subscribe(func(ctx pagecontext.Context) {
		seen = append(seen, ctx.ID)
	})
	defer stop()

	for i := 0; i < 4; i++ {
		s.Advance()
	}

	want := []string{"dashboard", "settings", "home", "dashboard"}
	if len(seen) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestSimulator_RenameAndSetRoute(t *testing.T) {
	s := NewSimulator(demoPages()...)

	var last pagecontext.Context
	stop := s.Subscribe(func(ctx pagecontext.Context) { last = ctx })
	defer stop()

	s.Rename("Home Sweet Home")
	if last.ID != "home" || last.Name != "Home Sweet Home" {
		t.Errorf("after Rename, notification = %v", last)
	}

	s.SetRoute("/welcome")
	if last.Route != "/welcome" || last.Name != "Home Sweet Home" {
		t.Errorf("after SetRoute, notification = %v", last)
	}
}

func TestSimulator_UnsubscribeIsIdempotent(t *testing.T) {
	s := NewSimulator(demoPages()...)

	calls := 0
	stop := s.Subscribe(func(pagecontext.Context) { calls++ })

	stop()
	stop()

	s.Advance()
	if calls != 0 {
		t.Errorf("listener ran %d times after unsubscribe, want 0", calls)
	}
	if s.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", s.ListenerCount())
	}
}

func TestSimulator_FailRetrieval(t *testing.T) {
	s := NewSimulator(demoPages()...)
	boom := errors.New("host unavailable")

	s.FailRetrieval(boom)
	if _, err := s.RetrieveCurrent(); !errors.Is(err, boom) {
		t.Errorf("RetrieveCurrent() error = %v, want %v", err, boom)
	}

	s.FailRetrieval(nil)
	if _, err := s.RetrieveCurrent(); err != nil {
		t.Errorf("RetrieveCurrent() error = %v after reset, want nil", err)
	}
}
