package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studyflow/studyflow/internal/session"
)

type frozenClock struct {
	now time.Time
}

func (c *frozenClock) Now() time.Time { return c.now }

type watchFixture struct {
	clock   *frozenClock
	tracker *session.Tracker
	active  *session.MemStore
}

func newWatchFixture(t *testing.T) (WatchModel, *watchFixture) {
	t.Helper()
	clock := &frozenClock{now: time.Date(2026, 3, 20, 9, 0, 0, 0, time.Local)}
	active := session.NewMemStore()
	tracker := session.NewTracker(active, nil, clock)
	if _, err := tracker.Start(context.Background(), "subj-1"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	fx := &watchFixture{clock: clock, tracker: tracker, active: active}
	return NewWatch(tracker, clock, "Algebra"), fx
}

func TestWatchModel_ViewShowsElapsed(t *testing.T) {
	m, fx := newWatchFixture(t)
	fx.clock.now = fx.clock.now.Add(125 * time.Second)

	updated, _ := m.Update(m.refresh())
	m = updated.(WatchModel)

	view := m.View()
	if !strings.Contains(view, "02:05") {
		t.Errorf("view should show reconstructed elapsed time, got:\n%s", view)
	}
	if !strings.Contains(view, "Algebra") {
		t.Errorf("view should show the subject name, got:\n%s", view)
	}
}

func TestWatchModel_PauseKeyFreezesTimer(t *testing.T) {
	m, fx := newWatchFixture(t)
	fx.clock.now = fx.clock.now.Add(60 * time.Second)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = updated.(WatchModel)
	if cmd == nil {
		t.Fatal("pause should schedule a refresh")
	}
	updated, _ = m.Update(cmd())
	m = updated.(WatchModel)

	fx.clock.now = fx.clock.now.Add(time.Hour)
	if !strings.Contains(m.View(), "01:00") {
		t.Errorf("paused view should freeze at 01:00, got:\n%s", m.View())
	}

	sess, err := fx.tracker.Current(context.Background())
	if err != nil || sess == nil || !sess.IsPaused {
		t.Errorf("tracker should hold a paused session, got %+v err=%v", sess, err)
	}
}

func TestWatchModel_QuitsWhenSessionGone(t *testing.T) {
	m, fx := newWatchFixture(t)

	// Simulate the session being finalized elsewhere.
	if err := fx.active.Clear(context.Background()); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	_, cmd := m.Update(m.refresh())
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if msg := cmd(); msg == nil {
		t.Error("expected a quit message")
	} else if _, ok := msg.(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", msg)
	}
}
