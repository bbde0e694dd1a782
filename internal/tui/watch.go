// Package tui provides the live session timer view.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/model"
	"github.com/studyflow/studyflow/internal/service"
	"github.com/studyflow/studyflow/internal/session"
	"github.com/studyflow/studyflow/internal/timefmt"
)

type tickMsg time.Time

// WatchModel renders the active session and its elapsed time. Every tick
// re-reads the persisted active-session record and reconstructs elapsed time
// from timestamps, so the display is correct even after the process was
// suspended between ticks.
type WatchModel struct {
	tracker     *session.Tracker
	clock       service.Clock
	sess        *model.StudySession
	err         error
	subjectName string
}

// NewWatch creates the watch model for the given tracker.
func NewWatch(tracker *session.Tracker, clock service.Clock, subjectName string) WatchModel {
	return WatchModel{
		tracker:     tracker,
		clock:       clock,
		subjectName: subjectName,
	}
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.refresh, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type sessionMsg struct {
	sess *model.StudySession
	err  error
}

func (m WatchModel) refresh() tea.Msg {
	sess, err := m.tracker.Current(context.Background())
	return sessionMsg{sess: sess, err: err}
}

// Update handles ticks and key presses.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tea.Batch(m.refresh, tickCmd())

	case sessionMsg:
		m.sess = msg.sess
		m.err = msg.err
		if m.err == nil && m.sess == nil {
			// Session was finalized elsewhere; nothing left to watch.
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "p":
			_, _ = m.tracker.Pause(context.Background())
			return m, m.refresh
		case "r":
			_, _ = m.tracker.Resume(context.Background())
			return m, m.refresh
		}
	}

	return m, nil
}

// View renders the timer.
func (m WatchModel) View() string {
	if m.err != nil {
		return cli.FormatError(m.err.Error()) + "\n"
	}
	if m.sess == nil {
		return cli.SubtleStyle.Render("no active session") + "\n"
	}

	elapsed := m.sess.ElapsedSecAt(m.clock.Now())

	state := cli.SuccessStyle.Render("studying")
	if m.sess.IsPaused {
		state = cli.WarningStyle.Render("paused")
	}

	lines := []string{
		cli.TitleStyle.Render(cli.BookIcon + " " + m.subjectName),
		cli.TimerStyle.Render(timefmt.Clock(elapsed)) + "  " + state,
		cli.SubtleStyle.Render("p pause · r resume · q quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

// RunWatch runs the watch view until the user quits or the session ends.
func RunWatch(tracker *session.Tracker, clock service.Clock, subjectName string) error {
	program := tea.NewProgram(NewWatch(tracker, clock, subjectName))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("watch view failed: %w", err)
	}
	return nil
}
