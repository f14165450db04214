package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strataconf/strata"
)

const liveRefreshRate = time.Second

// runLive starts the live settings view.
func runLive(ctx context.Context, sources []strata.Source) error {
	model := newLiveModel(ctx, sources)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("live view failed: %w", err)
	}
	return nil
}

// liveModel holds the state for the live settings view.
type liveModel struct {
	ctx        context.Context
	sources    []strata.Source
	rendered   string
	paused     bool
	lastUpdate time.Time
	err        error
}

type tickMsg time.Time

type settingsMsg struct {
	settings *strata.Settings
	err      error
}

func newLiveModel(ctx context.Context, sources []strata.Source) liveModel {
	return liveModel{ctx: ctx, sources: sources}
}

func (m liveModel) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.resolveCmd())
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			return m, nil
		case "r":
			return m, m.resolveCmd()
		}

	case tickMsg:
		if m.paused {
			return m, m.tickCmd()
		}
		return m, tea.Batch(m.tickCmd(), m.resolveCmd())

	case settingsMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.rendered = renderSettings(msg.settings)
		}
		m.lastUpdate = time.Now()
		return m, nil
	}

	return m, nil
}

func (m liveModel) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render("strata: live settings")

	body := m.rendered
	if m.err != nil {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("resolution failed: %v", m.err))
	}
	if body == "" {
		body = "resolving..."
	}

	status := fmt.Sprintf("updated %s", m.lastUpdate.Format("15:04:05"))
	if m.paused {
		status = "paused"
	}
	footer := originStyle.Render(fmt.Sprintf("%s | space: pause | r: refresh | q: quit", status))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, footer)
}

func (m liveModel) tickCmd() tea.Cmd {
	return tea.Tick(liveRefreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m liveModel) resolveCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := strata.Discover(m.ctx, m.sources...)
		return settingsMsg{settings: settings, err: err}
	}
}
