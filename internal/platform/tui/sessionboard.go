package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/APeffer/fidgetball/internal/core"
	"github.com/APeffer/fidgetball/internal/storage"
)

const maxSessions = 100 // Max sessions to load

// SessionBoardKeyMap defines the key bindings for the session history screen.
type SessionBoardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionBoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionBoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultSessionBoardKeyMap returns default key bindings.
func DefaultSessionBoardKeyMap() SessionBoardKeyMap {
	return SessionBoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionBoardModel is the Bubble Tea model for the session history screen.
type SessionBoardModel struct {
	store    *storage.Store
	sessions []storage.SessionEntry
	stats    storage.SessionStats
	table    table.Model
	help     help.Model
	keys     SessionBoardKeyMap
	width    int
	height   int
	quitting bool
}

// NewSessionBoardModel creates a new session history model.
func NewSessionBoardModel(store *storage.Store, width, height int) SessionBoardModel {
	h := help.New()
	h.ShowAll = false

	m := SessionBoardModel{
		store:  store,
		keys:   DefaultSessionBoardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadSessions()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *SessionBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Source", Width: 8},
		{Title: "Hits", Width: 6},
		{Title: "Zones", Width: 6},
		{Title: "Top Speed", Width: 10},
		{Title: "Duration", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 4)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads recent sessions and aggregate stats.
func (m *SessionBoardModel) loadSessions() {
	if m.store == nil {
		m.sessions = nil
		m.updateTableRows()
		return
	}

	sessions, err := m.store.RecentSessions(maxSessions)
	if err != nil {
		m.sessions = nil
	} else {
		m.sessions = sessions
	}

	if stats, err := m.store.Stats(); err == nil {
		m.stats = stats
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *SessionBoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			s.CreatedAt.Format("Jan 02 15:04"),
			s.Source,
			fmt.Sprintf("%d", s.WallHits),
			fmt.Sprintf("%d", s.ZoneTriggers),
			fmt.Sprintf("%.1f", s.MaxSpeed),
			fmt.Sprintf("%ds", s.DurationSecs),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the session board model.
func (m SessionBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session board.
func (m SessionBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the session board.
func (m SessionBoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("RECENT SESSIONS"))
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No sessions recorded yet.\nRun `fidgetball play` to tilt the ball around!"))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))

		summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString("\n")
		b.WriteString(summaryStyle.Render(fmt.Sprintf(
			"%d sessions | %d wall hits | best speed %.1f",
			m.stats.Sessions, m.stats.TotalWallHits, m.stats.BestMaxSpeed,
		)))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunSessionBoard runs the session history screen.
func RunSessionBoard(store *storage.Store, width, height int) error {
	model := NewSessionBoardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
