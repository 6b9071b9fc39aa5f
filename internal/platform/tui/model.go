package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/APeffer/fidgetball/internal/core"
	"github.com/APeffer/fidgetball/internal/feedback"
	"github.com/APeffer/fidgetball/internal/storage"
	"github.com/APeffer/fidgetball/internal/toy"
)

// Model is the Bubble Tea model for a fidget ball session.
type Model struct {
	toy          *toy.Toy
	screen       *core.Screen
	store        *storage.Store
	audio        *feedback.AudioSink
	source       string // motion source ID, recorded with the session
	config       core.RuntimeConfig
	inputFrame   core.InputFrame
	state        core.State
	keys         *KeyMapper
	quitting     bool
	sessionSaved bool
}

// NewModel creates a new Bubble Tea model around an initialized toy.
// audio may be nil when no local speaker is available (SSH sessions).
func NewModel(t *toy.Toy, store *storage.Store, audio *feedback.AudioSink, source string, cfg core.RuntimeConfig) Model {
	return Model{
		toy:        t,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		audio:      audio,
		source:     source,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
	}
}

// Init starts the tick loop. The toy is reset by the caller before the
// program starts, so the first frame already has a playfield.
func (m Model) Init() tea.Cmd {
	m.toy.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Any key press counts as a user
// gesture, which is what unlocks the audio device.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.audio != nil && !m.audio.Ready() {
		//nolint:errcheck // No speaker just means silent blips
		m.audio.Init()
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The toy re-clamps the ball
// into the new playfield instead of recentering, so a resize never teleports
// the ball.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.toy.Reset(m.config)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.toy.Step(m.inputFrame)
	m.state = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveSession records the session stats. Best effort: the toy keeps working
// without a database.
func (m *Model) saveSession() {
	if m.store == nil || m.sessionSaved {
		return
	}
	m.sessionSaved = true

	stats := m.toy.Stats()
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.SaveSession(storage.SessionEntry{
		Source:       m.source,
		WallHits:     stats.WallHits,
		ZoneTriggers: stats.ZoneTriggers,
		MaxSpeed:     stats.MaxSpeed,
		DurationSecs: int(time.Since(stats.StartedAt).Seconds()),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.toy.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(t *toy.Toy, store *storage.Store, audio *feedback.AudioSink, source string, cfg core.RuntimeConfig) error {
	t.Reset(cfg)
	model := NewModel(t, store, audio, source, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
