package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dangerzone/internal/core"
	"github.com/vovakirdan/tui-dangerzone/internal/games/dangerzone"
	"github.com/vovakirdan/tui-dangerzone/internal/ledger"
)

// RoundRecorder stores finished rounds. *storage.Store implements it.
type RoundRecorder interface {
	SaveRound(score int, duration time.Duration) (int64, error)
}

// Options configures the game model.
type Options struct {
	Config        core.RuntimeConfig
	Rounds        RoundRecorder // Optional
	Logger        *log.Logger   // Optional
	ShowTier      bool
	ScreenshotDir string // Defaults to ~/.dangerzone/screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	session  *dangerzone.Session
	screen   *core.Screen
	rounds   RoundRecorder
	logger   *log.Logger
	keys     *KeyMapper
	name     textinput.Model
	config   core.RuntimeConfig
	opts     Options
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model driving the given session.
func NewModel(session *dangerzone.Session, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = 60
	}

	name := textinput.New()
	name.Placeholder = ledger.DefaultName
	name.CharLimit = ledger.MaxNameLen
	name.Prompt = ""

	return Model{
		session: session,
		screen:  core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		rounds:  opts.Rounds,
		logger:  opts.Logger,
		keys:    NewKeyMapper(),
		name:    name,
		config:  opts.Config,
		opts:    opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// The world is logical, so a resize only changes the scale
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	// Cursor blink and other textinput messages
	if m.session.State() == dangerzone.StateHighScoreEntry {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if m.session.State() == dangerzone.StateHighScoreEntry {
		switch m.keys.MapKey(msg) {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionConfirm:
			name := m.name.Value()
			if err := m.session.SubmitName(name); err != nil {
				m.logger.Warn("cannot save high score", "err", err)
			} else {
				m.logger.Info("high score saved", "name", ledger.CleanName(name))
			}
			m.name.Reset()
			m.name.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}

	res := m.session.OnInput(m.keys.MapKey(msg))
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	res := m.session.Update(dt)
	if res.EnteredGameOver {
		m.recordRound()
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if res.EnteredHighScoreEntry {
		m.name.Reset()
		cmds = append(cmds, m.name.Focus())
	}
	return m, tea.Batch(cmds...)
}

// recordRound saves the finished round, best effort.
func (m *Model) recordRound() {
	score := m.session.Score()
	duration := time.Duration(m.session.RoundTime() * float64(time.Second))
	m.logger.Info("round over", "score", score, "duration", duration.Round(time.Millisecond))
	if m.rounds == nil {
		return
	}
	if _, err := m.rounds.SaveRound(score, duration); err != nil {
		m.logger.Warn("cannot record round", "err", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot locate home directory for screenshot", "err", err)
			return
		}
		dir = filepath.Join(home, ".dangerzone", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dangerzone_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m *Model) draw() {
	dangerzone.Render(m.screen, m.session, dangerzone.RenderOptions{
		NameField: m.name.Value(),
		ShowTier:  m.opts.ShowTier,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Session returns the driven session.
func (m Model) Session() *dangerzone.Session {
	return m.session
}

// Run starts the Bubble Tea program for the given session.
func Run(session *dangerzone.Session, opts Options) error {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
