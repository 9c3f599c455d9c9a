package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/board"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Model is the Bubble Tea model driving one board.
type Model struct {
	board    *board.Board
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the board.
func NewModel(b *board.Board, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	m := Model{
		board:  b,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(StepInterval)
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

// handleKey processes keyboard input. Edits are applied at once so they are
// part of the generation the next tick resolves.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.boardHeight())
	case action != core.ActionNone:
		m.board.Apply(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.boardHeight())
	return m, nil
}

// handleTick advances the board and schedules the next tick. A faulted tick
// is logged and retried on the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	rep, err := m.board.Advance()
	switch {
	case errors.Is(err, board.ErrTickFaulted):
		// Already logged by the board.
	case err != nil:
		m.logger.Error("tick failed", "error", err)
	case len(rep.Bounces) > 0 || len(rep.Duplicates) > 0:
		m.logger.Debug("tick", "n", rep.Tick, "bounces", len(rep.Bounces), "duplicates", len(rep.Duplicates))
	}

	return m, tickCmd(StepInterval)
}

// boardHeight is the screen height left for the board below the help bar.
func (m Model) boardHeight() int {
	lines := 1
	if m.help.ShowAll {
		lines = strings.Count(m.help.View(m.keys), "\n") + 1
	}
	return max(1, m.config.ScreenH-lines)
}

// saveScreenshot writes the board as plain text under ~/.bounce/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	dir := filepath.Join(home, ".bounce", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bounce_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.board.RenderText()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.board.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the board.
func Run(b *board.Board, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(b, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
