package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/loop"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Options configures the terminal front end.
type Options struct {
	Runtime    core.RuntimeConfig
	PollHz     int
	SimHz      int
	HoldWindow time.Duration
	Background core.Color
	Logger     *log.Logger
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game     registry.Game
	opts     Options
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	held     *HoldTracker
	sched    *loop.Scheduler
	logger   *log.Logger
	state    core.GameState
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     game,
		opts:     opts,
		screen:   core.NewScreen(opts.Runtime.ScreenW, playHeight(opts.Runtime.ScreenH)),
		renderer: NewRenderer(opts.Background),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		held:     NewHoldTracker(opts.HoldWindow),
		sched:    loop.NewScheduler(opts.SimHz),
		logger:   logger,
	}
	m.restart()
	return m
}

// playHeight leaves one row for the help footer.
func playHeight(h int) int {
	return max(1, h-1)
}

// restart begins a new run.
func (m *Model) restart() {
	m.game.Reset(m.opts.Runtime)
	m.state = m.game.State()
	m.held.Reset()
	m.sched.Reset()
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.opts.Runtime.Seed)
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.PollHz)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.poll(time.Time(msg))
		return m, tickCmd(m.opts.PollHz)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score, "wave", m.state.Wave)
		return m, tea.Quit
	case core.ActionRestart:
		if m.state.GameOver {
			m.opts.Runtime.Seed = now.UnixNano()
			m.restart()
		}
	default:
		m.held.Observe(a, now)
	}
	return m, nil
}

// poll feeds one input frame to the game and steps it when the simulation
// cadence is due. A stopped game is left alone until restart.
func (m *Model) poll(now time.Time) {
	if m.state.GameOver {
		return
	}
	m.game.Control(m.held.Frame(now))
	if !m.sched.Due(now) {
		return
	}

	res := m.game.Step()
	m.state = res.State
	for _, d := range res.Destroyed {
		m.logger.Debug("destroyed", "kind", d.Kind, "tier", d.Tier, "x", d.Position.X, "y", d.Position.Y)
	}
	if m.state.GameOver {
		m.logger.Info("game over", "score", m.state.Score, "wave", m.state.Wave)
	}
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
