package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ember-story/internal/core"
)

// Game is what the terminal loop drives.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState

	// SceneSize is the size of the scene that Render letterboxes into the
	// screen; clicks are mapped back into it.
	SceneSize() (float64, float64)
}

// CueHandler performs audio cues.
type CueHandler interface {
	Handle(c core.Cue)
}

// RunRecorder persists finished runs.
type RunRecorder interface {
	SaveRun(run core.RunSummary) (int64, error)
}

// Options are the optional collaborators of a Model.
type Options struct {
	Audio         CueHandler         // nil plays nothing
	Runs          RunRecorder        // nil keeps no history
	Renderer      *lipgloss.Renderer // nil uses the default renderer
	Logger        *log.Logger
	ScreenshotDir string
}

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game     Game
	screen   *core.Screen
	renderer *ScreenRenderer
	opts     Options
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model

	input     core.InputFrame
	clock     tickClock
	state     core.GameState
	leftDown  bool
	quitting  bool
	lastShot  string
	helpStyle lipgloss.Style
}

// NewModel creates a model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	renderer := NewScreenRenderer(opts.Renderer)
	h := help.New()
	h.Width = cfg.ScreenW

	return &Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		renderer:  renderer,
		opts:      opts,
		logger:    logger,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		input:     core.NewInputFrame(),
		helpStyle: renderer.Renderer().NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Init resets the game and starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.state = m.game.State()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	// Quit is applied by the game on the next tick so an abandoned run is
	// still recorded.
	m.keys.Apply(msg, &m.input)
	return m, nil
}

// handleMouse records left-button releases as scene clicks. Terminals in
// X10 mode report releases without a button, so a tracked press stands in.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		m.leftDown = msg.Button == tea.MouseButtonLeft
	case tea.MouseActionRelease:
		left := msg.Button == tea.MouseButtonLeft ||
			(msg.Button == tea.MouseButtonNone && m.leftDown)
		m.leftDown = false
		if !left || msg.Y >= m.screen.Height() {
			return
		}

		w, h := m.game.SceneSize()
		view := core.NewViewport(w, h, m.screen.Width(), m.screen.Height())
		if p, ok := view.CellToScene(msg.X, msg.Y); ok {
			m.input.Click(p)
		}
	}
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
}

func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	steps := m.clock.steps(now, tickInterval(m.config.TickRate))
	for i := 0; i < steps; i++ {
		result := m.game.Step(m.input)
		m.input.Clear()
		m.state = result.State

		for _, c := range result.Cues {
			m.perform(c)
		}
		if m.state.Quit {
			break
		}
	}

	if m.state.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// perform carries out one side effect requested by the game.
func (m *Model) perform(c core.Cue) {
	if c.Kind == core.CueRunFinished {
		if m.opts.Runs == nil || c.Run == nil {
			return
		}
		if _, err := m.opts.Runs.SaveRun(*c.Run); err != nil {
			m.logger.Warn("could not record run", "outcome", c.Run.Outcome, "err", err)
		}
		return
	}

	if m.opts.Audio != nil {
		m.opts.Audio.Handle(c)
	}
}

// saveScreenshot writes the current frame as a PNG.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "ember-screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("ember_%s.png", timestamp))

	f, err := os.Create(path)
	if err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "err", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, ScreenImage(m.screen)); err != nil {
		m.logger.Warn("could not encode screenshot", "path", path, "err", err)
		return
	}
	m.lastShot = path
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state after the latest tick.
func (m *Model) State() core.GameState {
	return m.state
}

// LastScreenshot returns the path of the most recent screenshot, if any.
func (m *Model) LastScreenshot() string {
	return m.lastShot
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(m.renderer.Render(m.screen))
	if m.screen.Height() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(m.helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
