package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/logroll/internal/core"
	"github.com/vovakirdan/logroll/internal/games/logroll"
	"github.com/vovakirdan/logroll/internal/registry"
)

// scene is the screen the model is showing.
type scene int

const (
	sceneMenu scene = iota
	scenePlay
	sceneGameOver
)

// Options configures a TUI session.
type Options struct {
	Runtime   core.RuntimeConfig
	GameID    string        // Empty opens the menu
	SeedFixed bool          // Keep Runtime.Seed across restarts
	Hold      time.Duration // How long a direction stays held after a key press
	Logger    *log.Logger
}

// Model is the Bubble Tea model hosting the game.
type Model struct {
	opts   Options
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	scene  scene
	menu   menuScene
	game   registry.Game
	gameID string

	screen  *core.Screen // Full game buffer
	view    *core.Screen // Cropped buffer when the debug panel is open
	held    *HeldKeys
	oneShot core.InputFrame

	gameState core.GameState
	snapshot  logroll.Snapshot
	result    logroll.SessionEnded

	debug    bool
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model. With a GameID it starts
// playing right away, otherwise it opens the menu.
func NewModel(opts Options) Model {
	if opts.Hold <= 0 {
		opts.Hold = DefaultHold
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg := opts.Runtime
	m := Model{
		opts:    opts,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  opts.Logger,
		menu:    newMenuScene(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		held:    NewHeldKeys(opts.Hold, cfg.TickRate),
		oneShot: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(m.playSize())
	m.view = core.NewScreen(m.playSize())

	if opts.GameID != "" {
		m.start(opts.GameID)
	}
	return m
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// playSize returns the game area: the window minus the help line.
func (m Model) playSize() (int, int) {
	return max(m.width, 1), max(m.height-1, 1)
}

// start creates and resets a game, switching to the play scene.
func (m *Model) start(id string) {
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("cannot start game", "game", id, "error", err)
		return
	}

	if !m.opts.SeedFixed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.config.ScreenW, m.config.ScreenH = m.playSize()
	game.Reset(m.config)

	if lg, ok := game.(*logroll.Game); ok && lg.ConfigErr() != nil {
		m.logger.Warn("using default config", "error", lg.ConfigErr())
	}

	m.game = game
	m.gameID = id
	m.gameState = game.State()
	m.snapshot = logroll.Snapshot{}
	m.held.Reset()
	m.oneShot.Clear()
	m.scene = scenePlay
	m.logger.Info("run started", "game", id, "seed", m.config.Seed)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionDebug {
		m.debug = !m.debug
		return m, nil
	}

	switch m.scene {
	case sceneMenu:
		switch action {
		case core.ActionUp:
			m.menu.Move(-1)
		case core.ActionDown:
			m.menu.Move(1)
		case core.ActionConfirm:
			if item, ok := m.menu.Selected(); ok {
				m.start(item.GameID)
			}
		}

	case scenePlay:
		switch action {
		case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
			m.held.Press(action)
		case core.ActionPause:
			m.oneShot.Set(core.ActionPause)
		case core.ActionBack:
			m.logger.Info("run abandoned", "game", m.gameID, "score", m.gameState.Score)
			m.scene = sceneMenu
		}

	case sceneGameOver:
		switch action {
		case core.ActionRestart, core.ActionConfirm:
			m.start(m.gameID)
		case core.ActionBack:
			m.scene = sceneMenu
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.width && msg.Height == m.height {
		return m, nil
	}
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	w, h := m.playSize()
	m.screen.Resize(w, h)
	m.config.ScreenW, m.config.ScreenH = w, h

	// The playfield scales with the terminal, so a live run starts over
	if m.scene == scenePlay && !m.gameState.GameOver {
		m.logger.Debug("restarting run after resize", "width", w, "height", h)
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.held.Reset()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scene != scenePlay {
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.oneShot.Clone()
	m.oneShot.Clear()
	m.held.Apply(&frame)

	result := m.game.Step(frame)
	m.gameState = result.State
	for _, e := range result.Events {
		m.handleEvent(e)
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvent mirrors and logs the events a tick emitted.
func (m *Model) handleEvent(e core.Event) {
	switch e := e.(type) {
	case logroll.SceneStateChanged:
		m.snapshot = e.Snapshot
	case logroll.ItemDropped:
		m.logger.Info("item dropped", "kind", e.Kind, "penalty", e.Penalty)
	case logroll.BonusApplied:
		m.logger.Info("bonus applied", "amount", e.Amount, "carried", e.Carried)
	case logroll.SessionEnded:
		m.logger.Info("session ended", "score", e.Score, "walked", e.Walked, "reason", e.Reason)
		m.result = e
		m.scene = sceneGameOver
	default:
		m.logger.Debug("event", "name", e.Name())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.playSize()
	var body string
	switch m.scene {
	case sceneMenu:
		body = m.menu.View(w, h)
	case sceneGameOver:
		body = gameOverView(m.result, w, h)
	default:
		body = m.playView()
	}

	return body + "\n" + m.help.View(helpKeys{keys: m.keys, scene: m.scene})
}

// playView renders the game, with the debug panel on the right when open.
func (m Model) playView() string {
	m.game.Render(m.screen)
	if !m.debug {
		return RenderScreen(m.screen)
	}

	panel := debugPanel(m.snapshot)
	cropScreen(m.view, m.screen, m.screen.Width()-lipgloss.Width(panel))
	return lipgloss.JoinHorizontal(lipgloss.Top, RenderScreen(m.view), panel)
}

// helpKeys selects the bindings shown in the footer for a scene.
type helpKeys struct {
	keys  KeyMap
	scene scene
}

// ShortHelp implements help.KeyMap.
func (h helpKeys) ShortHelp() []key.Binding {
	k := h.keys
	switch h.scene {
	case sceneMenu:
		return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
	case sceneGameOver:
		return []key.Binding{k.Restart, k.Back, k.Quit}
	default:
		return k.ShortHelp()
	}
}

// FullHelp implements help.KeyMap.
func (h helpKeys) FullHelp() [][]key.Binding {
	return h.keys.FullHelp()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
