package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/games/invaders"
)

// Smallest terminal that still shows the border, a usable field and the
// status line.
const (
	MinCols = 32
	MinRows = 12
)

const ackHint = "press any key"

// Model is the Bubble Tea model running one game.
type Model struct {
	game      *invaders.Game
	screen    *core.Screen
	canvas    *core.ScaledCanvas
	config    core.RuntimeConfig
	fixedSeed bool // Seed came from the user; reuse it on every reset
	keys      KeyMap
	help      help.Model
	held      releaser
	clock     func() time.Time
	gameState core.GameState
	gameOver  bool // Modal shown; the next key acknowledges
	quitting  bool
}

// NewModel creates a model for the game. A zero seed is replaced with the
// current time.
func NewModel(game *invaders.Game, cfg core.RuntimeConfig) Model {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH))
	fieldW, fieldH := game.FieldSize()

	m := Model{
		game:      game,
		screen:    screen,
		canvas:    core.NewScaledCanvas(screen, fieldRect(cfg.ScreenW, cfg.ScreenH), fieldW, fieldH),
		config:    cfg,
		fixedSeed: fixedSeed,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		held:      newReleaser(),
		clock:     time.Now,
	}
	m.help.Width = cfg.ScreenW
	return m
}

// screenRows is the height of the game screen; the last terminal row holds
// the status line.
func screenRows(termRows int) int {
	return core.Max(termRows-1, 0)
}

// frameRect is the border around the field.
func frameRect(cols, rows int) core.Rect {
	return core.NewRect(0, 0, cols, screenRows(rows))
}

// fieldRect is the area inside the border.
func fieldRect(cols, rows int) core.Rect {
	return core.NewRect(1, 1, cols-2, screenRows(rows)-2)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	c := m.keys.Control(msg)

	if m.gameOver {
		// Auto-repeat of a key held when the player was hit must not
		// dismiss the modal.
		if c != core.ControlNone && !m.held.press(c, m.clock()) {
			return m, nil
		}
		m.acknowledge()
		return m, nil
	}

	if c != core.ControlNone {
		m.press(c)
	}
	return m, nil
}

// press records a key-down. Terminals only repeat the last key pressed, so
// a direction key releases the opposite one.
func (m *Model) press(c core.Control) {
	switch c {
	case core.ControlLeft:
		m.release(core.ControlRight)
	case core.ControlRight:
		m.release(core.ControlLeft)
	}
	if m.held.press(c, m.clock()) {
		// A quick second tap ends the hold still open, so fire re-arms.
		m.game.Input().Release(c)
	}
	m.game.Input().Press(c)
}

func (m *Model) release(c core.Control) {
	m.held.forget(c)
	m.game.Input().Release(c)
}

// acknowledge dismisses the Game Over modal and starts a new game.
func (m *Model) acknowledge() {
	seed := m.config.Seed
	if !m.fixedSeed {
		seed = time.Now().UnixNano()
	}
	m.game.Acknowledge(seed)
	m.held.reset()
	m.gameOver = false
	m.gameState = m.game.State()
	m.game.Render(m.canvas)
}

// handleResize processes window resize events. The field is fixed in pixels,
// so only its projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.screen.Clear()
	m.canvas.SetRegion(fieldRect(msg.Width, msg.Height))
	m.help.Width = msg.Width
	m.game.Render(m.canvas)

	return m, nil
}

// handleTick releases expired keys and advances one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, c := range m.held.expire(m.clock()) {
		m.game.Input().Release(c)
	}

	result := m.game.Step(m.canvas)
	m.gameState = result.State
	if result.GameOver {
		m.gameOver = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.config.ScreenW < MinCols || m.config.ScreenH < MinRows {
		return warnStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			MinCols, MinRows, m.config.ScreenW, m.config.ScreenH))
	}

	m.screen.DrawBox(frameRect(m.config.ScreenW, m.config.ScreenH))
	if m.gameOver {
		m.drawGameOver()
	}

	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// drawGameOver draws the modal over the middle of the field.
func (m Model) drawGameOver() {
	field := m.canvas.Region()
	w := core.Min(len(ackHint)+4, field.W)
	h := 5
	y := core.Clamp(field.Y+(field.H-h)/2, field.Y, field.Bottom()-h)
	box := core.NewRect((m.screen.Width()-w)/2, y, w, h)

	m.screen.DrawRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, invaders.GameOverMessage)
	m.screen.DrawTextCentered(box.Y+3, ackHint)
}

func (m Model) statusLine() string {
	hud := hudStyle.Render(fmt.Sprintf("%s  enemies %d", m.game.Title(), m.gameState.EnemiesAlive))
	return hud + m.help.View(m.keys)
}

// GameOver reports whether the Game Over modal is shown.
func (m Model) GameOver() bool {
	return m.gameOver
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the game.
func Run(game *invaders.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
