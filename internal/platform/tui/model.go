// Package tui provides the Bubble Tea integration for breakout.
// It handles the terminal UI loop, input mapping, the scoreboard and the
// SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/render"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model driving one breakout game.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	renderer *render.ScreenRenderer
	style    *lipgloss.Renderer
	keys     *KeyMapper
	held     *HeldKeys
	tickRate int
	dt       float32
	now      func() time.Time
	paused   bool
	quitting bool
}

// NewModel creates a model drawing the game into a cols x rows terminal.
func NewModel(game *breakout.Game, cols, rows, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	screen := core.NewScreen(cols, rows)
	return Model{
		game:     game,
		screen:   screen,
		renderer: render.NewScreenRenderer(screen, game.Resources().Shader(breakout.ShaderSprite)),
		keys:     NewKeyMapper(),
		held:     NewHeldKeys(DefaultHoldWindow),
		tickRate: tickRate,
		dt:       core.RuntimeConfig{TickRate: tickRate}.DeltaTime(),
		now:      time.Now,
	}
}

// WithRenderer returns a copy of the model that styles output with r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.style = r
	return m
}

// Game returns the driven game.
func (m Model) Game() *breakout.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The renderer maps world units onto whatever grid it is given.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "p":
		m.paused = !m.paused
		return m, nil
	}

	k, ok, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if ok {
		m.held.Press(k, m.now())
	}
	return m, nil
}

// handleTick runs one frame: input, simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.tickRate)
	}
	m.game.Keys = m.held.State(now)
	m.game.ProcessInput(m.dt)
	m.game.Update(m.dt)
	return m, tickCmd(m.tickRate)
}

func (m Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(config.UserDir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("breakout_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// Paused reports whether the simulation is frozen.
func (m Model) Paused() bool {
	return m.paused
}

func (m Model) draw() {
	m.screen.Clear()
	m.game.Render(m.renderer)
	if m.paused {
		m.drawPause()
	}
}

func (m Model) drawPause() {
	const w, h = 24, 5
	box := core.NewRect((m.screen.Width()-w)/2, (m.screen.Height()-h)/2, w, h)
	m.screen.FillRect(box, core.ColorBlack)
	m.screen.DrawBox(box, core.ColorWhite)
	m.screen.DrawTextCentered(box.Y+1, "PAUSED", core.Color{R: 1, G: 1})
	m.screen.DrawTextCentered(box.Y+3, "p to resume", core.ColorWhite)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.style, m.screen)
}

// RunSaver returns an OnLevelComplete hook that stores each run for player.
// Save errors are logged and otherwise ignored; a nil store saves nothing.
func RunSaver(store *storage.Store, player string, logger *log.Logger) func(breakout.Run) {
	return func(run breakout.Run) {
		if store == nil {
			return
		}
		best, err := store.HighScore(run.Level)
		if err == nil && run.Score > best && logger != nil {
			logger.Info("new best score", "level", run.Level, "score", run.Score, "previous", best)
		}
		_, err = store.SaveRun(storage.RunEntry{
			Level:     run.Level,
			Player:    player,
			Score:     run.Score,
			BallsLost: run.BallsLost,
			Duration:  run.Duration,
		})
		if err != nil && logger != nil {
			logger.Warn("could not save run", "level", run.Level, "err", err)
		}
	}
}

// Run starts the Bubble Tea program for game in the alternate screen.
func Run(game *breakout.Game, cols, rows, tickRate int) error {
	p := tea.NewProgram(
		NewModel(game, cols, rows, tickRate),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
