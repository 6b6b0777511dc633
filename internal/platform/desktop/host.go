package desktop

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// bindings maps game keys to the physical keys that hold them.
var bindings = map[core.Key][]ebiten.Key{
	core.KeyLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.KeyRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
	core.KeyLaunch: {ebiten.KeySpace},
	core.KeyUp:     {ebiten.KeyW, ebiten.KeyArrowUp},
	core.KeyDown:   {ebiten.KeyS, ebiten.KeyArrowDown},
	core.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
}

// Host implements ebiten.Game for one breakout game.
type Host struct {
	game     *breakout.Game
	renderer *Renderer
	dt       float32
	pressed  func(ebiten.Key) bool
}

// NewHost creates a host stepping game at tickRate frames per second.
func NewHost(game *breakout.Game, tickRate int, logger *log.Logger) *Host {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return &Host{
		game:     game,
		renderer: NewRenderer(logger),
		dt:       core.RuntimeConfig{TickRate: tickRate}.DeltaTime(),
		pressed:  ebiten.IsKeyPressed,
	}
}

// Update reads the keyboard and advances one frame. Escape quits.
func (h *Host) Update() error {
	if h.pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	h.game.Keys = h.keyState()
	h.game.ProcessInput(h.dt)
	h.game.Update(h.dt)
	return nil
}

func (h *Host) keyState() core.KeyState {
	var s core.KeyState
	for k, keys := range bindings {
		for _, key := range keys {
			if h.pressed(key) {
				s.Set(k, true)
				break
			}
		}
	}
	return s
}

// Draw renders the game onto the window.
func (h *Host) Draw(screen *ebiten.Image) {
	h.renderer.SetTarget(screen)
	h.game.Render(h.renderer)
}

// Layout keeps the logical screen at the play-area size; Ebiten scales it
// to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return int(h.game.Width), int(h.game.Height)
}

// Run opens a window and plays until it is closed or Escape is pressed.
func Run(game *breakout.Game, tickRate int, logger *log.Logger) error {
	host := NewHost(game, tickRate, logger)

	ebiten.SetWindowSize(int(game.Width), int(game.Height))
	ebiten.SetWindowTitle("Breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(1/host.dt + 0.5))

	return ebiten.RunGame(host)
}
