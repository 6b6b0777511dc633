package desktop

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/render"
)

func newTestHost(t *testing.T, held ...ebiten.Key) *Host {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.StartInMenu = false
	cfg.Difficulty.Enabled = false
	game, err := breakout.New(breakout.Options{Config: cfg, Seed: 1})
	require.NoError(t, err)

	h := NewHost(game, 60, nil)
	h.pressed = func(k ebiten.Key) bool {
		for _, want := range held {
			if k == want {
				return true
			}
		}
		return false
	}
	return h
}

func TestHostKeyState(t *testing.T) {
	h := newTestHost(t, ebiten.KeyArrowLeft, ebiten.KeySpace, ebiten.KeyNumpadEnter)
	s := h.keyState()

	assert.True(t, s.Held(core.KeyLeft))
	assert.True(t, s.Held(core.KeyLaunch))
	assert.True(t, s.Held(core.KeyEnter))
	assert.False(t, s.Held(core.KeyRight))
	assert.False(t, s.Held(core.KeyUp))
}

func TestHostUpdateStepsGame(t *testing.T) {
	h := newTestHost(t, ebiten.KeyD, ebiten.KeySpace)
	start := h.game.Player().Position.X()

	require.NoError(t, h.Update())
	assert.Greater(t, h.game.Player().Position.X(), start)
	assert.False(t, h.game.Ball().Stuck)
}

func TestHostEscapeTerminates(t *testing.T) {
	h := newTestHost(t, ebiten.KeyEscape)
	assert.True(t, errors.Is(h.Update(), ebiten.Termination))
}

func TestHostLayout(t *testing.T) {
	h := newTestHost(t)
	w, hh := h.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, hh)
}

func TestSpriteGeoM(t *testing.T) {
	g := spriteGeoM(16, 16, mgl32.Vec2{100, 50}, mgl32.Vec2{32, 8}, 0)
	x, y := g.Apply(0, 0)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
	x, y = g.Apply(16, 16)
	assert.InDelta(t, 132, x, 1e-9)
	assert.InDelta(t, 58, y, 1e-9)

	// A quarter turn keeps the center fixed.
	g = spriteGeoM(16, 16, mgl32.Vec2{100, 100}, mgl32.Vec2{100, 20}, 90)
	x, y = g.Apply(8, 8)
	assert.InDelta(t, 150, x, 1e-6)
	assert.InDelta(t, 110, y, 1e-6)
	x, y = g.Apply(0, 0)
	assert.InDelta(t, 160, x, 1e-6)
	assert.InDelta(t, 60, y, 1e-6)
}

func TestBlendFor(t *testing.T) {
	assert.Equal(t, ebiten.BlendLighter, blendFor(render.BlendAdditive))
	assert.Equal(t, ebiten.BlendSourceOver, blendFor(render.BlendAlpha))
}

func TestMeasureText(t *testing.T) {
	r := NewRenderer(nil)
	assert.Equal(t, float32(60), r.MeasureText("Press here"))
}
