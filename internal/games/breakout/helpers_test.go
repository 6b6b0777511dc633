package breakout

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/render"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

type drawCall struct {
	Texture string
	Pos     mgl32.Vec2
	Size    mgl32.Vec2
	Rotate  float32
	Color   mgl32.Vec4
	Blend   render.BlendMode
}

// recorder is a SpriteRenderer that remembers every draw.
type recorder struct {
	calls []drawCall
	blend render.BlendMode
}

func (r *recorder) DrawSprite(tex resource.Texture, pos, size mgl32.Vec2, rotate float32, color mgl32.Vec4) {
	r.calls = append(r.calls, drawCall{tex.Name, pos, size, rotate, color, r.blend})
}

func (r *recorder) SetBlendMode(mode render.BlendMode) {
	r.blend = mode
}

func (r *recorder) textures() []string {
	names := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		if len(names) == 0 || names[len(names)-1] != c.Texture {
			names = append(names, c.Texture)
		}
	}
	return names
}

// textRecorder also records text.
type textRecorder struct {
	recorder
	texts []string
}

func (r *textRecorder) DrawText(text string, _ mgl32.Vec2, _ mgl32.Vec3) {
	r.texts = append(r.texts, text)
}

func (r *textRecorder) MeasureText(text string) float32 {
	return float32(len(text)) * 8
}

func testResources() *resource.Manager {
	res := resource.NewManager()
	LoadResources(res, config.DefaultBreakoutConfig())
	return res
}

type testGame struct {
	*Game
	runs []Run
	logs *bytes.Buffer
}

// newTestGame builds a game on an 800x600 area from in-memory level files,
// or from the built-in levels when levels is nil.
func newTestGame(t *testing.T, levels fstest.MapFS, files []string, mutate func(*config.BreakoutConfig)) *testGame {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	cfg.Levels.Files = files
	cfg.Gameplay.StartInMenu = false
	cfg.Difficulty.Enabled = false
	if mutate != nil {
		mutate(&cfg)
	}

	tg := &testGame{logs: &bytes.Buffer{}}
	opts := Options{
		Config:          cfg,
		Resources:       testResources(),
		Seed:            42,
		Logger:          log.New(tg.logs),
		OnLevelComplete: func(r Run) { tg.runs = append(tg.runs, r) },
	}
	if levels != nil {
		opts.LevelFS = levels
	}
	g, err := New(opts)
	require.NoError(t, err)
	tg.Game = g
	return tg
}

func levelFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}
