package breakout

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/render"
)

const dt = float32(1) / 60

func frame(g *Game, keys ...core.Key) {
	g.Keys.Clear()
	for _, k := range keys {
		g.Keys.Set(k, true)
	}
	g.ProcessInput(dt)
	g.Update(dt)
}

func TestNewGamePlacesPaddleAndBall(t *testing.T) {
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2 2\n0 1"}), []string{"a.lvl"}, nil)

	assert.Equal(t, StateActive, g.State)
	assert.Equal(t, mgl32.Vec2{350, 580}, g.Player().Position)
	assert.Equal(t, mgl32.Vec2{387.5, 555}, g.Ball().Position)
	assert.Equal(t, mgl32.Vec2{100, -350}, g.Ball().Velocity)
	assert.True(t, g.Ball().Stuck)

	lvl := g.CurrentLevel()
	require.NotNil(t, lvl)
	assert.Equal(t, "a", lvl.Name)
	assert.Len(t, lvl.Bricks, 3)
	assert.Equal(t, mgl32.Vec2{400, 150}, lvl.Bricks[0].Size, "levels fill the top half")
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Ball.Radius = 0
	_, err := New(Options{Config: cfg})
	assert.Error(t, err)
}

func TestProcessInputMovesPaddleAndStuckBall(t *testing.T) {
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2"}), []string{"a.lvl"}, nil)
	step := float32(500) * dt

	g.Keys.Set(core.KeyLeft, true)
	g.ProcessInput(dt)
	assert.InDelta(t, 350-step, g.Player().Position.X(), 1e-3)
	assert.InDelta(t, 387.5-step, g.Ball().Position.X(), 1e-3)

	// Holding left long enough clamps at the wall and the ball stops with it.
	for range 200 {
		g.ProcessInput(dt)
	}
	assert.Equal(t, float32(0), g.Player().Position.X())
	assert.InDelta(t, 37.5, g.Ball().Position.X(), 1e-2)

	g.Keys.Clear()
	g.Keys.Set(core.KeyRight, true)
	for range 200 {
		g.ProcessInput(dt)
	}
	assert.Equal(t, float32(700), g.Player().Position.X())
	assert.InDelta(t, 737.5, g.Ball().Position.X(), 1e-2)
}

func TestLaunchFreesBall(t *testing.T) {
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2"}), []string{"a.lvl"}, nil)

	frame(g.Game)
	assert.True(t, g.Ball().Stuck)
	assert.Equal(t, mgl32.Vec2{387.5, 555}, g.Ball().Position)

	frame(g.Game, core.KeyLaunch)
	assert.False(t, g.Ball().Stuck)
	assert.Less(t, g.Ball().Position.Y(), float32(555))

	// A free ball is not carried by the paddle.
	x := g.Ball().Position.X()
	g.Keys.Clear()
	g.Keys.Set(core.KeyLeft, true)
	g.ProcessInput(dt)
	assert.Equal(t, x, g.Ball().Position.X())
}

func TestMenuSelectsLevelAndStarts(t *testing.T) {
	files := map[string]string{"a.lvl": "2", "b.lvl": "3 3", "c.lvl": "4 4 4"}
	g := newTestGame(t, levelFS(files), []string{"a.lvl", "b.lvl", "c.lvl"}, func(c *config.BreakoutConfig) {
		c.Gameplay.StartInMenu = true
	})
	require.Equal(t, StateMenu, g.State)

	frame(g.Game, core.KeyDown)
	assert.Equal(t, 1, g.Level)
	frame(g.Game, core.KeyDown) // still held: no repeat
	assert.Equal(t, 1, g.Level)
	frame(g.Game)
	frame(g.Game, core.KeyUp)
	frame(g.Game)
	frame(g.Game, core.KeyUp)
	assert.Equal(t, 2, g.Level, "up wraps from the first level to the last")

	frame(g.Game, core.KeyEnter)
	assert.Equal(t, StateActive, g.State)
	assert.Equal(t, "c", g.CurrentLevel().Name)

	// Keys in active play leave the menu selection alone.
	frame(g.Game)
	frame(g.Game, core.KeyDown)
	assert.Equal(t, 2, g.Level)
}

func TestBallLostResetsLevelAndPlayer(t *testing.T) {
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2 3\n1 4"}), []string{"a.lvl"}, nil)
	lvl := g.CurrentLevel()
	require.True(t, lvl.Bricks[0].Destroy())
	require.Equal(t, 2, lvl.Remaining())

	g.Player().Position[0] = 100
	g.Ball().Stuck = false
	g.Ball().Position = mgl32.Vec2{300, g.Height + 1}
	g.Ball().Velocity = mgl32.Vec2{0, 400}

	g.Update(dt)

	assert.True(t, g.Ball().Stuck)
	assert.Equal(t, mgl32.Vec2{387.5, 555}, g.Ball().Position)
	assert.Equal(t, mgl32.Vec2{100, -350}, g.Ball().Velocity)
	assert.Equal(t, mgl32.Vec2{350, 580}, g.Player().Position)
	assert.Equal(t, 3, lvl.Remaining(), "bricks return to the file layout")
	assert.Equal(t, 1, g.Status().BallsLost)
	assert.Equal(t, StateActive, g.State)
}

func TestBrickHitScoresAndWins(t *testing.T) {
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2"}), []string{"a.lvl"}, nil)
	require.Len(t, g.CurrentLevel().Bricks, 1)

	// Brick covers (0,0)-(800,300); the ball rises into its bottom face.
	g.Ball().Stuck = false
	g.Ball().Position = mgl32.Vec2{400, 300}
	g.Ball().Velocity = mgl32.Vec2{0, -350}

	g.Update(dt)

	assert.Equal(t, StateWin, g.State)
	require.Len(t, g.runs, 1)
	assert.Equal(t, Run{Level: "a", LevelIndex: 0, Score: 10, BallsLost: 0, Duration: g.runs[0].Duration}, g.runs[0])
	assert.Positive(t, g.runs[0].Duration)
	assert.Contains(t, g.logs.String(), "level complete")

	// The level is ready for another go.
	assert.False(t, g.CurrentLevel().IsCompleted())
	assert.True(t, g.Ball().Stuck)

	frame(g.Game, core.KeyEnter)
	assert.Equal(t, StateMenu, g.State)
}

func TestBrickBounceKeepsPlaying(t *testing.T) {
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2 2"}), []string{"a.lvl"}, nil)

	g.Ball().Stuck = false
	g.Ball().Position = mgl32.Vec2{100, 300}
	g.Ball().Velocity = mgl32.Vec2{0, -350}
	g.Update(dt)

	lvl := g.CurrentLevel()
	assert.True(t, lvl.Bricks[0].Destroyed)
	assert.False(t, lvl.Bricks[1].Destroyed)
	assert.Equal(t, float32(350), g.Ball().Velocity.Y())
	assert.Equal(t, 10, g.Status().Score)
	assert.Equal(t, StateActive, g.State)
	assert.Equal(t, 2, g.Particles().Alive())
}

func TestSeamHitResolvesBricksInOrder(t *testing.T) {
	// Bricks (0,0)-(400,300) and (400,0)-(800,300) meet at x=400.
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2 2"}), []string{"a.lvl"}, nil)
	ball := g.Ball()
	ball.Stuck = false
	ball.Position = mgl32.Vec2{400 - ball.Radius, 307.5 - ball.Radius}
	ball.Velocity = mgl32.Vec2{0, -350}

	g.DoCollisions()

	// The first brick pushes the ball down onto the second brick's edge,
	// which flips it back.
	lvl := g.CurrentLevel()
	assert.True(t, lvl.Bricks[0].Destroyed)
	assert.True(t, lvl.Bricks[1].Destroyed)
	assert.Equal(t, mgl32.Vec2{0, -350}, ball.Velocity)
	assert.Equal(t, mgl32.Vec2{387.5, 300}, ball.Position)
	assert.Equal(t, 20, g.Status().Score)
}

func TestBallLostRestartsScore(t *testing.T) {
	// Three breakable bricks of 400x150 around one solid brick.
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2 3\n1 4"}), []string{"a.lvl"}, nil)
	const points = 10
	maxScore := 3 * points

	hit := func(cx, cy float32) {
		b := g.Ball()
		b.Stuck = false
		b.Position = mgl32.Vec2{cx - b.Radius, cy - b.Radius}
		b.Velocity = mgl32.Vec2{0, -350}
		g.DoCollisions()
	}

	for range 5 {
		hit(200, -5)
		require.Equal(t, points, g.Status().Score)
		g.Ball().Position = mgl32.Vec2{300, g.Height + 1}
		g.Update(dt)
		assert.LessOrEqual(t, g.Status().Score, maxScore)
	}
	assert.Equal(t, 0, g.Status().Score)
	assert.Equal(t, 5, g.Status().BallsLost)
	assert.Equal(t, 3, g.CurrentLevel().Remaining())

	hit(200, -5)
	hit(600, -5)
	hit(600, 305)
	g.Ball().Position = mgl32.Vec2{100, 400}
	g.Ball().Velocity = mgl32.Vec2{0, -350}
	g.Update(dt)

	require.Len(t, g.runs, 1)
	assert.Equal(t, maxScore, g.runs[0].Score)
	assert.Equal(t, 5, g.runs[0].BallsLost)
	assert.Less(t, g.runs[0].Duration, time.Second, "the run times the last attempt")
}

func TestPaddleBounceInGame(t *testing.T) {
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2"}), []string{"a.lvl"}, nil)

	g.Ball().Stuck = false
	g.Ball().Position = mgl32.Vec2{420, 560}
	g.Ball().Velocity = mgl32.Vec2{-150, 300}
	speed := g.Ball().Velocity.Len()

	g.Update(dt)

	assert.Less(t, g.Ball().Velocity.Y(), float32(0))
	assert.Greater(t, g.Ball().Velocity.X(), float32(0), "right of center sends the ball right")
	assert.InDelta(t, speed, g.Ball().Velocity.Len(), 1e-3)
}

func TestMissingLevelFileIsLoggedAndCompletesImmediately(t *testing.T) {
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2"}), []string{"missing.lvl", "a.lvl"}, nil)

	assert.Contains(t, g.logs.String(), "level failed to load")
	require.Len(t, g.Levels, 2)
	assert.Empty(t, g.Levels[0].Bricks)

	frame(g.Game)
	assert.Equal(t, StateWin, g.State)
	require.Len(t, g.runs, 1)
	assert.Equal(t, "missing", g.runs[0].Level)
}

func TestRenderOrder(t *testing.T) {
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "1 2"}), []string{"a.lvl"}, nil)
	frame(g.Game, core.KeyLaunch)
	frame(g.Game)

	rec := &recorder{}
	g.Render(rec)

	assert.Equal(t,
		[]string{TexBackground, TexBlockSolid, TexBlock, TexPaddle, TexParticle, TexBall},
		rec.textures())
	last := rec.calls[len(rec.calls)-1]
	assert.Equal(t, TexBall, last.Texture)
	assert.Equal(t, mgl32.Vec2{25, 25}, last.Size)
	assert.Equal(t, render.BlendAlpha, last.Blend, "ball is drawn after blending is restored")
	assert.Equal(t, mgl32.Vec4{0.05, 0.05, 0.12, 1}, rec.calls[0].Color)
}

func TestRenderTextOverlays(t *testing.T) {
	g := newTestGame(t, levelFS(map[string]string{"a.lvl": "2"}), []string{"a.lvl"}, func(c *config.BreakoutConfig) {
		c.Gameplay.StartInMenu = true
	})

	rec := &textRecorder{}
	g.Render(rec)
	require.NotEmpty(t, rec.texts)
	assert.Contains(t, rec.texts[0], "Level 1/1 a")
	assert.Contains(t, rec.texts, "Press ENTER to start")
}

func TestGameDeterminism(t *testing.T) {
	script := func(i int) []core.Key {
		switch {
		case i == 10:
			return []core.Key{core.KeyLaunch}
		case i > 10 && i%7 < 3:
			return []core.Key{core.KeyRight}
		case i > 10:
			return []core.Key{core.KeyLeft}
		}
		return nil
	}
	run := func() Snapshot {
		g := newTestGame(t, nil, []string{"one.lvl", "two.lvl"}, nil)
		for i := range 600 {
			frame(g.Game, script(i)...)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, snap1.Score, snap2.Score)
	assert.Equal(t, snap1.Ball, snap2.Ball)
}

func TestSnapshotRestore(t *testing.T) {
	files := levelFS(map[string]string{"a.lvl": "2 3 4\n0 1 0"})
	g1 := newTestGame(t, files, []string{"a.lvl"}, nil)
	frame(g1.Game, core.KeyRight)
	frame(g1.Game, core.KeyLaunch)
	for range 30 {
		frame(g1.Game)
	}
	g1.CurrentLevel().Bricks[2].Destroy()
	snap := g1.Snapshot()

	g2 := newTestGame(t, files, []string{"a.lvl"}, nil)
	g2.ApplySnapshot(snap)
	restored := g2.Snapshot()

	assert.Equal(t, snap.Hash(), restored.Hash())
	assert.True(t, g2.CurrentLevel().Bricks[2].Destroyed)
	assert.False(t, g2.Ball().Stuck)
}

func TestSelectLevel(t *testing.T) {
	files := map[string]string{"a.lvl": "2", "b.lvl": "3 3"}
	g := newTestGame(t, levelFS(files), []string{"a.lvl", "b.lvl"}, nil)

	require.NoError(t, g.SelectLevel(1))
	assert.Equal(t, "b", g.CurrentLevel().Name)
	assert.Equal(t, StateActive, g.State)
	assert.True(t, g.Ball().Stuck)

	assert.Error(t, g.SelectLevel(2))
	assert.Error(t, g.SelectLevel(-1))
	assert.Equal(t, 1, g.Level)
}
