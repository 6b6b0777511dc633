package breakout

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/render"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// Texture and shader names the game looks up.
const (
	TexBackground = "background"
	TexBall       = "face"
	TexBlock      = "block"
	TexBlockSolid = "block_solid"
	TexPaddle     = "paddle"
	TexParticle   = "particle"
	ShaderSprite  = "sprite"
)

// State is the top-level game state.
type State int

const (
	StateActive State = iota // Playing a level
	StateMenu                // Choosing a level
	StateWin                 // Level cleared
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateMenu:
		return "menu"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// Run summarizes a cleared level.
type Run struct {
	Level      string
	LevelIndex int
	Score      int
	BallsLost  int
	Duration   time.Duration
}

// Options configures a new Game.
type Options struct {
	Config    config.BreakoutConfig
	Resources *resource.Manager // Nil loads a private manager from Config
	LevelFS   fs.FS             // Nil uses Config.Levels.Dir or the built-in levels
	Seed      int64
	Logger    *log.Logger // Nil discards logs
	// OnLevelComplete is called once each time a level is cleared.
	OnLevelComplete func(Run)
}

// Game owns every piece of play state and steps it one frame at a time:
// ProcessInput, then Update, then Render.
type Game struct {
	State State
	// Keys is refreshed by the host before each ProcessInput.
	Keys   core.KeyState
	Width  float32
	Height float32
	Levels []*Level
	Level  int // Index into Levels

	prevKeys   core.KeyState
	background Entity
	player     *Entity
	ball       *Ball
	particles  *ParticlePool

	cfg        config.BreakoutConfig
	res        *resource.Manager
	logger     *log.Logger
	difficulty *config.DifficultyManager
	onComplete func(Run)

	score     int
	ballsLost int
	ticks     int
	elapsed   float32
}

// LoadResources registers the sprite shader and every configured texture.
func LoadResources(res *resource.Manager, cfg config.BreakoutConfig) {
	res.LoadShader(ShaderSprite, resource.Projection(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	for name, tc := range cfg.Textures {
		var glyph rune
		for _, r := range tc.Glyph {
			glyph = r
			break
		}
		res.LoadTexture(name, resource.TextureSpec{
			Path:  tc.Path,
			Glyph: glyph,
			Fill:  tc.Fill,
			Round: tc.Round,
			Alpha: tc.Alpha,
		})
	}
}

// New validates the configuration, loads resources and levels, and places
// the paddle and ball. Level files that fail to load are logged and leave
// that level empty.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	res := opts.Resources
	if res == nil {
		res = resource.NewManager()
		LoadResources(res, cfg)
	}

	g := &Game{
		Width:      float32(cfg.Window.Width),
		Height:     float32(cfg.Window.Height),
		cfg:        cfg,
		res:        res,
		logger:     logger,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		onComplete: opts.OnLevelComplete,
	}

	levelFS := opts.LevelFS
	if levelFS == nil {
		if cfg.Levels.Dir != "" {
			levelFS = os.DirFS(cfg.Levels.Dir)
		} else {
			levelFS = BuiltinLevels()
		}
	}
	g.loadLevels(levelFS)

	g.background = NewEntity(KindSprite, mgl32.Vec2{}, mgl32.Vec2{g.Width, g.Height}, res.Texture(TexBackground))
	g.background.Color = mgl32.Vec3(cfg.Window.Background)

	playerSize := mgl32.Vec2{cfg.Player.Width, cfg.Player.Height}
	player := NewEntity(KindPaddle, g.playerStart(), playerSize, res.Texture(TexPaddle))
	g.player = &player
	g.ball = NewBall(g.ballStart(), cfg.Ball.Radius, g.launchVelocity(), res.Texture(TexBall))
	g.particles = NewParticlePool(cfg.Particles.Capacity, cfg.Particles.Size, res.Texture(TexParticle), opts.Seed)

	if cfg.Gameplay.StartInMenu {
		g.State = StateMenu
	} else {
		g.State = StateActive
	}
	return g, nil
}

func (g *Game) loadLevels(fsys fs.FS) {
	block, solid := g.res.Texture(TexBlock), g.res.Texture(TexBlockSolid)
	levelHeight := g.Height * g.cfg.Levels.HeightFraction

	g.Levels = make([]*Level, 0, len(g.cfg.Levels.Files))
	for _, file := range g.cfg.Levels.Files {
		lvl := NewLevel(LevelName(file), block, solid)
		if err := lvl.Load(fsys, file, g.Width, levelHeight); err != nil {
			g.logger.Error("level failed to load", "file", file, "err", err)
		} else {
			g.logger.Debug("level loaded", "file", file, "bricks", len(lvl.Bricks))
		}
		g.Levels = append(g.Levels, lvl)
	}
}

// ProcessInput applies the held keys for this frame.
func (g *Game) ProcessInput(dt float32) {
	defer func() { g.prevKeys = g.Keys }()

	switch g.State {
	case StateMenu:
		if g.pressed(core.KeyEnter) {
			g.startLevel()
			return
		}
		if n := len(g.Levels); n > 0 {
			if g.pressed(core.KeyDown) {
				g.Level = (g.Level + 1) % n
			}
			if g.pressed(core.KeyUp) {
				g.Level = (g.Level + n - 1) % n
			}
		}

	case StateWin:
		if g.pressed(core.KeyEnter) {
			g.State = StateMenu
		}

	case StateActive:
		step := g.cfg.Player.Velocity * dt
		var dx float32
		if g.Keys.Held(core.KeyLeft) {
			dx -= step
		}
		if g.Keys.Held(core.KeyRight) {
			dx += step
		}
		if dx != 0 {
			oldX := g.player.Position.X()
			newX := core.ClampF(oldX+dx, 0, g.Width-g.player.Size.X())
			g.player.Position[0] = newX
			if g.ball.Stuck {
				g.ball.Position[0] += newX - oldX
			}
		}
		if g.Keys.Held(core.KeyLaunch) {
			g.ball.Stuck = false
		}
	}
}

// Update advances the simulation by dt seconds.
func (g *Game) Update(dt float32) {
	g.ticks++
	offset := mgl32.Vec2{g.ball.Radius / 2, g.ball.Radius / 2}

	if g.State != StateActive {
		g.particles.Update(dt, &g.ball.Entity, 0, offset)
		return
	}

	g.elapsed += dt
	g.ball.Move(dt, g.Width)
	g.DoCollisions()
	g.particles.Update(dt, &g.ball.Entity, g.cfg.Particles.SpawnPerFrame, offset)

	if g.ball.Position.Y() >= g.Height {
		g.ballsLost++
		g.logger.Debug("ball lost", "level", g.Level, "lost", g.ballsLost)
		// Restored bricks are worth points again, so the attempt restarts.
		g.score = 0
		g.elapsed = 0
		g.ResetLevel()
		g.ResetPlayer()
	}

	if lvl := g.CurrentLevel(); lvl == nil || lvl.IsCompleted() {
		g.completeLevel()
	}
}

// DoCollisions resolves the ball against every standing brick in order,
// then against the paddle.
func (g *Game) DoCollisions() {
	lvl := g.CurrentLevel()
	if lvl != nil {
		ballBox := g.ball.Box()
		for i := range lvl.Bricks {
			brick := &lvl.Bricks[i]
			if brick.Destroyed || !CheckAABB(ballBox, brick.Box()) {
				continue
			}
			c, ok := CheckBallBox(g.ball, brick.Box())
			if !ok {
				continue
			}
			if ResolveBrick(g.ball, brick, c) {
				g.score += g.cfg.Gameplay.BrickPoints
			}
			ballBox = g.ball.Box()
		}
	}

	if g.ball.Stuck {
		return
	}
	if _, ok := CheckBallBox(g.ball, g.player.Box()); ok {
		ResolvePaddle(g.ball, g.player, g.cfg.Ball.VelocityX, g.cfg.Gameplay.PaddleStrength)
	}
}

// SelectLevel makes level i current with fresh bricks and a stuck ball.
// The state is left alone, so in the menu it only moves the selection.
func (g *Game) SelectLevel(i int) error {
	if i < 0 || i >= len(g.Levels) {
		return fmt.Errorf("breakout: level %d out of range [1, %d]", i+1, len(g.Levels))
	}
	g.Level = i
	g.ResetLevel()
	g.ResetPlayer()
	return nil
}

// ResetLevel restores the current level's bricks to their file layout.
func (g *Game) ResetLevel() {
	if lvl := g.CurrentLevel(); lvl != nil {
		lvl.Reset()
	}
}

// ResetPlayer recenters the paddle and sticks the ball to it.
func (g *Game) ResetPlayer() {
	g.player.Size = mgl32.Vec2{g.cfg.Player.Width, g.cfg.Player.Height}
	g.player.Position = g.playerStart()
	g.ball.Reset(g.ballStart(), g.launchVelocity())
}

// Render draws background, bricks, paddle, particles and ball, then text
// when the renderer supports it.
func (g *Game) Render(r render.SpriteRenderer) {
	r.SetBlendMode(render.BlendAlpha)
	g.background.Draw(r)
	if lvl := g.CurrentLevel(); lvl != nil {
		lvl.Draw(r)
	}
	g.player.Draw(r)
	g.particles.Draw(r)
	g.ball.Draw(r)

	if tr, ok := r.(render.TextRenderer); ok {
		g.drawText(tr)
	}
}

func (g *Game) drawText(tr render.TextRenderer) {
	white := mgl32.Vec3{1, 1, 1}
	name := "-"
	if lvl := g.CurrentLevel(); lvl != nil {
		name = lvl.Name
	}
	tr.DrawText(fmt.Sprintf("Level %d/%d %s  Score %d  Lost %d", g.Level+1, len(g.Levels), name, g.score, g.ballsLost),
		mgl32.Vec2{5, 5}, white)

	center := func(text string, y float32, color mgl32.Vec3) {
		x := (g.Width - tr.MeasureText(text)) / 2
		tr.DrawText(text, mgl32.Vec2{x, y}, color)
	}
	switch g.State {
	case StateMenu:
		center("Press ENTER to start", g.Height/2, white)
		center("Press W or S to select level", g.Height/2+30, mgl32.Vec3{0.75, 0.75, 0.75})
	case StateWin:
		center("You WON!!!", g.Height/2-30, mgl32.Vec3{0, 1, 0})
		center("Press ENTER to retry or ESC to quit", g.Height/2, mgl32.Vec3{1, 1, 0})
	case StateActive:
		if g.ball.Stuck {
			center("Press SPACE to launch", g.Height/2+30, mgl32.Vec3{0.75, 0.75, 0.75})
		}
	}
}

// CurrentLevel returns the selected level, or nil when there are none.
func (g *Game) CurrentLevel() *Level {
	if g.Level < 0 || g.Level >= len(g.Levels) {
		return nil
	}
	return g.Levels[g.Level]
}

// Player returns the paddle.
func (g *Game) Player() *Entity {
	return g.player
}

// Ball returns the ball.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Particles returns the trail pool.
func (g *Game) Particles() *ParticlePool {
	return g.particles
}

// Resources returns the texture and shader lookup the game draws with.
func (g *Game) Resources() *resource.Manager {
	return g.res
}

// Status summarizes progress for hosts.
func (g *Game) Status() core.GameState {
	return core.GameState{
		Score:     g.score,
		BallsLost: g.ballsLost,
		Won:       g.State == StateWin,
	}
}

func (g *Game) pressed(k core.Key) bool {
	return g.Keys.Pressed(g.prevKeys, k)
}

func (g *Game) startLevel() {
	g.score = 0
	g.ballsLost = 0
	g.elapsed = 0
	g.ResetLevel()
	g.ResetPlayer()
	g.State = StateActive
	g.logger.Info("level started", "level", g.Level, "name", g.levelName())
}

func (g *Game) completeLevel() {
	run := Run{
		Level:      g.levelName(),
		LevelIndex: g.Level,
		Score:      g.score,
		BallsLost:  g.ballsLost,
		Duration:   time.Duration(float64(g.elapsed) * float64(time.Second)),
	}
	g.logger.Info("level complete", "level", run.Level, "score", run.Score, "lost", run.BallsLost)

	g.ResetLevel()
	g.ResetPlayer()
	g.State = StateWin
	if g.onComplete != nil {
		g.onComplete(run)
	}
}

func (g *Game) levelName() string {
	if lvl := g.CurrentLevel(); lvl != nil {
		return lvl.Name
	}
	return ""
}

func (g *Game) playerStart() mgl32.Vec2 {
	return mgl32.Vec2{
		g.Width/2 - g.cfg.Player.Width/2,
		g.Height - g.cfg.Player.Height,
	}
}

func (g *Game) ballStart() mgl32.Vec2 {
	start := g.playerStart()
	return start.Add(mgl32.Vec2{g.cfg.Player.Width/2 - g.cfg.Ball.Radius, -2 * g.cfg.Ball.Radius})
}

func (g *Game) launchVelocity() mgl32.Vec2 {
	scale := float32(1)
	if g.difficulty != nil {
		scale = float32(g.difficulty.Speed(1, g.score, g.ticks))
	}
	return mgl32.Vec2{g.cfg.Ball.VelocityX, g.cfg.Ball.VelocityY}.Mul(scale)
}
