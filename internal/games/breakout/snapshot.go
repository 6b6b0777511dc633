package breakout

import "math"

// Snapshot captures the simulation state for replay checks and restore.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      int
	State     State
	Level     int
	Score     int
	BallsLost int
	Elapsed   float32

	PaddleX float32

	// Ball as X, Y, VX, VY
	Ball      [4]float32
	BallStuck bool

	// One entry per brick in level order
	Destroyed []bool

	// Each particle is 9 floats: X, Y, VX, VY, R, G, B, A, Life
	ParticleData []float32
	LastUsed     int
}

const particleStride = 9

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.ticks,
		State:     g.State,
		Level:     g.Level,
		Score:     g.score,
		BallsLost: g.ballsLost,
		Elapsed:   g.elapsed,
		PaddleX:   g.player.Position.X(),
		Ball: [4]float32{
			g.ball.Position.X(), g.ball.Position.Y(),
			g.ball.Velocity.X(), g.ball.Velocity.Y(),
		},
		BallStuck: g.ball.Stuck,
		LastUsed:  g.particles.lastUsed,
	}

	if lvl := g.CurrentLevel(); lvl != nil {
		snap.Destroyed = make([]bool, len(lvl.Bricks))
		for i := range lvl.Bricks {
			snap.Destroyed[i] = lvl.Bricks[i].Destroyed
		}
	}

	snap.ParticleData = make([]float32, 0, len(g.particles.particles)*particleStride)
	for _, p := range g.particles.particles {
		snap.ParticleData = append(snap.ParticleData,
			p.Position.X(), p.Position.Y(),
			p.Velocity.X(), p.Velocity.Y(),
			p.Color[0], p.Color[1], p.Color[2], p.Color[3],
			p.Life,
		)
	}
	return snap
}

// ApplySnapshot restores game state from a snapshot taken on a game with
// the same configuration and levels. The particle RNG is not restored.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.ticks = snap.Tick
	g.State = snap.State
	g.Level = snap.Level
	g.score = snap.Score
	g.ballsLost = snap.BallsLost
	g.elapsed = snap.Elapsed

	g.player.Position[0] = snap.PaddleX
	g.ball.Position[0], g.ball.Position[1] = snap.Ball[0], snap.Ball[1]
	g.ball.Velocity[0], g.ball.Velocity[1] = snap.Ball[2], snap.Ball[3]
	g.ball.Stuck = snap.BallStuck

	if lvl := g.CurrentLevel(); lvl != nil {
		lvl.Reset()
		if len(snap.Destroyed) == len(lvl.Bricks) {
			for i, d := range snap.Destroyed {
				lvl.Bricks[i].Destroyed = d
			}
		}
	}

	if len(snap.ParticleData) == len(g.particles.particles)*particleStride {
		for i := range g.particles.particles {
			d := snap.ParticleData[i*particleStride : (i+1)*particleStride]
			p := &g.particles.particles[i]
			p.Position[0], p.Position[1] = d[0], d[1]
			p.Velocity[0], p.Velocity[1] = d[2], d[3]
			p.Color[0], p.Color[1], p.Color[2], p.Color[3] = d[4], d[5], d[6], d[7]
			p.Life = d[8]
		}
		g.particles.lastUsed = snap.LastUsed
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallsLost)           //#nosec G115 -- hash computation
	h = h*31 + uint64(math.Float32bits(snap.PaddleX))
	h = h*31 + uint64(snap.LastUsed) //#nosec G115 -- hash computation

	for _, v := range snap.Ball {
		h = h*31 + uint64(math.Float32bits(v))
	}
	if snap.BallStuck {
		h = h*31 + 1
	}

	for _, d := range snap.Destroyed {
		if d {
			h = h*31 + 1
		} else {
			h = h*31 + 2
		}
	}

	for _, v := range snap.ParticleData {
		h = h*31 + uint64(math.Float32bits(v))
	}

	return h
}
