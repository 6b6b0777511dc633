package breakout

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/render"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// Particle is one trail speck. It is alive while Life > 0.
type Particle struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2
	Color    mgl32.Vec4
	Life     float32 // Seconds left
}

const (
	particleLife     = 1.0
	particleFadeRate = 2.5 // Alpha lost per second
	particleDrag     = 0.1 // Fraction of the emitter velocity a particle inherits
)

// ParticlePool is a fixed set of particles recycled in place.
type ParticlePool struct {
	particles []Particle
	lastUsed  int
	size      float32
	texture   resource.Texture
	rng       *rand.Rand
}

// NewParticlePool allocates capacity dead particles drawn as size-by-size
// quads. The seed drives spawn jitter and color.
func NewParticlePool(capacity int, size float32, tex resource.Texture, seed int64) *ParticlePool {
	return &ParticlePool{
		particles: make([]Particle, capacity),
		size:      size,
		texture:   tex,
		rng:       rand.New(rand.NewSource(seed)), //#nosec G404 -- visual effect only
	}
}

// Capacity returns the fixed number of slots.
func (p *ParticlePool) Capacity() int {
	return len(p.particles)
}

// Particles exposes the pool slots for inspection.
func (p *ParticlePool) Particles() []Particle {
	return p.particles
}

// Alive counts particles with life left.
func (p *ParticlePool) Alive() int {
	n := 0
	for i := range p.particles {
		if p.particles[i].Life > 0 {
			n++
		}
	}
	return n
}

// Update spawns newParticles at the emitter and then ages every particle by dt.
func (p *ParticlePool) Update(dt float32, emitter *Entity, newParticles int, offset mgl32.Vec2) {
	if len(p.particles) == 0 {
		return
	}
	for range newParticles {
		p.respawn(&p.particles[p.firstUnused()], emitter, offset)
	}

	for i := range p.particles {
		pt := &p.particles[i]
		pt.Life -= dt
		if pt.Life > 0 {
			pt.Position = pt.Position.Sub(pt.Velocity.Mul(dt))
			pt.Color[3] -= dt * particleFadeRate
		}
	}
}

// Draw renders live particles additively and leaves the renderer in alpha blend.
func (p *ParticlePool) Draw(r render.SpriteRenderer) {
	r.SetBlendMode(render.BlendAdditive)
	size := mgl32.Vec2{p.size, p.size}
	for i := range p.particles {
		if pt := &p.particles[i]; pt.Life > 0 {
			r.DrawSprite(p.texture, pt.Position, size, 0, pt.Color)
		}
	}
	r.SetBlendMode(render.BlendAlpha)
}

// Reset kills every particle.
func (p *ParticlePool) Reset() {
	for i := range p.particles {
		p.particles[i] = Particle{}
	}
	p.lastUsed = 0
}

// firstUnused finds a dead slot, searching from the last recycled one and
// wrapping around. When every slot is alive it overwrites slot 0.
func (p *ParticlePool) firstUnused() int {
	for i := p.lastUsed; i < len(p.particles); i++ {
		if p.particles[i].Life <= 0 {
			p.lastUsed = i
			return i
		}
	}
	for i := 0; i < p.lastUsed; i++ {
		if p.particles[i].Life <= 0 {
			p.lastUsed = i
			return i
		}
	}
	p.lastUsed = 0
	return 0
}

func (p *ParticlePool) respawn(pt *Particle, emitter *Entity, offset mgl32.Vec2) {
	jitter := float32(p.rng.Intn(100)-50) / 10
	shade := 0.5 + float32(p.rng.Intn(100))/100

	pt.Position = emitter.Position.Add(mgl32.Vec2{jitter, jitter}).Add(offset)
	pt.Color = mgl32.Vec4{shade, shade, shade, 1}
	pt.Life = particleLife
	pt.Velocity = emitter.Velocity.Mul(particleDrag)
}
