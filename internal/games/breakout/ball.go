package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// Ball is an entity with a radius that either rides the paddle (Stuck)
// or moves freely by its velocity.
type Ball struct {
	Entity
	Radius float32
	Stuck  bool
}

// NewBall creates a stuck ball whose quad is the circle's bounding square.
func NewBall(pos mgl32.Vec2, radius float32, velocity mgl32.Vec2, sprite resource.Texture) *Ball {
	e := NewEntity(KindBall, pos, mgl32.Vec2{radius * 2, radius * 2}, sprite)
	e.Velocity = velocity
	return &Ball{
		Entity: e,
		Radius: radius,
		Stuck:  true,
	}
}

// Move integrates the free ball by dt and bounces it off the left, right and
// top walls of a play area windowWidth wide. There is no bottom wall.
// A stuck ball does not move. Returns the new position.
func (b *Ball) Move(dt float32, windowWidth float32) mgl32.Vec2 {
	if b.Stuck {
		return b.Position
	}

	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	if b.Position.X() <= 0 {
		b.Velocity[0] = -b.Velocity.X()
		b.Position[0] = 0
	} else if b.Position.X()+b.Size.X() >= windowWidth {
		b.Velocity[0] = -b.Velocity.X()
		b.Position[0] = windowWidth - b.Size.X()
	}
	if b.Position.Y() <= 0 {
		b.Velocity[1] = -b.Velocity.Y()
		b.Position[1] = 0
	}
	return b.Position
}

// Reset puts the ball back on the paddle with the given position and velocity.
func (b *Ball) Reset(pos, velocity mgl32.Vec2) {
	b.Position = pos
	b.Velocity = velocity
	b.Stuck = true
}

// Center returns the circle center.
func (b *Ball) Center() mgl32.Vec2 {
	return b.Position.Add(mgl32.Vec2{b.Radius, b.Radius})
}
