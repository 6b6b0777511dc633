// Package breakout implements a Breakout brick breaker: a paddle, a ball,
// brick levels loaded from text files, circle/box collision resolution and a
// particle trail, all drawn through render.SpriteRenderer.
package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/render"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// Kind tells entities apart. All kinds share one record and one Draw.
type Kind int

const (
	KindSprite Kind = iota // Decoration such as the background
	KindBrick
	KindPaddle
	KindBall
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindBrick:
		return "brick"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	default:
		return "unknown"
	}
}

// Entity is a textured quad with optional motion.
type Entity struct {
	Kind      Kind
	Position  mgl32.Vec2 // Top-left corner
	Size      mgl32.Vec2
	Velocity  mgl32.Vec2
	Color     mgl32.Vec3
	Rotation  float32 // Degrees
	Solid     bool    // Immune to destruction
	Destroyed bool
	Sprite    resource.Texture
}

// NewEntity creates an entity with a white tint and no velocity.
func NewEntity(kind Kind, pos, size mgl32.Vec2, sprite resource.Texture) Entity {
	return Entity{
		Kind:     kind,
		Position: pos,
		Size:     size,
		Color:    mgl32.Vec3{1, 1, 1},
		Sprite:   sprite,
	}
}

// Draw renders the entity unless it has been destroyed.
func (e *Entity) Draw(r render.SpriteRenderer) {
	if e.Destroyed {
		return
	}
	r.DrawSprite(e.Sprite, e.Position, e.Size, e.Rotation, render.Opaque(e.Color))
}

// Destroy flags a breakable entity as destroyed.
// It reports whether this call changed anything; solid and already
// destroyed entities are left as they are.
func (e *Entity) Destroy() bool {
	if e.Solid || e.Destroyed {
		return false
	}
	e.Destroyed = true
	return true
}

// Box returns the entity's bounds.
func (e *Entity) Box() core.Box {
	return core.Box{Pos: e.Position, Size: e.Size}
}
