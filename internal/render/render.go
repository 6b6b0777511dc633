// Package render defines the sprite drawing contract the game draws through
// and a terminal implementation that rasterizes quads into a core.Screen.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// BlendMode selects how a sprite's color combines with what is underneath.
type BlendMode int

const (
	// BlendAlpha is regular alpha blending (SRC_ALPHA, ONE_MINUS_SRC_ALPHA).
	BlendAlpha BlendMode = iota
	// BlendAdditive adds the sprite color scaled by its alpha (SRC_ALPHA, ONE).
	BlendAdditive
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "alpha"
	case BlendAdditive:
		return "additive"
	default:
		return "unknown"
	}
}

// SpriteRenderer draws textured, tinted, rotated quads.
// Position is the top-left corner in world units, rotation is in degrees
// about the quad center, and color is an RGBA tint.
type SpriteRenderer interface {
	DrawSprite(tex resource.Texture, pos, size mgl32.Vec2, rotate float32, color mgl32.Vec4)
	SetBlendMode(mode BlendMode)
}

// TextRenderer is implemented by renderers that can also draw text.
// The game checks for it before drawing HUD and prompts.
type TextRenderer interface {
	DrawText(text string, pos mgl32.Vec2, color mgl32.Vec3)
	// MeasureText returns the width of text in world units.
	MeasureText(text string) float32
}

// Opaque extends an RGB tint with full alpha.
func Opaque(c mgl32.Vec3) mgl32.Vec4 {
	return c.Vec4(1)
}

// ModelMatrix builds the quad transform: scale the unit quad to size,
// rotate about its center, then move it to pos.
func ModelMatrix(pos, size mgl32.Vec2, rotate float32) mgl32.Mat4 {
	model := mgl32.Translate3D(pos.X(), pos.Y(), 0)
	model = model.Mul4(mgl32.Translate3D(0.5*size.X(), 0.5*size.Y(), 0))
	model = model.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotate)))
	model = model.Mul4(mgl32.Translate3D(-0.5*size.X(), -0.5*size.Y(), 0))
	return model.Mul4(mgl32.Scale3D(size.X(), size.Y(), 1))
}
