package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Predefined colors for cells that are not tinted by a sprite.
var (
	ColorBlack = Color{}
	ColorWhite = Color{1, 1, 1}
)

// ColorFromVec converts the first three components of a tint vector.
func ColorFromVec(v mgl32.Vec3) Color {
	return Color{R: v.X(), G: v.Y(), B: v.Z()}
}

// Clamped returns the color with every component limited to [0, 1].
func (c Color) Clamped() Color {
	return Color{R: ClampF(c.R, 0, 1), G: ClampF(c.G, 0, 1), B: ClampF(c.B, 0, 1)}
}

// Scale multiplies every component by s.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Over blends src with alpha a on top of c (SRC_ALPHA, ONE_MINUS_SRC_ALPHA).
func (c Color) Over(src Color, a float32) Color {
	a = ClampF(a, 0, 1)
	return Color{
		R: src.R*a + c.R*(1-a),
		G: src.G*a + c.G*(1-a),
		B: src.B*a + c.B*(1-a),
	}
}

// Add blends src with alpha a additively on top of c (SRC_ALPHA, ONE).
func (c Color) Add(src Color, a float32) Color {
	a = ClampF(a, 0, 1)
	return Color{R: c.R + src.R*a, G: c.G + src.G*a, B: c.B + src.B*a}.Clamped()
}

// Hex formats the color as #rrggbb for terminal styling.
func (c Color) Hex() string {
	cc := c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x", to8(cc.R), to8(cc.G), to8(cc.B))
}

func to8(v float32) uint8 {
	return uint8(v*255 + 0.5) //#nosec G115 -- v is clamped to [0, 1]
}
