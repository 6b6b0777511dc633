package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// ScreenRenderer rasterizes sprites into a terminal cell buffer.
// World coordinates go through the shader's projection to normalized device
// coordinates and from there onto the screen grid, so any play-area size
// maps onto any terminal size.
type ScreenRenderer struct {
	screen     *core.Screen
	projection mgl32.Mat4
	blend      BlendMode
}

// NewScreenRenderer creates a renderer drawing into dst with the shader's projection.
func NewScreenRenderer(dst *core.Screen, shader resource.Shader) *ScreenRenderer {
	return &ScreenRenderer{
		screen:     dst,
		projection: shader.Projection,
	}
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// SetBlendMode switches the blend used by subsequent draws.
func (r *ScreenRenderer) SetBlendMode(mode BlendMode) {
	r.blend = mode
}

// BlendMode returns the current blend mode.
func (r *ScreenRenderer) BlendMode() BlendMode {
	return r.blend
}

// DrawSprite paints every cell whose center falls inside the transformed quad.
// Quads smaller than a cell still paint the cell under their center.
func (r *ScreenRenderer) DrawSprite(tex resource.Texture, pos, size mgl32.Vec2, rotate float32, color mgl32.Vec4) {
	cols, rows := r.screen.Width(), r.screen.Height()
	if cols == 0 || rows == 0 || size.X() == 0 || size.Y() == 0 {
		return
	}

	mvp := r.projection.Mul4(ModelMatrix(pos, size, rotate))
	inv := mvp.Inv()

	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, corner := range [4]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		cx, cy := r.toCell(mvp.Mul4x1(mgl32.Vec4{corner.X(), corner.Y(), 0, 1}))
		minX, maxX = min(minX, cx), max(maxX, cx)
		minY, maxY = min(minY, cy), max(maxY, cy)
	}

	x0 := core.Clamp(int(math.Floor(float64(minX))), 0, cols-1)
	x1 := core.Clamp(int(math.Ceil(float64(maxX))), 0, cols-1)
	y0 := core.Clamp(int(math.Floor(float64(minY))), 0, rows-1)
	y1 := core.Clamp(int(math.Ceil(float64(maxY))), 0, rows-1)

	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			local := inv.Mul4x1(r.toNDC(float32(x)+0.5, float32(y)+0.5))
			u, v := local.X(), local.Y()
			if u < 0 || u > 1 || v < 0 || v > 1 {
				continue
			}
			r.paint(x, y, tex, color)
			painted = true
		}
	}

	if !painted {
		cx, cy := r.toCell(mvp.Mul4x1(mgl32.Vec4{0.5, 0.5, 0, 1}))
		x, y := int(math.Floor(float64(cx))), int(math.Floor(float64(cy)))
		if x >= 0 && x < cols && y >= 0 && y < rows {
			r.paint(x, y, tex, color)
		}
	}
}

// DrawText writes text starting at the cell that contains pos.
func (r *ScreenRenderer) DrawText(text string, pos mgl32.Vec2, color mgl32.Vec3) {
	cx, cy := r.toCell(r.projection.Mul4x1(mgl32.Vec4{pos.X(), pos.Y(), 0, 1}))
	r.screen.DrawText(int(cx), int(cy), text, core.ColorFromVec(color))
}

// MeasureText returns the width of text in world units.
func (r *ScreenRenderer) MeasureText(text string) float32 {
	if r.screen.Width() == 0 {
		return 0
	}
	// One cell spans 2/cols in device space; map that back through the projection.
	ndcPerCell := 2 / float32(r.screen.Width())
	worldPerNDC := 1 / r.projection.At(0, 0)
	return float32(len([]rune(text))) * ndcPerCell * worldPerNDC
}

func (r *ScreenRenderer) paint(x, y int, tex resource.Texture, color mgl32.Vec4) {
	cell := r.screen.GetCell(x, y)
	tint := core.ColorFromVec(color.Vec3())
	alpha := color.W()

	if tex.Fill {
		cell.BG = r.blendOnto(cell.BG, tint, alpha)
		cell.Rune = ' '
	} else {
		cell.Rune = tex.Glyph
		if cell.Rune == 0 {
			cell.Rune = '█'
		}
		cell.FG = r.blendOnto(cell.BG, tint, alpha)
	}
	r.screen.SetCell(x, y, cell)
}

func (r *ScreenRenderer) blendOnto(dst, src core.Color, alpha float32) core.Color {
	if r.blend == BlendAdditive {
		return dst.Add(src, alpha)
	}
	return dst.Over(src, alpha)
}

func (r *ScreenRenderer) toCell(clip mgl32.Vec4) (float32, float32) {
	ndcX, ndcY := clip.X(), clip.Y()
	if w := clip.W(); w != 0 && w != 1 {
		ndcX, ndcY = ndcX/w, ndcY/w
	}
	cx := (ndcX + 1) / 2 * float32(r.screen.Width())
	cy := (1 - ndcY) / 2 * float32(r.screen.Height())
	return cx, cy
}

func (r *ScreenRenderer) toNDC(cx, cy float32) mgl32.Vec4 {
	return mgl32.Vec4{
		cx/float32(r.screen.Width())*2 - 1,
		1 - cy/float32(r.screen.Height())*2,
		0,
		1,
	}
}
