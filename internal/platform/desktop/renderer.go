// Package desktop runs breakout in a window with Ebiten.
package desktop

import (
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/render"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// Debug font metrics of ebitenutil.DebugPrint.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

const (
	quadSize      = 16
	circleSize    = 64
	maxTextImages = 64
)

// Renderer draws sprites onto an Ebiten image.
// Textures with a Path are loaded from disk on first use; the rest, and any
// file that fails to load, are plain white quads (circles when Round) tinted
// by the sprite color.
type Renderer struct {
	target *ebiten.Image
	mode   render.BlendMode
	images map[int]*ebiten.Image
	texts  map[string]*ebiten.Image
	logger *log.Logger
}

// NewRenderer creates a renderer. Call SetTarget before drawing.
func NewRenderer(logger *log.Logger) *Renderer {
	return &Renderer{
		images: make(map[int]*ebiten.Image),
		texts:  make(map[string]*ebiten.Image),
		logger: logger,
	}
}

// SetTarget sets the image subsequent draws go to.
func (r *Renderer) SetTarget(dst *ebiten.Image) {
	r.target = dst
}

// SetBlendMode switches the blend used by subsequent draws.
func (r *Renderer) SetBlendMode(mode render.BlendMode) {
	r.mode = mode
}

// DrawSprite draws tex scaled to size at pos, rotated about its center.
func (r *Renderer) DrawSprite(tex resource.Texture, pos, size mgl32.Vec2, rotate float32, c mgl32.Vec4) {
	if r.target == nil || size.X() == 0 || size.Y() == 0 {
		return
	}
	img := r.image(tex)
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(float64(b.Dx()), float64(b.Dy()), pos, size, rotate)
	op.ColorScale.Scale(c.X()*c.W(), c.Y()*c.W(), c.Z()*c.W(), c.W())
	op.Blend = blendFor(r.mode)
	r.target.DrawImage(img, op)
}

// DrawText prints text with the debug font, tinted by color.
func (r *Renderer) DrawText(text string, pos mgl32.Vec2, c mgl32.Vec3) {
	if r.target == nil || text == "" {
		return
	}
	img, ok := r.texts[text]
	if !ok {
		if len(r.texts) >= maxTextImages {
			for k, old := range r.texts {
				old.Deallocate()
				delete(r.texts, k)
			}
		}
		img = ebiten.NewImage(len(text)*glyphWidth, glyphHeight)
		ebitenutil.DebugPrintAt(img, text, 0, 0)
		r.texts[text] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pos.X()), float64(pos.Y()))
	op.ColorScale.Scale(c.X(), c.Y(), c.Z(), 1)
	r.target.DrawImage(img, op)
}

// MeasureText returns the debug-font width of text.
func (r *Renderer) MeasureText(text string) float32 {
	return float32(len(text) * glyphWidth)
}

func (r *Renderer) image(tex resource.Texture) *ebiten.Image {
	if img, ok := r.images[tex.ID]; ok {
		return img
	}

	var img *ebiten.Image
	if tex.Path != "" {
		loaded, _, err := ebitenutil.NewImageFromFile(tex.Path)
		if err != nil {
			if r.logger != nil {
				r.logger.Warn("texture not loaded, using a plain quad", "texture", tex.Name, "path", tex.Path, "err", err)
			}
		} else {
			img = loaded
		}
	}
	if img == nil {
		img = fallbackImage(tex.Round)
	}
	r.images[tex.ID] = img
	return img
}

func fallbackImage(round bool) *ebiten.Image {
	if !round {
		img := ebiten.NewImage(quadSize, quadSize)
		img.Fill(color.White)
		return img
	}
	img := ebiten.NewImage(circleSize, circleSize)
	const rad = circleSize / 2
	vector.DrawFilledCircle(img, rad, rad, rad, color.White, true)
	return img
}

// spriteGeoM maps a w x h image onto the quad: scale to size, rotate about
// the quad center, move to pos.
func spriteGeoM(w, h float64, pos, size mgl32.Vec2, rotate float32) ebiten.GeoM {
	sx, sy := float64(size.X()), float64(size.Y())
	var g ebiten.GeoM
	g.Scale(sx/w, sy/h)
	g.Translate(-sx/2, -sy/2)
	g.Rotate(float64(rotate) * math.Pi / 180)
	g.Translate(sx/2, sy/2)
	g.Translate(float64(pos.X()), float64(pos.Y()))
	return g
}

func blendFor(mode render.BlendMode) ebiten.Blend {
	if mode == render.BlendAdditive {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}
