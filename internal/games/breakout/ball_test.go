package breakout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/resource"
)

func TestBallStuckDoesNotMove(t *testing.T) {
	b := NewBall(mgl32.Vec2{100, 100}, 12.5, mgl32.Vec2{100, -350}, resource.Texture{})
	assert.True(t, b.Stuck)
	assert.Equal(t, mgl32.Vec2{25, 25}, b.Size)

	assert.Equal(t, mgl32.Vec2{100, 100}, b.Move(0.5, 800))
}

func TestBallMoveWalls(t *testing.T) {
	tests := []struct {
		name    string
		pos     mgl32.Vec2
		vel     mgl32.Vec2
		wantPos mgl32.Vec2
		wantVel mgl32.Vec2
	}{
		{"left wall", mgl32.Vec2{5, 100}, mgl32.Vec2{-100, 0}, mgl32.Vec2{0, 100}, mgl32.Vec2{100, 0}},
		{"right wall", mgl32.Vec2{770, 100}, mgl32.Vec2{100, 0}, mgl32.Vec2{775, 100}, mgl32.Vec2{-100, 0}},
		{"top wall", mgl32.Vec2{100, 5}, mgl32.Vec2{0, -100}, mgl32.Vec2{100, 0}, mgl32.Vec2{0, 100}},
		{"top-left corner", mgl32.Vec2{2, 2}, mgl32.Vec2{-100, -100}, mgl32.Vec2{0, 0}, mgl32.Vec2{100, 100}},
		{"no bottom wall", mgl32.Vec2{100, 590}, mgl32.Vec2{0, 100}, mgl32.Vec2{100, 600}, mgl32.Vec2{0, 100}},
		{"free flight", mgl32.Vec2{400, 300}, mgl32.Vec2{100, -350}, mgl32.Vec2{410, 265}, mgl32.Vec2{100, -350}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(tc.pos, 12.5, tc.vel, resource.Texture{})
			b.Stuck = false
			b.Move(0.1, 800)

			assert.InDelta(t, tc.wantPos.X(), b.Position.X(), 1e-3)
			assert.InDelta(t, tc.wantPos.Y(), b.Position.Y(), 1e-3)
			assert.Equal(t, tc.wantVel, b.Velocity)
		})
	}
}

func TestBallReset(t *testing.T) {
	b := NewBall(mgl32.Vec2{}, 10, mgl32.Vec2{1, 1}, resource.Texture{})
	b.Stuck = false

	b.Reset(mgl32.Vec2{50, 60}, mgl32.Vec2{100, -350})
	assert.True(t, b.Stuck)
	assert.Equal(t, mgl32.Vec2{50, 60}, b.Position)
	assert.Equal(t, mgl32.Vec2{100, -350}, b.Velocity)
	assert.Equal(t, mgl32.Vec2{60, 70}, b.Center())
}
