package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Direction names the face of a box the ball struck, by its outward normal.
// Y grows downward, so Up is the top face.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// compass holds the unit vector of each Direction, in enumeration order.
var compass = [4]mgl32.Vec2{
	{0, -1}, // Up
	{1, 0},  // Right
	{0, 1},  // Down
	{-1, 0}, // Left
}

// Collision describes a ball/box contact.
type Collision struct {
	Dir Direction
	// Penetration points from the closest point on the box to the ball center.
	Penetration mgl32.Vec2
}

// CheckAABB reports whether two boxes overlap, edges included.
func CheckAABB(a, b core.Box) bool {
	return a.Overlaps(b)
}

// VectorDirection returns the compass direction closest to target.
// Ties go to the earlier direction in enumeration order; a zero vector is Up.
func VectorDirection(target mgl32.Vec2) Direction {
	if target.Len() == 0 {
		return Up
	}
	n := target.Normalize()
	best := Up
	var maxDot float32
	for i, dir := range compass {
		if dot := n.Dot(dir); dot > maxDot {
			maxDot = dot
			best = Direction(i)
		}
	}
	return best
}

// CheckBallBox tests the ball's circle against box. The bool is false when
// they do not touch, in which case the Collision is meaningless.
func CheckBallBox(ball *Ball, box core.Box) (Collision, bool) {
	center := ball.Center()
	half := box.HalfExtents()
	boxCenter := box.Center()

	diff := center.Sub(boxCenter)
	clamped := mgl32.Vec2{
		core.ClampF(diff.X(), -half.X(), half.X()),
		core.ClampF(diff.Y(), -half.Y(), half.Y()),
	}
	closest := boxCenter.Add(clamped)
	pen := center.Sub(closest)

	if pen.Len() > ball.Radius {
		return Collision{}, false
	}

	var dir Direction
	if pen.X() == 0 && pen.Y() == 0 {
		dir = nearestFace(center, box, ball.Velocity)
	} else {
		dir = VectorDirection(pen)
	}
	return Collision{Dir: dir, Penetration: pen}, true
}

// nearestFace classifies a ball whose center lies on or inside box.
// The face nearest the center wins; equally near faces are decided by the
// face the velocity would have entered through, then by enumeration order.
// The penetration vector stays zero here, so the push-out is a full radius
// rather than the true depth.
func nearestFace(center mgl32.Vec2, box core.Box, velocity mgl32.Vec2) Direction {
	lo, hi := box.Min(), box.Max()
	dist := [4]float32{
		center.Y() - lo.Y(), // Up
		hi.X() - center.X(), // Right
		hi.Y() - center.Y(), // Down
		center.X() - lo.X(), // Left
	}

	best := dist[0]
	for _, d := range dist[1:] {
		best = min(best, d)
	}

	var tied []Direction
	for i, d := range dist {
		if d == best {
			tied = append(tied, Direction(i))
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}

	if velocity.Len() > 0 {
		entry := VectorDirection(velocity.Mul(-1))
		for _, d := range tied {
			if d == entry {
				return d
			}
		}
	}
	return tied[0]
}

// ResolveBrick bounces the ball off a brick it collided with and pushes it
// back out. Breakable bricks are destroyed; it reports whether this call
// destroyed the brick.
func ResolveBrick(ball *Ball, brick *Entity, c Collision) bool {
	destroyed := brick.Destroy()

	switch c.Dir {
	case Left, Right:
		ball.Velocity[0] = -ball.Velocity.X()
		push := ball.Radius - core.AbsF(c.Penetration.X())
		if c.Dir == Right {
			ball.Position[0] += push
		} else {
			ball.Position[0] -= push
		}
	case Up, Down:
		ball.Velocity[1] = -ball.Velocity.Y()
		push := ball.Radius - core.AbsF(c.Penetration.Y())
		if c.Dir == Up {
			ball.Position[1] -= push
		} else {
			ball.Position[1] += push
		}
	}
	return destroyed
}

// ResolvePaddle redirects a ball that hit the paddle. The horizontal speed
// depends on how far from the paddle center it landed, the ball always
// leaves upward, and its speed is unchanged.
func ResolvePaddle(ball *Ball, paddle *Entity, initialVX, strength float32) {
	halfWidth := paddle.Size.X() / 2
	centerBoard := paddle.Position.X() + halfWidth
	distance := ball.Position.X() + ball.Radius - centerBoard
	percentage := distance / halfWidth

	old := ball.Velocity
	speed := old.Len()

	v := mgl32.Vec2{initialVX * percentage * strength, -core.AbsF(old.Y())}
	if v.Len() == 0 {
		ball.Velocity = mgl32.Vec2{0, -speed}
		return
	}
	ball.Velocity = v.Normalize().Mul(speed)
}
