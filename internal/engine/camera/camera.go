// Package camera provides the viewer that drives chunk streaming.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Per-step movement amounts of a held key.
const (
	WalkStep = 0.3
	RiseStep = 0.1
	TurnStep = 0.05
)

// FlyCamera is a free-flying camera. Planar motion is expressed in the
// camera's own frame (forward is -Z) and rotated by its yaw.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32 // Rotation around +Y (radians)
	Pitch    float32 // Only affects ViewMatrix
}

// NewFlyCamera creates a camera at pos looking down -Z.
func NewFlyCamera(pos mgl32.Vec3) *FlyCamera {
	return &FlyCamera{
		Position: pos,
		Pitch:    -0.6,
	}
}

// CurrentWorldPosition returns the camera position in world space.
func (c *FlyCamera) CurrentWorldPosition() mgl32.Vec3 {
	return c.Position
}

// Move translates the camera by forward/strafe in its yaw frame and rise
// along world Y, then turns it by turn radians.
func (c *FlyCamera) Move(forward, strafe, rise, turn float32) {
	fx, fz := c.ForwardDirection()
	rx, rz := c.RightDirection()

	c.Position[0] += fx*forward + rx*strafe
	c.Position[2] += fz*forward + rz*strafe
	c.Position[1] += rise
	c.Yaw += turn
}

// ForwardDirection returns the camera's forward direction on the XZ plane.
func (c *FlyCamera) ForwardDirection() (x, z float32) {
	v := mgl32.Rotate3DY(c.Yaw).Mul3x1(mgl32.Vec3{0, 0, -1})
	return v.X(), v.Z()
}

// RightDirection returns the camera's right direction on the XZ plane.
func (c *FlyCamera) RightDirection() (x, z float32) {
	v := mgl32.Rotate3DY(c.Yaw).Mul3x1(mgl32.Vec3{1, 0, 0})
	return v.X(), v.Z()
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	fx, fz := c.ForwardDirection()
	cp := float32(gomath.Cos(float64(c.Pitch)))
	sp := float32(gomath.Sin(float64(c.Pitch)))
	dir := mgl32.Vec3{fx * cp, sp, fz * cp}
	return mgl32.LookAtV(c.Position, c.Position.Add(dir), mgl32.Vec3{0, 1, 0})
}

// Keys is the held state of the movement keys.
type Keys struct {
	Forward, Back bool // W, S
	Left, Right   bool // A, D
	TurnLeft      bool // Q
	TurnRight     bool // E
	Up, Down      bool // Shift, Ctrl
}

// Step converts held keys into one tick of camera motion.
func (k Keys) Step() Step {
	var s Step
	if k.Forward {
		s.Forward += WalkStep
	}
	if k.Back {
		s.Forward -= WalkStep
	}
	if k.Right {
		s.Strafe += WalkStep
	}
	if k.Left {
		s.Strafe -= WalkStep
	}
	if k.Up {
		s.Rise += RiseStep
	}
	if k.Down {
		s.Rise -= RiseStep
	}
	if k.TurnLeft {
		s.Turn += TurnStep
	}
	if k.TurnRight {
		s.Turn -= TurnStep
	}
	return s
}

// Step is one tick of camera motion.
type Step struct {
	Forward, Strafe, Rise, Turn float32
}

// Apply moves c by s.
func (s Step) Apply(c *FlyCamera) {
	c.Move(s.Forward, s.Strafe, s.Rise, s.Turn)
}

// Path is a scripted sequence of steps. Each leg repeats its step Ticks times;
// after the last leg the path holds still.
type Path struct {
	Legs []Leg

	leg  int
	tick int
}

// Leg is one segment of a Path.
type Leg struct {
	Step  Step
	Ticks int
}

// Next returns the step for the current tick and advances the path.
func (p *Path) Next() Step {
	for p.leg < len(p.Legs) {
		l := p.Legs[p.leg]
		if p.tick < l.Ticks {
			p.tick++
			return l.Step
		}
		p.leg++
		p.tick = 0
	}
	return Step{}
}

// Done reports whether every leg has been walked.
func (p *Path) Done() bool {
	for i := p.leg; i < len(p.Legs); i++ {
		if i == p.leg && p.tick < p.Legs[i].Ticks {
			return false
		}
		if i > p.leg && p.Legs[i].Ticks > 0 {
			return false
		}
	}
	return true
}
