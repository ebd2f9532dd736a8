package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestMoveUnrotated(t *testing.T) {
	tests := []struct {
		name                        string
		forward, strafe, rise, turn float32
		want                        mgl32.Vec3
	}{
		{"forward", 1, 0, 0, 0, mgl32.Vec3{0, 0, -1}},
		{"back", -1, 0, 0, 0, mgl32.Vec3{0, 0, 1}},
		{"strafe right", 0, 1, 0, 0, mgl32.Vec3{1, 0, 0}},
		{"rise", 0, 0, 2, 0, mgl32.Vec3{0, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFlyCamera(mgl32.Vec3{})
			c.Move(tt.forward, tt.strafe, tt.rise, tt.turn)
			got := c.CurrentWorldPosition()
			for i := range 3 {
				if !near(got[i], tt.want[i]) {
					t.Fatalf("position = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMoveUsesYawBeforeTurn(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})

	// The translation of this call still uses yaw 0.
	c.Move(1, 0, 0, math.Pi/2)
	if !near(c.Position.X(), 0) || !near(c.Position.Z(), -1) {
		t.Fatalf("first move = %v, want (0,0,-1)", c.Position)
	}

	// Facing -X after a quarter turn to the left.
	c.Move(1, 0, 0, 0)
	if !near(c.Position.X(), -1) || !near(c.Position.Z(), -1) {
		t.Errorf("second move = %v, want (-1,0,-1)", c.Position)
	}
}

func TestDirectionsOrthogonal(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	for _, yaw := range []float32{0, 0.3, 1.7, -2.4} {
		c.Yaw = yaw
		fx, fz := c.ForwardDirection()
		rx, rz := c.RightDirection()
		if !near(fx*rx+fz*rz, 0) {
			t.Errorf("yaw %f: forward and right not orthogonal", yaw)
		}
		if !near(fx*fx+fz*fz, 1) {
			t.Errorf("yaw %f: forward not unit length", yaw)
		}
	}
}

func TestKeysStep(t *testing.T) {
	tests := []struct {
		name string
		keys Keys
		want Step
	}{
		{"idle", Keys{}, Step{}},
		{"forward", Keys{Forward: true}, Step{Forward: WalkStep}},
		{"opposed keys cancel", Keys{Forward: true, Back: true}, Step{}},
		{"strafe left", Keys{Left: true}, Step{Strafe: -WalkStep}},
		{"rise and turn", Keys{Up: true, TurnRight: true}, Step{Rise: RiseStep, Turn: -TurnStep}},
		{"sink and turn left", Keys{Down: true, TurnLeft: true}, Step{Rise: -RiseStep, Turn: TurnStep}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.keys.Step(); got != tt.want {
				t.Errorf("Step() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	p := &Path{Legs: []Leg{
		{Step: Step{Forward: 1}, Ticks: 2},
		{Step: Step{Strafe: 1}, Ticks: 0},
		{Step: Step{Turn: 1}, Ticks: 1},
	}}

	want := []Step{{Forward: 1}, {Forward: 1}, {Turn: 1}, {}, {}}
	for i, w := range want {
		if p.Done() != (i >= 3) {
			t.Errorf("tick %d: Done() = %v", i, p.Done())
		}
		if got := p.Next(); got != w {
			t.Errorf("tick %d: Next() = %+v, want %+v", i, got, w)
		}
	}
}

func TestPathDrivesCamera(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 10, 0})
	p := &Path{Legs: []Leg{{Step: Keys{Right: true}.Step(), Ticks: 10}}}
	for !p.Done() {
		p.Next().Apply(c)
	}
	if !near(c.Position.X(), 10*WalkStep) || !near(c.Position.Y(), 10) {
		t.Errorf("position = %v, want x=%f y=10", c.Position, 10*WalkStep)
	}
}

func TestViewMatrixLooksForward(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{1, 2, 3})
	c.Pitch = 0
	v := c.ViewMatrix()

	// A point straight ahead lands on the view-space -Z axis.
	p := v.Mul4x1(mgl32.Vec4{1, 2, -7, 1})
	if !near(p.X(), 0) || !near(p.Y(), 0) || !near(p.Z(), -10) {
		t.Errorf("view-space point = %v, want (0,0,-10)", p)
	}
}
