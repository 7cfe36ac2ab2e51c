package kinematics

import (
	"math"

	a "odo/angle"

	"github.com/golang/geo/s1"
)

// Origin is the configured starting pose: x and y in millimeters, heading in
// whole degrees. Positions are only meaningful relative to each other when
// they were started from the same Origin.
type Origin struct {
	X     int
	Y     int
	Theta int
}

// StartPosition returns the pose described by the origin.
func (o Origin) StartPosition() Position {
	return StartPosition(o)
}

// Position is a 2D pose.
type Position struct {
	X     Millimeters
	Y     Millimeters
	Theta s1.Angle
}

func NewPosition(x, y Millimeters, theta s1.Angle) Position {
	return Position{X: x, Y: y, Theta: theta}
}

// StartPosition returns the configured starting pose, not the coordinate origin.
func StartPosition(o Origin) Position {
	position := NewPosition(0, 0, a.Radians(0))

	position.Reset(o)

	return position
}

// Reset moves the pose back to the configured starting pose.
func (p *Position) Reset(o Origin) {
	p.X = Millimeters(o.X)
	p.Y = Millimeters(o.Y)
	p.Theta = a.Degrees(float64(o.Theta))
}

// Distance is the planar distance between two poses. Heading is ignored.
func (p Position) Distance(other Position) Millimeters {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// VelocityUpdate advances the pose by one Euler step of the unicycle model.
// The translational part moves along the heading held before the step; the
// heading is then advanced by the rotational speed and wrapped. A negative
// period integrates backwards.
func (p *Position) VelocityUpdate(velocity Velocity, period Seconds) {
	p.X += velocity.Translational * math.Cos(p.Theta.Radians()) * period
	p.Y += velocity.Translational * math.Sin(p.Theta.Radians()) * period
	p.Theta = a.Radians(p.Theta.Radians() + velocity.Rotational*period)
}
