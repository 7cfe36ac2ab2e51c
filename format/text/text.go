// Package text renders kinematic values for humans: P(x, y, theta),
// V(translational, rotational) and M(t<position>, Vs(v), Vt(v), Vm(v)).
// Floats use Go's default formatting and theta is shown in degrees.
package text

import (
	"fmt"

	k "odo/kinematics"
)

func Position(p k.Position) string {
	return fmt.Sprintf("P(%v, %v, %v)", p.X, p.Y, p.Theta)
}

func Velocity(v k.Velocity) string {
	return fmt.Sprintf("V(%v, %v)", v.Translational, v.Rotational)
}

func Milestone(m k.Milestone) string {
	return fmt.Sprintf("M(t%s, Vs(%v), Vt(%v), Vm(%v))",
		Position(m.TargetPosition),
		m.StartingVelocityTranslational,
		m.TargetVelocityTranslational,
		m.MaxVelocityTranslational,
	)
}

type positionStringer k.Position

func (p positionStringer) String() string { return Position(k.Position(p)) }

type velocityStringer k.Velocity

func (v velocityStringer) String() string { return Velocity(k.Velocity(v)) }

type milestoneStringer k.Milestone

func (m milestoneStringer) String() string { return Milestone(k.Milestone(m)) }

// PositionStringer lets a pose be handed straight to the logger or %v.
func PositionStringer(p k.Position) fmt.Stringer { return positionStringer(p) }

func VelocityStringer(v k.Velocity) fmt.Stringer { return velocityStringer(v) }

func MilestoneStringer(m k.Milestone) fmt.Stringer { return milestoneStringer(m) }
