// Package compact renders kinematic values into caller-owned byte buffers
// for the UDP log channel. Output has fixed precision and no spaces, so a
// line stays short on the wire.
package compact

import (
	"strconv"

	k "odo/kinematics"
)

const (
	poseDecimals     = 1
	velocityDecimals = 3
)

func AppendPosition(dst []byte, p k.Position) []byte {
	dst = append(dst, "P("...)
	dst = strconv.AppendFloat(dst, p.X, 'f', poseDecimals, 64)
	dst = append(dst, ',')
	dst = strconv.AppendFloat(dst, p.Y, 'f', poseDecimals, 64)
	dst = append(dst, ',')
	dst = strconv.AppendFloat(dst, p.Theta.Degrees(), 'f', poseDecimals, 64)
	return append(dst, ')')
}

func AppendVelocity(dst []byte, v k.Velocity) []byte {
	dst = append(dst, "V("...)
	dst = strconv.AppendFloat(dst, v.Translational, 'f', velocityDecimals, 64)
	dst = append(dst, ',')
	dst = strconv.AppendFloat(dst, v.Rotational, 'f', velocityDecimals, 64)
	return append(dst, ')')
}

func AppendMilestone(dst []byte, m k.Milestone) []byte {
	dst = append(dst, "M(t"...)
	dst = AppendPosition(dst, m.TargetPosition)
	dst = appendScalar(dst, ",Vs(", m.StartingVelocityTranslational)
	dst = appendScalar(dst, ",Vt(", m.TargetVelocityTranslational)
	dst = appendScalar(dst, ",Vm(", m.MaxVelocityTranslational)
	return append(dst, ')')
}

func appendScalar(dst []byte, prefix string, v float64) []byte {
	dst = append(dst, prefix...)
	dst = strconv.AppendFloat(dst, v, 'f', velocityDecimals, 64)
	return append(dst, ')')
}
