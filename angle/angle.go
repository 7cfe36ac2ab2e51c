// Package angle wraps s1.Angle with the constructors and comparisons the pose
// model needs. Angles are always kept normalized into (-π, π].
package angle

import (
	"math"

	"github.com/golang/geo/s1"
)

func Degrees(deg float64) s1.Angle {
	return Wrap(s1.Angle(deg) * s1.Degree)
}

func Radians(rad float64) s1.Angle {
	return Wrap(s1.Angle(rad) * s1.Radian)
}

// Wrap returns the equivalent angle in (-π, π].
func Wrap(a s1.Angle) s1.Angle {
	return a.Normalized()
}

// Diff is the shortest signed rotation taking b onto a.
func Diff(a, b s1.Angle) s1.Angle {
	return Wrap(a - b)
}

// IsWithin compares two headings, treating -179° and 179° as 2° apart.
func IsWithin(a, b, tolerance s1.Angle) bool {
	return math.Abs(Diff(a, b).Radians()) <= math.Abs(tolerance.Radians())
}
