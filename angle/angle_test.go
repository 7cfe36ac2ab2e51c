package angle

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
)

func TestDegreesWrap(t *testing.T) {
	assert.InDelta(t, 90.0, Degrees(90).Degrees(), 1e-9)
	assert.InDelta(t, -90.0, Degrees(270).Degrees(), 1e-9)
	assert.InDelta(t, 45.0, Degrees(-315).Degrees(), 1e-9)
	assert.InDelta(t, 180.0, Degrees(-180).Degrees(), 1e-9)
	assert.InDelta(t, 0.0, Degrees(720).Degrees(), 1e-9)
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Radians(math.Pi/2).Radians(), 1e-12)
	assert.InDelta(t, -math.Pi/2, Radians(3*math.Pi/2).Radians(), 1e-12)
	assert.InDelta(t, 45.0, Radians(math.Pi/4).Degrees(), 1e-9)
}

func TestDiff(t *testing.T) {
	assert.InDelta(t, 10.0, Diff(Degrees(5), Degrees(-5)).Degrees(), 1e-9)
	assert.InDelta(t, -2.0, Diff(Degrees(179), Degrees(-179)).Degrees(), 1e-9)
	assert.InDelta(t, 2.0, Diff(Degrees(-179), Degrees(179)).Degrees(), 1e-9)
}

func TestIsWithin(t *testing.T) {
	tol := 0.001 * s1.Degree

	assert.True(t, IsWithin(Degrees(45), Degrees(45.0005), tol))
	assert.False(t, IsWithin(Degrees(45), Degrees(45.01), tol))
	assert.True(t, IsWithin(Degrees(179.9995), Degrees(-179.9999), tol))
	assert.True(t, IsWithin(Degrees(10), Degrees(12), -3*s1.Degree))
	assert.True(t, IsWithin(Radians(-math.Pi/4), Degrees(315), tol))
}

func TestCircularChecker(t *testing.T) {
	assert.Equal(t, 0, CircularChecker(0))
	assert.Equal(t, 90, CircularChecker(90))
	assert.Equal(t, 0, CircularChecker(720))
	assert.Equal(t, 90, CircularChecker(450))
	assert.Equal(t, 270, CircularChecker(-90))
	assert.Equal(t, 270, CircularChecker(-450))
}
