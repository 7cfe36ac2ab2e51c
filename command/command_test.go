package command

import (
	"math"
	"testing"

	a "odo/angle"
	k "odo/kinematics"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVelocity(t *testing.T) {
	cmd, err := Parse("v/50/-0.785\n")
	require.NoError(t, err)
	assert.Equal(t, Velocity, cmd.Kind)
	assert.Equal(t, k.NewVelocity(50, -0.785), cmd.Velocity)
}

func TestParseMilestone(t *testing.T) {
	cmd, err := Parse("m/120/40/90/0/25/200")
	require.NoError(t, err)
	assert.Equal(t, Milestone, cmd.Kind)

	m := cmd.Milestone
	assert.Equal(t, 120.0, m.TargetPosition.X)
	assert.Equal(t, 40.0, m.TargetPosition.Y)
	assert.True(t, a.IsWithin(m.TargetPosition.Theta, a.Radians(math.Pi/2), a.Degrees(0.001)))
	assert.Equal(t, 0.0, m.StartingVelocityTranslational)
	assert.Equal(t, 25.0, m.TargetVelocityTranslational)
	assert.Equal(t, 200.0, m.MaxVelocityTranslational)
}

func TestParseControl(t *testing.T) {
	cmd, err := Parse("r")
	require.NoError(t, err)
	assert.Equal(t, Reset, cmd.Kind)

	cmd, err = Parse("v/10!")
	require.NoError(t, err)
	assert.Equal(t, Emergency, cmd.Kind)
	assert.Equal(t, k.Zero(), cmd.Velocity)
}

func TestParseErrors(t *testing.T) {
	malformed := []string{
		"v/1", "v/1/2/3", "v/a/2", "m/1/2/3/4/5", "m/1/2/3/4/5/x",
		"v/NaN/0", "v/1/Inf", "v/-Infinity/0", "m/1/2/NaN/0/0/0", "m/1/2/3/0/0/+Inf",
	}
	for _, line := range malformed {
		_, err := Parse(line)
		assert.True(t, errors.Is(err, ErrMalformed), line)
	}

	for _, line := range []string{"", "x/1/2", "b/d/d"} {
		_, err := Parse(line)
		assert.True(t, errors.Is(err, ErrUnknownCommand), line)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "velocity", Velocity.String())
	assert.Equal(t, "emergency", Emergency.String())
	assert.Equal(t, "kind", KindType(42).String())
}
