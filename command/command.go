// Package command reads velocity commands from a controller over a
// newline-separated, slash-delimited line protocol:
//
//	v/<translational mm/s>/<rotational rad/s>
//	m/<x mm>/<y mm>/<theta deg>/<starting>/<target>/<max>
//	r
//	!
//
// "r" resets the pose to the configured origin and "!" is an emergency stop.
package command

import (
	"math"
	"strconv"
	"strings"

	a "odo/angle"
	k "odo/kinematics"

	"github.com/pkg/errors"
)

type KindType int

const (
	NA KindType = iota
	Velocity
	Milestone
	Reset
	Emergency
)

func (s KindType) String() string {
	switch s {
	case NA:
		return "na"
	case Velocity:
		return "velocity"
	case Milestone:
		return "milestone"
	case Reset:
		return "reset"
	case Emergency:
		return "emergency"
	}
	return "kind"
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMalformed      = errors.New("malformed command")
)

// Command is one decoded line. Only the field matching Kind is set.
type Command struct {
	Kind      KindType
	Velocity  k.Velocity
	Milestone k.Milestone
}

func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)

	// emergency wins over anything else on the line
	if strings.Contains(line, "!") {
		return Command{Kind: Emergency, Velocity: k.Zero()}, nil
	}

	split := strings.Split(line, "/")
	switch split[0] {
	case "r":
		return Command{Kind: Reset}, nil

	case "v":
		f, err := floats(line, split[1:], 2)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Velocity, Velocity: k.NewVelocity(f[0], f[1])}, nil

	case "m":
		f, err := floats(line, split[1:], 6)
		if err != nil {
			return Command{}, err
		}
		target := k.NewPosition(f[0], f[1], a.Degrees(f[2]))
		return Command{Kind: Milestone, Milestone: k.NewMilestone(target, f[3], f[4], f[5])}, nil
	}

	return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", line)
}

func floats(line string, fields []string, n int) ([]float64, error) {
	if len(fields) != n {
		return nil, errors.Wrapf(ErrMalformed, "%q: want %d values, got %d", line, n, len(fields))
	}
	out := make([]float64, n)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "%q: %v", line, err)
		}
		// ParseFloat accepts NaN and Inf, which would poison the pose for good
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrMalformed, "%q: %q is not finite", line, field)
		}
		out[i] = v
	}
	return out, nil
}
