package kinematics

// Velocity is a commanded instantaneous motion: translational speed in mm/s
// and rotational speed in rad/s.
type Velocity struct {
	Translational float64
	Rotational    float64
}

// Zero is the stopped velocity.
func Zero() Velocity {
	return Velocity{}
}

func NewVelocity(translational, rotational float64) Velocity {
	return Velocity{
		Translational: translational,
		Rotational:    rotational,
	}
}
