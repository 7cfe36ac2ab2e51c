package kinematics

// Milestone is a planning waypoint: the pose to reach and the translational
// velocity profile to approach it with. Nothing checks that the starting and
// target velocities stay below the max; that is the planner's job.
type Milestone struct {
	TargetPosition                Position
	StartingVelocityTranslational float64
	TargetVelocityTranslational   float64
	MaxVelocityTranslational      float64
}

func NewMilestone(targetPosition Position, startingVelocityTranslational, targetVelocityTranslational, maxVelocityTranslational float64) Milestone {
	return Milestone{
		TargetPosition:                targetPosition,
		StartingVelocityTranslational: startingVelocityTranslational,
		TargetVelocityTranslational:   targetVelocityTranslational,
		MaxVelocityTranslational:      maxVelocityTranslational,
	}
}
