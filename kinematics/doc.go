// Package kinematics is the dead-reckoning core: a commanded Velocity, a 2D
// Position that integrates it, and the Milestone waypoint a planner hands to
// a path follower.
//
// Distances are in millimeters, time in seconds, headings are s1.Angle values
// normalized by package angle. Every type is a fixed-size value and nothing
// here allocates, locks or fails; callers that share a Position between
// goroutines must serialize writers themselves.
package kinematics

// Millimeters is the linear unit the integration is driven at.
type Millimeters = float64

// Seconds is the elapsed time between two updates.
type Seconds = float64
