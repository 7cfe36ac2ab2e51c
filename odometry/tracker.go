// Package odometry keeps a dead-reckoned pose up to date from the velocity
// commands a controller sends.
package odometry

import (
	"context"
	"sync"
	"time"

	"odo/command"
	"odo/format/text"
	k "odo/kinematics"

	log "github.com/s00500/env_logger"
)

// Tracker owns a pose with a single writer and any number of readers.
type Tracker struct {
	origin k.Origin

	mu           sync.RWMutex
	pose         k.Position
	velocity     k.Velocity
	milestone    k.Milestone
	hasMilestone bool
}

func NewTracker(origin k.Origin) *Tracker {
	return &Tracker{
		origin: origin,
		pose:   k.StartPosition(origin),
	}
}

// Apply updates the commanded state. It never moves the pose by itself.
func (t *Tracker) Apply(cmd command.Command) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch cmd.Kind {
	case command.Velocity:
		t.velocity = cmd.Velocity

	case command.Milestone:
		t.milestone = cmd.Milestone
		t.hasMilestone = true
		log.Infoln("New milestone:", text.MilestoneStringer(cmd.Milestone))

	case command.Reset:
		t.pose.Reset(t.origin)
		log.Infoln("Pose reset to", text.PositionStringer(t.pose))

	case command.Emergency:
		t.velocity = k.Zero()
		log.Warnln("Emergency stop at", text.PositionStringer(t.pose))

	default:
		log.Infoln("Ignoring command of kind", cmd.Kind)
	}
}

// Step integrates the current velocity over period and returns the new pose.
func (t *Tracker) Step(period k.Seconds) k.Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pose.VelocityUpdate(t.velocity, period)
	return t.pose
}

func (t *Tracker) Pose() k.Position {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pose
}

func (t *Tracker) Velocity() k.Velocity {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.velocity
}

func (t *Tracker) Milestone() (k.Milestone, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.milestone, t.hasMilestone
}

// DistanceToMilestone is the planar distance left to the milestone target.
func (t *Tracker) DistanceToMilestone() (k.Millimeters, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.hasMilestone {
		return 0, false
	}
	return t.pose.Distance(t.milestone.TargetPosition), true
}

func (t *Tracker) Reset() {
	t.Apply(command.Command{Kind: command.Reset})
}

// Run steps the pose every period until ctx is done, applying commands as
// they arrive. publish, when set, gets every new pose. Closing cmds does not
// stop the loop; the last commanded velocity keeps being integrated.
func (t *Tracker) Run(ctx context.Context, period time.Duration, cmds <-chan command.Command, publish func(k.Position)) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	clock := NewClock()
	clock.Start()

	for {
		select {
		case <-ctx.Done():
			log.Infof("Tracker stopped after %v at %v", clock.Now(), text.PositionStringer(t.Pose()))
			return

		case cmd, ok := <-cmds:
			if !ok {
				// no more commands; keep integrating the last velocity
				cmds = nil
				continue
			}
			// integrate up to now with the old velocity before switching
			t.Step(clock.Lap())
			t.Apply(cmd)
			if publish != nil {
				publish(t.Pose())
			}

		case <-ticker.C:
			pose := t.Step(clock.Lap())
			if publish != nil {
				publish(pose)
			}
		}
	}
}
