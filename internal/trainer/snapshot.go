package trainer

import (
	"time"

	"github.com/lox/postrainer/internal/drill"
)

// Snapshot is a read-only copy of the controller state for renderers.
type Snapshot struct {
	// Round counts generated rounds, starting at 1.
	Round  int
	Config Config

	Seating    drill.Seating
	Active     [drill.NumSeats]bool
	Convention drill.Convention
	Labels     drill.Labels
	Actions    drill.Actions
	// Question is nil while a transition is pending.
	Question drill.Question

	TimeRemaining         time.Duration
	TimeRemainingFraction float64

	Status   Status
	Outcome  Outcome
	Flashing bool
}

// Snapshot returns a copy of the current state. Repeated calls without an
// intervening mutation return equal values.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	round := c.round.Clone()
	var q drill.Question
	if c.live {
		q = round.Question
	}

	frac := 0.0
	if c.cfg.timer > 0 {
		frac = min(max(float64(c.remaining)/float64(c.cfg.timer), 0), 1)
	}

	return Snapshot{
		Round:                 c.rounds,
		Config:                c.cfg.Config(),
		Seating:               round.Seating,
		Active:                round.Seating.ActiveMask(),
		Convention:            round.Convention,
		Labels:                round.Labels,
		Actions:               round.Actions,
		Question:              q,
		TimeRemaining:         c.remaining,
		TimeRemainingFraction: frac,
		Status:                c.status,
		Outcome:               c.outcome,
		Flashing:              c.flashing,
	}
}

// LabelsInUse returns the labels present this round in canonical order.
func (s Snapshot) LabelsInUse() []string {
	return s.Labels.InUse(s.Convention)
}

// Live reports whether a question is waiting for an answer.
func (s Snapshot) Live() bool {
	return s.Question != nil
}
