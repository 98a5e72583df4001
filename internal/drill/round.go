package drill

import (
	"fmt"

	"github.com/lox/postrainer/internal/randutil"
)

// Round is everything generated for one question. A new round replaces the
// previous one wholesale.
type Round struct {
	Seating    Seating
	Convention Convention
	Labels     Labels
	Actions    Actions
	Question   Question
}

// NewRound allocates seats, labels them, deals a preflop scenario and asks a
// question for mode.
func NewRound(src randutil.Source, mode Mode, convention Convention, playerCount int) (Round, error) {
	seating := Allocate(src, playerCount)
	labels := ComputeLabels(seating.Active, seating.Button, convention)
	actions := GenerateActions(src, seating.Active)

	q, actions, err := GenerateQuestion(src, mode, seating, labels, actions)
	if err != nil {
		return Round{}, fmt.Errorf("failed to generate %s question: %w", mode, err)
	}

	return Round{
		Seating:    seating,
		Convention: convention,
		Labels:     labels,
		Actions:    actions,
		Question:   q,
	}, nil
}

// Clone returns a copy that shares no memory with r.
func (r Round) Clone() Round {
	r.Seating = r.Seating.Clone()
	return r
}

// Validate grades a against the round's question.
func (r Round) Validate(a Answer) bool {
	return Validate(r.Question, a, r.Seating)
}
