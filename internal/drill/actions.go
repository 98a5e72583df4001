package drill

import (
	"slices"

	"github.com/lox/postrainer/internal/randutil"
)

const (
	threeBetChance  = 0.3
	extraCallChance = 0.5
)

// Action is the qualitative preflop action shown on a seat.
type Action int

const (
	NoAction Action = iota
	OpenRaise
	Call
	ThreeBet
	Fold
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case NoAction:
		return ""
	case OpenRaise:
		return "OR"
	case Call:
		return "call"
	case ThreeBet:
		return "3bet"
	case Fold:
		return "fold"
	default:
		return "unknown"
	}
}

// MarshalText lets actions travel as their tag in JSON.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Actions holds the action of every seat slot.
type Actions [NumSeats]Action

// Count returns how many seats carry action.
func (a Actions) Count(action Action) int {
	n := 0
	for _, act := range a {
		if act == action {
			n++
		}
	}
	return n
}

// SeatOf returns the first seat carrying action, or -1.
func (a Actions) SeatOf(action Action) int {
	return slices.Index(a[:], action)
}

// GenerateActions builds a random scenario: one open raise, optionally a call
// or 3bet from a later seat, optionally one more call behind a caller, and
// folds everywhere else.
//
// Seats are ordered by seat id, not by position relative to the button, and
// only higher-numbered seats may respond to the open.
func GenerateActions(src randutil.Source, active []int) Actions {
	var actions Actions
	if len(active) == 0 {
		return actions
	}

	sorted := sortedSeats(active)
	orIdx := src.IntN(len(sorted))
	actions[sorted[orIdx]] = OpenRaise

	after := sorted[orIdx+1:]
	if len(after) > 0 {
		otherIdx := src.IntN(len(after))
		other := after[otherIdx]
		response := Call
		if src.Float64() < threeBetChance {
			response = ThreeBet
		}
		actions[other] = response

		behind := after[otherIdx+1:]
		if response == Call && len(behind) > 0 && src.Float64() < extraCallChance {
			actions[randutil.Pick(src, behind)] = Call
		}
	}

	foldRest(&actions, active)
	return actions
}

// GenerateActionsForOpen builds the scenario for a known open raiser and
// responder. A 3bet never gets an extra caller behind it.
func GenerateActionsForOpen(src randutil.Source, active []int, orSeat, otherSeat int, otherAction Action) Actions {
	var actions Actions
	if len(active) == 0 {
		return actions
	}

	if otherAction != ThreeBet {
		otherAction = Call
	}
	actions[orSeat] = OpenRaise
	actions[otherSeat] = otherAction

	sorted := sortedSeats(active)
	var behind []int
	if idx := slices.Index(sorted, otherSeat); idx >= 0 {
		behind = sorted[idx+1:]
	}

	if otherAction != ThreeBet && len(behind) > 0 && src.Float64() < extraCallChance {
		seat := randutil.Pick(src, behind)
		if actions[seat] == NoAction {
			actions[seat] = Call
		}
	}

	foldRest(&actions, active)
	return actions
}

func sortedSeats(active []int) []int {
	sorted := slices.Clone(active)
	slices.Sort(sorted)
	return sorted
}

func foldRest(actions *Actions, active []int) {
	for _, seat := range active {
		if actions[seat] == NoAction {
			actions[seat] = Fold
		}
	}
}
