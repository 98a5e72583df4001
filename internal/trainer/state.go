package trainer

// Status is the round transition guard.
type Status int

const (
	// StatusIdle means a question is live and answers/ticks are processed.
	StatusIdle Status = iota
	// StatusTransitioning means a round advance is pending; new transition
	// requests are dropped until it completes.
	StatusTransitioning
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// Outcome records what last happened to the round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeCorrect: the previous question was answered and the round advanced.
	OutcomeCorrect
	// OutcomeWrongAnswer: the live question got a wrong answer and stays live.
	OutcomeWrongAnswer
	// OutcomeTimeExpired: the countdown ran out and the round was (or is being) replaced.
	OutcomeTimeExpired
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrongAnswer:
		return "wrong_answer"
	case OutcomeTimeExpired:
		return "time_expired"
	default:
		return "unknown"
	}
}

// MarshalText lets statuses travel as their name in JSON.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalText lets outcomes travel as their name in JSON.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
