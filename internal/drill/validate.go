package drill

// Answer is one of SeatAnswer, LabelAnswer or IPAnswer.
type Answer interface {
	answer()
}

// SeatAnswer is a click on a seat.
type SeatAnswer int

// LabelAnswer is a click on a position label button.
type LabelAnswer string

// IPAnswer is a click on the IP (true) or OOP (false) button.
type IPAnswer bool

func (SeatAnswer) answer()  {}
func (LabelAnswer) answer() {}
func (IPAnswer) answer()    {}

// Accepts reports whether the answer's input channel is live for q. Seat clicks
// are always live and count as wrong in the label and IP/OOP modes; label
// buttons are only live in ModeSeatToPos and IP/OOP buttons only in ModeSeatIP.
func Accepts(q Question, a Answer) bool {
	if q == nil {
		return false
	}
	switch a.(type) {
	case SeatAnswer:
		return true
	case LabelAnswer:
		return q.Mode() == ModeSeatToPos
	case IPAnswer:
		return q.Mode() == ModeSeatIP
	default:
		return false
	}
}

// Validate reports whether a answers q correctly.
func Validate(q Question, a Answer, seating Seating) bool {
	switch q := q.(type) {
	case PosToSeat:
		seat, ok := a.(SeatAnswer)
		return ok && int(seat) == q.TargetSeat && seating.IsActive(int(seat))
	case SeatToPos:
		label, ok := a.(LabelAnswer)
		return ok && q.CorrectLabel != "" && string(label) == q.CorrectLabel
	case SeatIP:
		ip, ok := a.(IPAnswer)
		return ok && bool(ip) == q.IsIP
	case IPToSeat:
		seat, ok := a.(SeatAnswer)
		return ok && int(seat) == q.CorrectSeat && seating.IsActive(int(seat))
	default:
		return false
	}
}
