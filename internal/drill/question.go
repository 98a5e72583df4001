package drill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/postrainer/internal/randutil"
)

var (
	// ErrUnknownMode is returned for a mode outside the four drill modes.
	ErrUnknownMode = errors.New("unknown drill mode")
	// ErrNotEnoughSeats is returned when a question needs more active seats.
	ErrNotEnoughSeats = errors.New("not enough active seats")
)

// Mode selects which kind of question a round asks.
type Mode int

const (
	// ModePosToSeat shows a label and asks for its seat.
	ModePosToSeat Mode = iota
	// ModeSeatToPos shows a seat and asks for its label.
	ModeSeatToPos
	// ModeSeatIP shows a seat in an open-raise scenario and asks IP or OOP.
	ModeSeatIP
	// ModeIPToSeat asks which seat of the scenario is IP (or OOP).
	ModeIPToSeat
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModePosToSeat, ModeSeatToPos, ModeSeatIP, ModeIPToSeat}

// String returns the string representation of a mode
func (m Mode) String() string {
	switch m {
	case ModePosToSeat:
		return "posToSeat"
	case ModeSeatToPos:
		return "seatToPos"
	case ModeSeatIP:
		return "seatIp"
	case ModeIPToSeat:
		return "ipToSeat"
	default:
		return "unknown"
	}
}

// ParseMode accepts the mode names case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Role is the IP/OOP side asked about in ModeIPToSeat.
type Role int

const (
	RoleIP Role = iota
	RoleOOP
)

// String returns the string representation of a role
func (r Role) String() string {
	if r == RoleIP {
		return "IP"
	}
	return "OOP"
}

// Question is one of PosToSeat, SeatToPos, SeatIP or IPToSeat.
type Question interface {
	Mode() Mode
	question()
}

// PosToSeat asks which seat carries Label.
type PosToSeat struct {
	Label      string
	TargetSeat int
}

// SeatToPos asks for the label of TargetSeat.
type SeatToPos struct {
	TargetSeat   int
	CorrectLabel string
}

// Scenario is the open raise and response an IP question is built on.
type Scenario struct {
	OpenSeat    int
	OtherSeat   int
	OtherAction Action
	// OtherIsIP is true when the responder acts after the open raiser postflop.
	OtherIsIP bool
}

// SeatIP asks whether TargetSeat is in position against the other player.
type SeatIP struct {
	Scenario
	TargetSeat int
	IsIP       bool
}

// IPToSeat asks which scenario seat plays the Ask role.
type IPToSeat struct {
	Scenario
	Ask         Role
	CorrectSeat int
}

func (PosToSeat) Mode() Mode { return ModePosToSeat }
func (SeatToPos) Mode() Mode { return ModeSeatToPos }
func (SeatIP) Mode() Mode    { return ModeSeatIP }
func (IPToSeat) Mode() Mode  { return ModeIPToSeat }

func (PosToSeat) question() {}
func (SeatToPos) question() {}
func (SeatIP) question()    {}
func (IPToSeat) question()  {}

// GenerateQuestion builds the question for mode. actions is the round's free
// scenario; the returned Actions replace it for the IP modes so the scenario on
// the table matches the question.
func GenerateQuestion(src randutil.Source, mode Mode, seating Seating, labels Labels, actions Actions) (Question, Actions, error) {
	active := seating.Active
	if len(active) == 0 {
		return nil, actions, ErrNotEnoughSeats
	}

	switch mode {
	case ModePosToSeat:
		inUse := labels.Assigned()
		if len(inUse) == 0 {
			return nil, actions, ErrNotEnoughSeats
		}
		label := randutil.Pick(src, inUse)
		return PosToSeat{Label: label, TargetSeat: labels.SeatOf(label)}, actions, nil

	case ModeSeatToPos:
		seat := randutil.Pick(src, active)
		return SeatToPos{TargetSeat: seat, CorrectLabel: labels[seat]}, actions, nil

	case ModeSeatIP:
		sc, scenarioActions, err := buildScenario(src, seating)
		if err != nil {
			return nil, actions, err
		}
		q := SeatIP{Scenario: sc, TargetSeat: sc.OtherSeat, IsIP: sc.OtherIsIP}
		if src.Float64() < 0.5 {
			q.TargetSeat = sc.OpenSeat
			q.IsIP = !sc.OtherIsIP
		}
		return q, scenarioActions, nil

	case ModeIPToSeat:
		sc, scenarioActions, err := buildScenario(src, seating)
		if err != nil {
			return nil, actions, err
		}
		q := IPToSeat{Scenario: sc, Ask: RoleOOP}
		if src.Float64() < 0.5 {
			q.Ask = RoleIP
		}
		q.CorrectSeat = q.SeatFor(q.Ask)
		return q, scenarioActions, nil

	default:
		return nil, actions, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
}

// SeatFor returns the scenario seat that plays role.
func (sc Scenario) SeatFor(role Role) int {
	ipSeat, oopSeat := sc.OpenSeat, sc.OtherSeat
	if sc.OtherIsIP {
		ipSeat, oopSeat = sc.OtherSeat, sc.OpenSeat
	}
	if role == RoleIP {
		return ipSeat
	}
	return oopSeat
}

// buildScenario picks distinct open-raise and responder seats, a 50/50 call or
// 3bet response, and the constrained actions that go with them.
func buildScenario(src randutil.Source, seating Seating) (Scenario, Actions, error) {
	active := seating.Active
	if len(active) < 2 {
		return Scenario{}, Actions{}, ErrNotEnoughSeats
	}

	openIdx := src.IntN(len(active))
	// Uniform over the remaining seats: skip past the opener's slot.
	otherIdx := src.IntN(len(active) - 1)
	if otherIdx >= openIdx {
		otherIdx++
	}
	openSeat, otherSeat := active[openIdx], active[otherIdx]

	otherAction := ThreeBet
	if src.Float64() < 0.5 {
		otherAction = Call
	}

	actions := GenerateActionsForOpen(src, active, openSeat, otherSeat, otherAction)
	order := PostflopOrder(active, seating.Button)

	return Scenario{
		OpenSeat:    openSeat,
		OtherSeat:   otherSeat,
		OtherAction: otherAction,
		OtherIsIP:   InPosition(order, otherSeat, openSeat),
	}, actions, nil
}
