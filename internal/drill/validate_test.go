package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	seating := Seating{Active: []int{0, 1, 2, 3, 4, 5}, Button: 0}
	scenario := Scenario{OpenSeat: 1, OtherSeat: 4, OtherAction: Call, OtherIsIP: true}

	tests := []struct {
		name     string
		question Question
		answer   Answer
		want     bool
	}{
		{"posToSeat right seat", PosToSeat{Label: "UTG", TargetSeat: 3}, SeatAnswer(3), true},
		{"posToSeat wrong seat", PosToSeat{Label: "UTG", TargetSeat: 3}, SeatAnswer(2), false},
		{"posToSeat inactive seat", PosToSeat{Label: "UTG", TargetSeat: 8}, SeatAnswer(8), false},
		{"posToSeat label input", PosToSeat{Label: "UTG", TargetSeat: 3}, LabelAnswer("UTG"), false},

		{"seatToPos right label", SeatToPos{TargetSeat: 5, CorrectLabel: "UTG"}, LabelAnswer("UTG"), true},
		{"seatToPos wrong label", SeatToPos{TargetSeat: 5, CorrectLabel: "UTG"}, LabelAnswer("CO"), false},
		{"seatToPos seat click", SeatToPos{TargetSeat: 5, CorrectLabel: "UTG"}, SeatAnswer(5), false},
		{"seatToPos empty label never matches", SeatToPos{TargetSeat: 9}, LabelAnswer(""), false},

		{"seatIp right choice", SeatIP{Scenario: scenario, TargetSeat: 1, IsIP: false}, IPAnswer(false), true},
		{"seatIp wrong choice", SeatIP{Scenario: scenario, TargetSeat: 1, IsIP: false}, IPAnswer(true), false},
		{"seatIp seat click", SeatIP{Scenario: scenario, TargetSeat: 1, IsIP: false}, SeatAnswer(1), false},

		{"ipToSeat right seat", IPToSeat{Scenario: scenario, Ask: RoleIP, CorrectSeat: 4}, SeatAnswer(4), true},
		{"ipToSeat other scenario seat", IPToSeat{Scenario: scenario, Ask: RoleIP, CorrectSeat: 4}, SeatAnswer(1), false},
		{"ipToSeat ip button", IPToSeat{Scenario: scenario, Ask: RoleIP, CorrectSeat: 4}, IPAnswer(true), false},

		{"no question", nil, SeatAnswer(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.question, tt.answer, seating))
		})
	}
}

func TestAccepts(t *testing.T) {
	posToSeat := PosToSeat{Label: "BB", TargetSeat: 2}
	seatToPos := SeatToPos{TargetSeat: 2, CorrectLabel: "BB"}
	seatIP := SeatIP{TargetSeat: 2}
	ipToSeat := IPToSeat{CorrectSeat: 2}

	for _, q := range []Question{posToSeat, seatToPos, seatIP, ipToSeat} {
		assert.True(t, Accepts(q, SeatAnswer(0)), "seat clicks are always graded in %s", q.Mode())
	}

	assert.True(t, Accepts(seatToPos, LabelAnswer("BB")))
	assert.False(t, Accepts(posToSeat, LabelAnswer("BB")))
	assert.False(t, Accepts(ipToSeat, LabelAnswer("BB")))

	assert.True(t, Accepts(seatIP, IPAnswer(true)))
	assert.False(t, Accepts(ipToSeat, IPAnswer(true)))
	assert.False(t, Accepts(seatToPos, IPAnswer(false)))

	assert.False(t, Accepts(nil, SeatAnswer(0)))
}
