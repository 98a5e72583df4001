package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/postrainer/internal/randutil"
)

// sixMax is seats 0-5 with the button on seat 0: postflop order [1 2 3 4 5 0].
var sixMax = Seating{Active: []int{0, 1, 2, 3, 4, 5}, Button: 0}

// scenarioDraws opens from seat 1 and has seat 4 call with no extra caller.
// Open index 1; responder draw 3 skips past the opener to index 4.
func scenarioDraws(floats ...float64) *randutil.Scripted {
	return randutil.NewScripted([]int{1, 3}, append([]float64{0.2, 0.9}, floats...))
}

func TestGenerateQuestionSeatIP(t *testing.T) {
	labels := ComputeLabels(sixMax.Active, sixMax.Button, ConventionB)

	t.Run("target is the opener", func(t *testing.T) {
		q, actions, err := GenerateQuestion(scenarioDraws(0.1), ModeSeatIP, sixMax, labels, Actions{})
		require.NoError(t, err)

		sq, ok := q.(SeatIP)
		require.True(t, ok)
		assert.Equal(t, 1, sq.OpenSeat)
		assert.Equal(t, 4, sq.OtherSeat)
		assert.Equal(t, Call, sq.OtherAction)
		assert.True(t, sq.OtherIsIP)
		assert.Equal(t, 1, sq.TargetSeat)
		assert.False(t, sq.IsIP, "opener is out of position against seat 4")

		assert.Equal(t, OpenRaise, actions[1])
		assert.Equal(t, Call, actions[4])
		assert.Equal(t, 4, actions.Count(Fold))
	})

	t.Run("target is the responder", func(t *testing.T) {
		q, _, err := GenerateQuestion(scenarioDraws(0.9), ModeSeatIP, sixMax, labels, Actions{})
		require.NoError(t, err)

		sq := q.(SeatIP)
		assert.Equal(t, 4, sq.TargetSeat)
		assert.True(t, sq.IsIP)
	})
}

func TestGenerateQuestionIPToSeat(t *testing.T) {
	labels := ComputeLabels(sixMax.Active, sixMax.Button, ConventionB)

	q, _, err := GenerateQuestion(scenarioDraws(0.1), ModeIPToSeat, sixMax, labels, Actions{})
	require.NoError(t, err)
	iq := q.(IPToSeat)
	assert.Equal(t, RoleIP, iq.Ask)
	assert.Equal(t, 4, iq.CorrectSeat)

	q, _, err = GenerateQuestion(scenarioDraws(0.9), ModeIPToSeat, sixMax, labels, Actions{})
	require.NoError(t, err)
	iq = q.(IPToSeat)
	assert.Equal(t, RoleOOP, iq.Ask)
	assert.Equal(t, 1, iq.CorrectSeat)
}

func TestGenerateQuestionLabelModes(t *testing.T) {
	seating := Seating{Active: []int{0, 1, 2, 3, 4, 5}, Button: 2}
	labels := ComputeLabels(seating.Active, seating.Button, ConventionB)
	free := Actions{OpenRaise, Fold, Fold, Fold, Fold, Fold}

	t.Run("posToSeat", func(t *testing.T) {
		// Assigned labels in seat order are HJ CO BTN SB BB UTG.
		q, actions, err := GenerateQuestion(randutil.NewScripted([]int{5}, nil), ModePosToSeat, seating, labels, free)
		require.NoError(t, err)
		assert.Equal(t, PosToSeat{Label: "UTG", TargetSeat: 5}, q)
		assert.Equal(t, free, actions, "label modes keep the free scenario")
	})

	t.Run("seatToPos", func(t *testing.T) {
		q, actions, err := GenerateQuestion(randutil.NewScripted([]int{5}, nil), ModeSeatToPos, seating, labels, free)
		require.NoError(t, err)
		assert.Equal(t, SeatToPos{TargetSeat: 5, CorrectLabel: "UTG"}, q)
		assert.Equal(t, free, actions)
	})
}

func TestGenerateQuestionErrors(t *testing.T) {
	one := Seating{Active: []int{4}, Button: 4}

	_, _, err := GenerateQuestion(randutil.New(1), ModeSeatIP, one, Labels{}, Actions{})
	assert.ErrorIs(t, err, ErrNotEnoughSeats)

	_, _, err = GenerateQuestion(randutil.New(1), Mode(42), sixMax, Labels{}, Actions{})
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, _, err = GenerateQuestion(randutil.New(1), ModeSeatToPos, Seating{}, Labels{}, Actions{})
	assert.ErrorIs(t, err, ErrNotEnoughSeats)
}

func TestScenarioSeatFor(t *testing.T) {
	sc := Scenario{OpenSeat: 2, OtherSeat: 7, OtherIsIP: false}
	assert.Equal(t, 2, sc.SeatFor(RoleIP))
	assert.Equal(t, 7, sc.SeatFor(RoleOOP))

	sc.OtherIsIP = true
	assert.Equal(t, 7, sc.SeatFor(RoleIP))
	assert.Equal(t, 2, sc.SeatFor(RoleOOP))
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMode("SEATIP")
	require.NoError(t, err)
	assert.Equal(t, ModeSeatIP, got)

	_, err = ParseMode("orIp")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
