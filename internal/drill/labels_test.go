package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/postrainer/internal/randutil"
)

func TestComputeLabelsSixHanded(t *testing.T) {
	active := []int{0, 1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		convention Convention
		want       Labels
	}{
		{
			name:       "convention B",
			convention: ConventionB,
			want:       Labels{"HJ", "CO", "BTN", "SB", "BB", "UTG", "", "", "", ""},
		},
		{
			name:       "convention A",
			convention: ConventionA,
			want:       Labels{"MP", "CO", "BTN", "SB", "BB", "UTG", "", "", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLabels(active, 2, tt.convention))
		})
	}
}

func TestComputeLabelsFullRing(t *testing.T) {
	active := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	b := ComputeLabels(active, 9, ConventionB)
	assert.Equal(t, Labels{"SB", "BB", "UTG", "UTG+1", "UTG+2", "UTG+3", "LJ", "HJ", "CO", "BTN"}, b)

	a := ComputeLabels(active, 9, ConventionA)
	assert.Equal(t, Labels{"SB", "BB", "UTG", "UTG+1", "UTG+2", "UTG+3", "MP", "MP+1", "CO", "BTN"}, a)
}

func TestComputeLabelsSparseSeats(t *testing.T) {
	// Button on the highest seat wraps the blinds to the lowest seats.
	labels := ComputeLabels([]int{1, 4, 6, 8}, 8, ConventionB)
	assert.Equal(t, "BTN", labels[8])
	assert.Equal(t, "SB", labels[1])
	assert.Equal(t, "BB", labels[4])
	assert.Equal(t, "UTG", labels[6])
	for _, seat := range []int{0, 2, 3, 5, 7, 9} {
		assert.Empty(t, labels[seat])
	}
}

func TestComputeLabelsHeadsUp(t *testing.T) {
	labels := ComputeLabels([]int{3, 7}, 7, ConventionB)
	assert.Equal(t, "SB", labels[7], "button posts the small blind heads-up")
	assert.Equal(t, "BB", labels[3])
	assert.Equal(t, -1, labels.SeatOf("BTN"))
}

func TestComputeLabelsDegenerate(t *testing.T) {
	assert.Equal(t, Labels{}, ComputeLabels(nil, 0, ConventionA))
	assert.Equal(t, Labels{}, ComputeLabels([]int{4}, 4, ConventionA))
	assert.Equal(t, Labels{}, ComputeLabels([]int{1, 2, 3}, 9, ConventionA), "button outside the active seats")
}

func TestComputeLabelsInvariants(t *testing.T) {
	src := randutil.New(7)

	for n := MinPlayers; n <= MaxPlayers; n++ {
		for _, c := range []Convention{ConventionA, ConventionB} {
			for i := 0; i < 20; i++ {
				s := Allocate(src, n)
				labels := ComputeLabels(s.Active, s.Button, c)
				assert.Equal(t, labels, ComputeLabels(s.Active, s.Button, c), "labels are a pure function")

				counts := map[string]int{}
				for seat, label := range labels {
					if s.IsActive(seat) {
						require.NotEmpty(t, label, "active seat %d unlabeled", seat)
						counts[label]++
					} else {
						require.Empty(t, label)
					}
				}
				for label, count := range counts {
					assert.Equal(t, 1, count, "label %s used twice", label)
					assert.GreaterOrEqual(t, c.Rank(label), 0, "label %s not in convention %s", label, c)
				}
				assert.Equal(t, 1, counts[LabelSB])
				assert.Equal(t, 1, counts[LabelBB])

				if n == 2 {
					assert.Zero(t, counts[LabelBTN])
					assert.Equal(t, LabelSB, labels[s.Button])
				} else {
					assert.Equal(t, 1, counts[LabelBTN])
					assert.Equal(t, LabelBTN, labels[s.Button])
					assert.Len(t, counts, n)
				}
			}
		}
	}
}

func TestLabelsInUse(t *testing.T) {
	labels := ComputeLabels([]int{0, 1, 2, 3, 4, 5}, 2, ConventionB)
	assert.Equal(t, []string{"HJ", "CO", "BTN", "SB", "BB", "UTG"}, labels.Assigned())
	assert.Equal(t, []string{"UTG", "HJ", "CO", "BTN", "SB", "BB"}, labels.InUse(ConventionB))
	assert.Equal(t, 5, labels.SeatOf("UTG"))
	assert.Equal(t, -1, labels.SeatOf(""))
}

func TestParseConvention(t *testing.T) {
	c, err := ParseConvention("a")
	require.NoError(t, err)
	assert.Equal(t, ConventionA, c)

	c, err = ParseConvention(" B ")
	require.NoError(t, err)
	assert.Equal(t, ConventionB, c)

	_, err = ParseConvention("C")
	assert.ErrorIs(t, err, ErrUnknownConvention)
}

func TestCanonicalOrderIsACopy(t *testing.T) {
	order := ConventionA.CanonicalOrder()
	order[0] = "XX"
	assert.Equal(t, "UTG", ConventionA.CanonicalOrder()[0])
	assert.Equal(t, 4, ConventionA.Rank("MP"))
	assert.Equal(t, 4, ConventionB.Rank("LJ"))
	assert.Equal(t, -1, ConventionB.Rank("MP"))
}
