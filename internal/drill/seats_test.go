package drill

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/postrainer/internal/randutil"
)

func TestAllocate(t *testing.T) {
	src := randutil.New(42)

	for n := MinPlayers; n <= MaxPlayers; n++ {
		for i := 0; i < 50; i++ {
			s := Allocate(src, n)
			require.Len(t, s.Active, n)
			assert.True(t, s.IsActive(s.Button), "button %d must be active in %v", s.Button, s.Active)
			assert.True(t, slices.IsSorted(s.Active), "active seats are kept in table order")

			mask := s.ActiveMask()
			count := 0
			for seat, on := range mask {
				if on {
					count++
					assert.Contains(t, s.Active, seat)
				}
			}
			assert.Equal(t, n, count)
		}
	}
}

func TestAllocateClampsPlayerCount(t *testing.T) {
	src := randutil.New(1)
	assert.Len(t, Allocate(src, 1).Active, MinPlayers)
	assert.Len(t, Allocate(src, 11).Active, MaxPlayers)
	assert.Len(t, Allocate(src, -3).Active, MinPlayers)
}

func TestAllocateScripted(t *testing.T) {
	// All-zero draws rotate the ids to [1..9,0]; the first three are taken and
	// the button is the first chosen seat.
	s := Allocate(randutil.NewScripted(nil, nil), 3)
	assert.Equal(t, []int{1, 2, 3}, s.Active)
	assert.Equal(t, 1, s.Button)
}

func TestSeatingClone(t *testing.T) {
	s := Seating{Active: []int{0, 4, 7}, Button: 4}
	c := s.Clone()
	c.Active[0] = 9
	assert.Equal(t, 0, s.Active[0])
}
