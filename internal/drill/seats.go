package drill

import (
	"slices"

	"github.com/lox/postrainer/internal/randutil"
)

const (
	// NumSeats is the fixed number of seat slots at the table.
	NumSeats = 10
	// MinPlayers and MaxPlayers bound the active player count.
	MinPlayers = 2
	MaxPlayers = 10
)

// Seating is the set of active seats for a round plus the button.
type Seating struct {
	// Active lists the active seat ids in table order (ascending seat id),
	// which is the circular order used for labels and postflop action.
	Active []int
	Button int
}

// ClampPlayers forces a player count into [MinPlayers, MaxPlayers].
func ClampPlayers(n int) int {
	return min(max(n, MinPlayers), MaxPlayers)
}

// Allocate shuffles the ten seat ids, activates the first playerCount of them
// and places the button uniformly among the chosen seats.
func Allocate(src randutil.Source, playerCount int) Seating {
	n := ClampPlayers(playerCount)

	ids := make([]int, NumSeats)
	for i := range ids {
		ids[i] = i
	}
	src.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	chosen := ids[:n]
	button := randutil.Pick(src, chosen)

	active := slices.Clone(chosen)
	slices.Sort(active)

	return Seating{Active: active, Button: button}
}

// IsActive reports whether seat takes part in the round.
func (s Seating) IsActive(seat int) bool {
	return slices.Contains(s.Active, seat)
}

// ActiveMask returns the per-slot active flags.
func (s Seating) ActiveMask() [NumSeats]bool {
	var mask [NumSeats]bool
	for _, seat := range s.Active {
		if seat >= 0 && seat < NumSeats {
			mask[seat] = true
		}
	}
	return mask
}

// Clone returns a copy that shares no memory with s.
func (s Seating) Clone() Seating {
	return Seating{Active: slices.Clone(s.Active), Button: s.Button}
}
