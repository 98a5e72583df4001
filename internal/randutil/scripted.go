package randutil

// Scripted is a Source that replays fixed draws, for tests that need to pin
// down exactly which seats and branches a generator picks.
//
// IntN returns the next scripted integer reduced modulo n; Float64 returns the
// next scripted float. Exhausted scripts yield zero. Shuffle performs the usual
// descending Fisher-Yates walk, drawing each index through IntN.
type Scripted struct {
	ints   []int
	floats []float64
}

// NewScripted returns a Scripted source replaying ints and floats in order.
func NewScripted(ints []int, floats []float64) *Scripted {
	return &Scripted{ints: ints, floats: floats}
}

func (s *Scripted) IntN(n int) int {
	if n <= 0 {
		panic("randutil: invalid argument to IntN")
	}
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *Scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *Scripted) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.IntN(i+1))
	}
}

// Remaining reports how many scripted ints and floats have not been consumed.
func (s *Scripted) Remaining() (ints, floats int) {
	return len(s.ints), len(s.floats)
}
