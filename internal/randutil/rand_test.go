package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestRandIntClosedRange(t *testing.T) {
	src := New(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := RandInt(src, 2, 4)
		assert.GreaterOrEqual(t, v, 2)
		assert.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestScripted(t *testing.T) {
	s := NewScripted([]int{3, 12}, []float64{0.25})

	assert.Equal(t, 3, s.IntN(10))
	assert.Equal(t, 2, s.IntN(5), "draws are reduced modulo n")
	assert.Equal(t, 0, s.IntN(5), "exhausted script yields zero")
	assert.Equal(t, 0.25, s.Float64())
	assert.Equal(t, 0.0, s.Float64())

	ints, floats := s.Remaining()
	assert.Zero(t, ints)
	assert.Zero(t, floats)
}

func TestScriptedShuffleWithZerosRotates(t *testing.T) {
	// Every draw of zero swaps element i with the head, which rotates left by one.
	s := NewScripted(nil, nil)
	items := []int{0, 1, 2, 3}
	s.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	assert.Equal(t, []int{1, 2, 3, 0}, items)
}
