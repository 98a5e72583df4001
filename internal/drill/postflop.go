package drill

import "slices"

// PostflopOrder returns the active seats in postflop acting order: the seat
// after the button first, wrapping once around active.
func PostflopOrder(active []int, button int) []int {
	n := len(active)
	if n == 0 {
		return nil
	}

	// An absent button makes the index -1, so the order starts at active[0].
	start := (slices.Index(active, button) + 1) % n
	order := make([]int, 0, n)
	for k := 0; k < n; k++ {
		order = append(order, active[(start+k)%n])
	}
	return order
}

// InPosition reports whether seat acts after other in order.
func InPosition(order []int, seat, other int) bool {
	return slices.Index(order, seat) > slices.Index(order, other)
}
