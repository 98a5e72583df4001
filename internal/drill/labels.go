package drill

import (
	"fmt"
	"slices"
)

// Labels maps every seat slot to its position label. Inactive seats are "".
type Labels [NumSeats]string

// ComputeLabels assigns position labels to the active seats.
//
// active is treated as a circular sequence in the order given. The seat after
// the button is SB, the one after that BB, and the seats from there up to the
// button take the convention's middle labels for len(active) players. Heads-up,
// the button posts the small blind and no BTN label is used. The result depends
// only on the arguments.
func ComputeLabels(active []int, button int, c Convention) Labels {
	var labels Labels
	n := len(active)
	if n < 2 {
		return labels
	}

	iBTN := slices.Index(active, button)
	if iBTN < 0 {
		return labels
	}

	if n == 2 {
		labels[button] = LabelSB
		labels[active[(iBTN+1)%n]] = LabelBB
		return labels
	}

	sb := active[(iBTN+1)%n]
	bb := active[(iBTN+2)%n]
	labels[button] = LabelBTN
	labels[sb] = LabelSB
	labels[bb] = LabelBB

	middle := c.MiddleLabels(n)
	k := 0
	for i := (iBTN + 3) % n; i != iBTN; i = (i + 1) % n {
		if k < len(middle) {
			labels[active[i]] = middle[k]
		} else {
			labels[active[i]] = fmt.Sprintf("EP%d", k+1)
		}
		k++
	}

	return labels
}

// SeatOf returns the seat carrying label, or -1.
func (l Labels) SeatOf(label string) int {
	if label == "" {
		return -1
	}
	return slices.Index(l[:], label)
}

// Assigned returns the non-empty labels in seat order.
func (l Labels) Assigned() []string {
	var out []string
	for _, label := range l {
		if label != "" {
			out = append(out, label)
		}
	}
	return out
}

// InUse returns the assigned labels sorted by the convention's canonical order.
// Renderers use it to decide which label buttons are live.
func (l Labels) InUse(c Convention) []string {
	out := l.Assigned()
	slices.SortStableFunc(out, func(a, b string) int {
		return c.Rank(a) - c.Rank(b)
	})
	return out
}
