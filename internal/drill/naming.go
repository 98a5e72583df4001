package drill

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Position labels shared by both naming conventions.
const (
	LabelUTG  = "UTG"
	LabelUTG1 = "UTG+1"
	LabelUTG2 = "UTG+2"
	LabelUTG3 = "UTG+3"
	LabelMP   = "MP"
	LabelMP1  = "MP+1"
	LabelLJ   = "LJ"
	LabelHJ   = "HJ"
	LabelCO   = "CO"
	LabelBTN  = "BTN"
	LabelSB   = "SB"
	LabelBB   = "BB"
)

// ErrUnknownConvention is returned when a naming set is neither A nor B.
var ErrUnknownConvention = errors.New("unknown naming convention")

// Convention selects how the seats between the big blind and the button are named.
type Convention int

const (
	// ConventionA names the middle seats MP / MP+1.
	ConventionA Convention = iota
	// ConventionB names the middle seats LJ / HJ.
	ConventionB
)

// String returns the string representation of a naming convention
func (c Convention) String() string {
	switch c {
	case ConventionA:
		return "A"
	case ConventionB:
		return "B"
	default:
		return "Unknown"
	}
}

// ParseConvention accepts "A" or "B" (case-insensitive).
func ParseConvention(s string) (Convention, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return ConventionA, nil
	case "B":
		return ConventionB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownConvention, s)
	}
}

var (
	canonicalA = [NumSeats]string{LabelUTG, LabelUTG1, LabelUTG2, LabelUTG3, LabelMP, LabelMP1, LabelCO, LabelBTN, LabelSB, LabelBB}
	canonicalB = [NumSeats]string{LabelUTG, LabelUTG1, LabelUTG2, LabelUTG3, LabelLJ, LabelHJ, LabelCO, LabelBTN, LabelSB, LabelBB}

	// Labels for the seats after the big blind up to (excluding) the button,
	// keyed by active player count.
	middleA = map[int][]string{
		2:  {},
		3:  {},
		4:  {LabelUTG},
		5:  {LabelUTG, LabelCO},
		6:  {LabelUTG, LabelMP, LabelCO},
		7:  {LabelUTG, LabelMP, LabelMP1, LabelCO},
		8:  {LabelUTG, LabelUTG1, LabelMP, LabelMP1, LabelCO},
		9:  {LabelUTG, LabelUTG1, LabelUTG2, LabelMP, LabelMP1, LabelCO},
		10: {LabelUTG, LabelUTG1, LabelUTG2, LabelUTG3, LabelMP, LabelMP1, LabelCO},
	}
	middleB = map[int][]string{
		2:  {},
		3:  {},
		4:  {LabelUTG},
		5:  {LabelUTG, LabelCO},
		6:  {LabelUTG, LabelHJ, LabelCO},
		7:  {LabelUTG, LabelLJ, LabelHJ, LabelCO},
		8:  {LabelUTG, LabelUTG1, LabelLJ, LabelHJ, LabelCO},
		9:  {LabelUTG, LabelUTG1, LabelUTG2, LabelLJ, LabelHJ, LabelCO},
		10: {LabelUTG, LabelUTG1, LabelUTG2, LabelUTG3, LabelLJ, LabelHJ, LabelCO},
	}
)

func (c Convention) canonical() *[NumSeats]string {
	if c == ConventionA {
		return &canonicalA
	}
	return &canonicalB
}

// CanonicalOrder returns all ten labels of the convention, earliest position first.
func (c Convention) CanonicalOrder() []string {
	return slices.Clone(c.canonical()[:])
}

// MiddleLabels returns the ordered labels between BB and BTN for n active players.
// The result must not be modified.
func (c Convention) MiddleLabels(n int) []string {
	if c == ConventionA {
		return middleA[n]
	}
	return middleB[n]
}

// Rank returns the index of label in the canonical order, or -1 when the label
// does not belong to the convention.
func (c Convention) Rank(label string) int {
	return slices.Index(c.canonical()[:], label)
}
