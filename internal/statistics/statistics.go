package statistics

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// Outcome is how a drill attempt ended
type Outcome int

const (
	Correct Outcome = iota
	Wrong
	Expired
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Result is a single graded attempt
type Result struct {
	Mode    string
	Outcome Outcome
	// Elapsed is the time since the question appeared. Only correct answers
	// contribute it to the response-time figures.
	Elapsed time.Duration
}

// Counts tallies attempts by outcome
type Counts struct {
	Correct int
	Wrong   int
	Expired int
}

// Attempts returns the number of graded attempts
func (c Counts) Attempts() int {
	return c.Correct + c.Wrong + c.Expired
}

// Accuracy returns the share of attempts answered correctly
func (c Counts) Accuracy() float64 {
	if c.Attempts() == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Attempts())
}

// ModeStats tracks results for one question mode
type ModeStats struct {
	Counts
	SumSec  float64
	SumSec2 float64   // Sum of squares for variance calculation
	Values  []float64 // Response times in seconds for median/percentile calculation
}

func (m *ModeStats) add(r Result) {
	switch r.Outcome {
	case Correct:
		m.Correct++
		sec := r.Elapsed.Seconds()
		m.SumSec += sec
		m.SumSec2 += sec * sec
		m.Values = append(m.Values, sec)
	case Wrong:
		m.Wrong++
	case Expired:
		m.Expired++
	}
}

// MeanResponse returns the mean seconds to a correct answer
func (m *ModeStats) MeanResponse() float64 {
	if len(m.Values) == 0 {
		return 0
	}
	return m.SumSec / float64(len(m.Values))
}

// Variance returns the sample variance of response times
func (m *ModeStats) Variance() float64 {
	n := len(m.Values)
	if n < 2 {
		return 0
	}
	mean := m.MeanResponse()
	return (m.SumSec2 - float64(n)*mean*mean) / float64(n-1)
}

// StdDev returns the sample standard deviation of response times
func (m *ModeStats) StdDev() float64 {
	return math.Sqrt(max(m.Variance(), 0))
}

// Median returns the median response time
func (m *ModeStats) Median() float64 {
	return m.Percentile(0.5)
}

// Percentile returns the response time at the given percentile (0.0 to 1.0)
func (m *ModeStats) Percentile(p float64) float64 {
	if len(m.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(m.Values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Statistics tracks drill results across modes
type Statistics struct {
	Total ModeStats
	Modes map[string]*ModeStats
	// Order lists modes in the order they were first seen
	Order []string
}

// New returns empty statistics
func New() *Statistics {
	return &Statistics{Modes: make(map[string]*ModeStats)}
}

// Add incorporates a result
func (s *Statistics) Add(r Result) {
	ms, ok := s.Modes[r.Mode]
	if !ok {
		ms = &ModeStats{}
		s.Modes[r.Mode] = ms
		s.Order = append(s.Order, r.Mode)
	}
	ms.add(r)
	s.Total.add(r)
}

// Counts returns the overall tallies
func (s *Statistics) Counts() Counts {
	return s.Total.Counts
}

// Validate checks that per-mode tallies add up to the totals
func (s *Statistics) Validate() error {
	var sum Counts
	responses := 0
	for _, ms := range s.Modes {
		sum.Correct += ms.Correct
		sum.Wrong += ms.Wrong
		sum.Expired += ms.Expired
		responses += len(ms.Values)
	}

	if sum != s.Total.Counts {
		return fmt.Errorf("mode totals %+v do not match overall %+v", sum, s.Total.Counts)
	}
	if responses != len(s.Total.Values) || len(s.Total.Values) != s.Total.Correct {
		return fmt.Errorf("response times (%d) do not match correct answers (%d)", len(s.Total.Values), s.Total.Correct)
	}
	return nil
}

// ModeSummary is a reporting view of ModeStats
type ModeSummary struct {
	Mode string
	Counts
	Accuracy     float64
	MeanResponse float64
	StdDev       float64
	Median       float64
	P90          float64
}

func summarize(mode string, m *ModeStats) ModeSummary {
	return ModeSummary{
		Mode:         mode,
		Counts:       m.Counts,
		Accuracy:     m.Accuracy(),
		MeanResponse: m.MeanResponse(),
		StdDev:       m.StdDev(),
		Median:       m.Median(),
		P90:          m.Percentile(0.9),
	}
}

// Summary returns per-mode figures in first-seen order followed by the
// overall figures, whose Mode is empty.
func (s *Statistics) Summary() []ModeSummary {
	out := make([]ModeSummary, 0, len(s.Order)+1)
	for _, mode := range s.Order {
		out = append(out, summarize(mode, s.Modes[mode]))
	}
	return append(out, summarize("", &s.Total))
}
