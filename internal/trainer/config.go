package trainer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lox/postrainer/internal/drill"
)

// ErrInvalidConfig is returned by Configure for values that cannot be clamped.
var ErrInvalidConfig = errors.New("invalid trainer config")

const (
	MinTimerSeconds = 0.5
	MaxTimerSeconds = 60.0
)

// Config is the drill configuration as it arrives from UI controls or the wire.
type Config struct {
	Players      int     `json:"players"`
	TimerSeconds float64 `json:"timerSeconds"`
	Naming       string  `json:"naming"`
	Mode         string  `json:"mode"`
}

// DefaultConfig returns six players, ten seconds, naming B, position-to-seat.
func DefaultConfig() Config {
	return Config{
		Players:      6,
		TimerSeconds: 10,
		Naming:       drill.ConventionB.String(),
		Mode:         drill.ModePosToSeat.String(),
	}
}

// settings is a Config that has been clamped and parsed.
type settings struct {
	players    int
	timer      time.Duration
	convention drill.Convention
	mode       drill.Mode
}

// ClampTimerSeconds forces a timer into [MinTimerSeconds, MaxTimerSeconds].
func ClampTimerSeconds(s float64) float64 {
	if math.IsNaN(s) {
		return MinTimerSeconds
	}
	return math.Min(math.Max(s, MinTimerSeconds), MaxTimerSeconds)
}

// resolve clamps the numeric fields and parses naming and mode. Unknown naming
// or mode values are rejected.
func (c Config) resolve() (settings, error) {
	convention, err := drill.ParseConvention(c.Naming)
	if err != nil {
		return settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	mode, err := drill.ParseMode(c.Mode)
	if err != nil {
		return settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	seconds := ClampTimerSeconds(c.TimerSeconds)
	return settings{
		players:    drill.ClampPlayers(c.Players),
		timer:      time.Duration(seconds * float64(time.Second)),
		convention: convention,
		mode:       mode,
	}, nil
}

// Config returns the canonical form of the settings.
func (s settings) Config() Config {
	return Config{
		Players:      s.players,
		TimerSeconds: s.timer.Seconds(),
		Naming:       s.convention.String(),
		Mode:         s.mode.String(),
	}
}

// Normalize returns c with numeric fields clamped and names canonicalised.
func (c Config) Normalize() (Config, error) {
	s, err := c.resolve()
	if err != nil {
		return Config{}, err
	}
	return s.Config(), nil
}
