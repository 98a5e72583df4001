package trainer

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/postrainer/internal/drill"
	"github.com/lox/postrainer/internal/randutil"
)

// DefaultFlashDelay is how long the error flash lasts before a timed-out round
// is replaced, and how long a wrong answer keeps the error flag raised.
const DefaultFlashDelay = 600 * time.Millisecond

// Option configures a Controller during creation.
type Option func(*Controller)

// WithClock sets the clock used for the flash delay. Tests pass quartz.NewMock.
func WithClock(clock quartz.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithSource sets the randomness source for round generation.
func WithSource(src randutil.Source) Option {
	return func(c *Controller) { c.src = src }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithFlashDelay sets the error-flash duration. Zero advances timed-out rounds immediately.
func WithFlashDelay(d time.Duration) Option {
	return func(c *Controller) { c.flashDelay = max(d, 0) }
}

// WithConfig sets the initial drill configuration.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.initial = cfg }
}

// Controller owns the current round: it generates rounds, grades answers and
// runs the countdown. All methods are safe for concurrent use; flash-delay
// callbacks arrive on the clock's goroutine.
type Controller struct {
	mu sync.Mutex

	clock      quartz.Clock
	src        randutil.Source
	logger     *log.Logger
	flashDelay time.Duration
	initial    Config

	cfg       settings
	round     drill.Round
	live      bool
	remaining time.Duration
	status    Status
	outcome   Outcome
	flashing  bool
	rounds    int

	// generation is bumped on every round change; delayed callbacks carrying
	// an older generation do nothing.
	generation uint64
	flashSeq   uint64
	pending    *quartz.Timer
	flashTimer *quartz.Timer
}

// New creates a controller and generates its first round.
func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		flashDelay: DefaultFlashDelay,
		initial:    DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	if c.src == nil {
		c.src = randutil.NewSource(0)
	}
	if c.logger == nil {
		c.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	c.logger = c.logger.WithPrefix("trainer")

	s, err := c.initial.resolve()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = s
	if err := c.advance(); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure applies cfg and starts a new round immediately, discarding the
// live question and any pending transition. Players and timer are clamped;
// an unknown naming set or mode returns ErrInvalidConfig and changes nothing.
func (c *Controller) Configure(cfg Config) error {
	s, err := cfg.resolve()
	if err != nil {
		c.logger.Warn("Rejected config", "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Info("Applying config",
		"players", s.players,
		"timer", s.timer,
		"naming", s.convention,
		"mode", s.mode)

	c.cfg = s
	c.outcome = OutcomeNone
	return c.advance()
}

// SetTimer changes the countdown length and restarts the countdown of the
// live question without generating a new round.
func (c *Controller) SetTimer(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cfg.timer = time.Duration(ClampTimerSeconds(seconds) * float64(time.Second))
	if c.status == StatusIdle {
		c.remaining = c.cfg.timer
	}
}

// Config returns the active, normalised configuration.
func (c *Controller) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Config()
}

// SubmitSeatAnswer grades a seat click. It reports whether the round advanced.
func (c *Controller) SubmitSeatAnswer(seat int) bool {
	return c.Submit(drill.SeatAnswer(seat))
}

// SubmitLabelAnswer grades a label button. It reports whether the round advanced.
func (c *Controller) SubmitLabelAnswer(label string) bool {
	return c.Submit(drill.LabelAnswer(label))
}

// SubmitIPAnswer grades the IP (true) / OOP (false) buttons. It reports
// whether the round advanced.
func (c *Controller) SubmitIPAnswer(ip bool) bool {
	return c.Submit(drill.IPAnswer(ip))
}

// Submit grades an answer against the live question. A correct answer
// advances to a new round; a wrong one raises the error flash and leaves the
// question live. Answers on a dead input channel, or while a transition is
// pending, are ignored.
func (c *Controller) Submit(a drill.Answer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusIdle || !c.live {
		return false
	}
	q := c.round.Question
	if !drill.Accepts(q, a) {
		return false
	}

	if !c.round.Validate(a) {
		c.logger.Debug("Wrong answer", "round", c.rounds, "mode", q.Mode(), "answer", a)
		c.outcome = OutcomeWrongAnswer
		c.startFlash()
		return false
	}

	c.logger.Debug("Correct answer", "round", c.rounds, "mode", q.Mode(), "answer", a)
	c.outcome = OutcomeCorrect
	if err := c.advance(); err != nil {
		c.logger.Error("Failed to start next round", "error", err)
		return false
	}
	return true
}

// Tick advances the countdown by elapsed. When it runs out the question is
// withdrawn and, after the flash delay, a new round starts.
func (c *Controller) Tick(elapsed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusIdle || !c.live || elapsed <= 0 {
		return
	}

	c.remaining -= elapsed
	if c.remaining > 0 {
		return
	}
	c.remaining = 0
	c.expire()
}

// expire starts the guarded transition to a new round.
func (c *Controller) expire() {
	c.logger.Debug("Time expired", "round", c.rounds, "mode", c.cfg.mode)

	c.status = StatusTransitioning
	c.live = false
	c.outcome = OutcomeTimeExpired
	c.flashing = true

	if c.flashDelay <= 0 {
		if err := c.advance(); err != nil {
			c.logger.Error("Failed to start next round", "error", err)
		}
		return
	}

	gen := c.generation
	c.pending = c.clock.AfterFunc(c.flashDelay, func() {
		c.completeTransition(gen)
	}, "trainer", "transition")
}

func (c *Controller) completeTransition(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.status != StatusTransitioning {
		c.logger.Debug("Dropping stale transition", "generation", gen, "current", c.generation)
		return
	}
	if err := c.advance(); err != nil {
		c.logger.Error("Failed to start next round", "error", err)
	}
}

// startFlash raises the transient error flag for one flash delay.
func (c *Controller) startFlash() {
	c.flashing = true
	c.flashSeq++
	if c.flashTimer != nil {
		c.flashTimer.Stop()
		c.flashTimer = nil
	}
	if c.flashDelay <= 0 {
		c.flashing = false
		return
	}

	gen, seq := c.generation, c.flashSeq
	c.flashTimer = c.clock.AfterFunc(c.flashDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.generation == gen && c.flashSeq == seq {
			c.flashing = false
		}
	}, "trainer", "flash")
}

// advance replaces the round wholesale. Callers hold c.mu.
func (c *Controller) advance() error {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	if c.flashTimer != nil {
		c.flashTimer.Stop()
		c.flashTimer = nil
	}
	c.generation++

	round, err := drill.NewRound(c.src, c.cfg.mode, c.cfg.convention, c.cfg.players)
	if err != nil {
		c.status = StatusIdle
		c.live = false
		return err
	}

	c.round = round
	c.live = true
	c.remaining = c.cfg.timer
	c.status = StatusIdle
	c.flashing = false
	c.rounds++

	c.logger.Debug("New round",
		"round", c.rounds,
		"mode", c.cfg.mode,
		"players", len(round.Seating.Active),
		"button", round.Seating.Button)
	return nil
}
