package breaker

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpen = errors.New("circuit breaker is open")

type Config struct {
	// Window is the number of most recent calls tracked while closed.
	Window int `yaml:"window" envconfig:"BREAKER_WINDOW" default:"20"`
	// FailureRatio of the window that trips the breaker.
	FailureRatio float64 `yaml:"failureRatio" envconfig:"BREAKER_FAILURE_RATIO" default:"0.5"`
	// Cooldown spent open before a probe call is let through.
	Cooldown time.Duration `yaml:"cooldown" envconfig:"BREAKER_COOLDOWN" default:"30s"`
	// Recovery is the number of consecutive half-open successes needed to close.
	Recovery int `yaml:"recovery" envconfig:"BREAKER_RECOVERY" default:"3"`
}

type Breaker struct {
	cfg Config
	now func() time.Time

	mu       sync.Mutex
	state    State
	openedAt time.Time
	window   []bool
	pos      int
	succeeds int
}

func New(cfg Config) *Breaker {
	if cfg.Window <= 0 {
		cfg.Window = 1
	}
	return &Breaker{
		cfg:    cfg,
		now:    time.Now,
		state:  Closed,
		window: make([]bool, cfg.Window),
	}
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Call runs fn unless the breaker is open, and records its outcome.
func (b *Breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == Open {
		if b.now().Sub(b.openedAt) < b.cfg.Cooldown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = HalfOpen
		b.succeeds = 0
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == HalfOpen {
		if err != nil {
			b.trip()
			return err
		}
		b.succeeds++
		if b.succeeds >= b.cfg.Recovery {
			b.reset()
		}
		return nil
	}

	b.window[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.window)

	fails := 0
	for _, failed := range b.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(b.window)) >= b.cfg.FailureRatio {
		b.trip()
	}
	return err
}

func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *Breaker) trip() {
	b.state = Open
	b.openedAt = b.now()
	b.succeeds = 0
}

func (b *Breaker) reset() {
	for i := range b.window {
		b.window[i] = false
	}
	b.pos = 0
	b.succeeds = 0
	b.state = Closed
}
