package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
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

type Config struct {
	RecordLength     int           `yaml:"recordLength" envconfig:"CB_RECORD_LENGTH" default:"20"`
	Timeout          time.Duration `yaml:"timeout" envconfig:"CB_TIMEOUT" default:"30s"`
	Percentile       float64       `yaml:"percentile" envconfig:"CB_PERCENTILE" default:"0.5"`
	RecoveryRequests int           `yaml:"recoveryRequests" envconfig:"CB_RECOVERY_REQUESTS" default:"3"`
}

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

// StateListener is called with the breaker lock held; it must not call back into the breaker.
type StateListener func(from, to Status)

type Option func(cb *circuitBreaker)

func WithStateListener(fn StateListener) Option {
	return func(cb *circuitBreaker) {
		cb.onChange = fn
	}
}

type circuitBreaker struct {
	mu  sync.Mutex
	cfg Config

	state    Status
	openedAt time.Time

	// outcomes of the last cfg.RecordLength calls, true means failed
	window   []bool
	next     int
	failures int

	probes int

	onChange StateListener
	now      func() time.Time
}

func New(cfg Config, opts ...Option) CircuitBreaker {
	if cfg.RecordLength <= 0 {
		cfg.RecordLength = 1
	}
	if cfg.RecoveryRequests <= 0 {
		cfg.RecoveryRequests = 1
	}
	cb := &circuitBreaker{
		cfg:    cfg,
		state:  Closed,
		window: make([]bool, cfg.RecordLength),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *circuitBreaker) Call(service func() error) error {
	if err := cb.allow(); err != nil {
		return err
	}
	err := service()
	cb.record(err != nil)
	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.close()
}

func (cb *circuitBreaker) allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != Open {
		return nil
	}
	if cb.now().Sub(cb.openedAt) <= cb.cfg.Timeout {
		return ErrOpenCB
	}
	cb.probes = 0
	cb.setState(HalfOpen)
	return nil
}

func (cb *circuitBreaker) record(failed bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.window[cb.next] {
		cb.failures--
	}
	cb.window[cb.next] = failed
	if failed {
		cb.failures++
	}
	cb.next = (cb.next + 1) % len(cb.window)

	switch cb.state {
	case HalfOpen:
		if failed {
			cb.open()
			return
		}
		cb.probes++
		if cb.probes >= cb.cfg.RecoveryRequests {
			cb.close()
		}
	case Closed:
		if float64(cb.failures)/float64(len(cb.window)) >= cb.cfg.Percentile {
			cb.open()
		}
	}
}

func (cb *circuitBreaker) open() {
	cb.openedAt = cb.now()
	cb.probes = 0
	cb.setState(Open)
}

func (cb *circuitBreaker) close() {
	clear(cb.window)
	cb.next, cb.failures, cb.probes = 0, 0, 0
	cb.setState(Closed)
}

func (cb *circuitBreaker) setState(to Status) {
	from := cb.state
	cb.state = to
	if from != to && cb.onChange != nil {
		cb.onChange(from, to)
	}
}
