// Package simulator stands in for a real network in front of the mock API.
// Each call may be delayed and may fail, depending on the session settings.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"snackshop/models"
)

const (
	// MinLatency and MaxLatency bound the artificial delay
	MinLatency = 350 * time.Millisecond
	MaxLatency = 800 * time.Millisecond

	// FailureRate is the probability that a call fails when error injection is on
	FailureRate = 0.20
)

// ErrServiceUnavailable is the transient failure injected by the simulator.
// The wrapped operation has not run, so the caller may retry.
var ErrServiceUnavailable = errors.New("service unavailable: the server is taking a coffee break")

// Reader exposes the settings the simulator consumes
type Reader interface {
	Snapshot() models.Settings
}

// Random is a source of uniform values in [0, 1)
type Random interface {
	Float64() float64
}

// Sleeper suspends the caller for d
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Simulator injects latency and random failures in front of mock API calls
type Simulator struct {
	settings Reader
	random   Random
	sleeper  Sleeper
	metrics  *Metrics
	logger   *zap.Logger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithRandom replaces the random source
func WithRandom(r Random) Option {
	return func(s *Simulator) { s.random = r }
}

// WithSleeper replaces the sleeper used for latency
func WithSleeper(sl Sleeper) Option {
	return func(s *Simulator) { s.sleeper = sl }
}

// WithMetrics records call outcomes and delays
func WithMetrics(m *Metrics) Option {
	return func(s *Simulator) { s.metrics = m }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// New creates a Simulator reading its flags from settings
func New(settings Reader, opts ...Option) *Simulator {
	s := &Simulator{
		settings: settings,
		random:   globalRandom{},
		sleeper:  timerSleeper{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Guard runs the simulated network in front of operation.
// Settings are read once when the call starts; latency is applied before
// the failure draw so a failed call still takes time.
func (s *Simulator) Guard(ctx context.Context, operation string) error {
	current := s.settings.Snapshot()

	if current.SimulateLatency {
		delay := MinLatency + time.Duration(s.random.Float64()*float64(MaxLatency-MinLatency))
		s.metrics.observeDelay(operation, float64(delay)/float64(time.Millisecond))
		if err := s.sleeper.Sleep(ctx, delay); err != nil {
			return fmt.Errorf("%s: %w", operation, err)
		}
	}

	if current.SimulateErrors && s.random.Float64() < FailureRate {
		s.metrics.countCall(operation, outcomeInjectedError)
		s.logger.Warn("simulated network failure", zap.String("operation", operation))
		return fmt.Errorf("%s: %w", operation, ErrServiceUnavailable)
	}

	s.metrics.countCall(operation, outcomeOK)
	return nil
}

// globalRandom uses the math/rand/v2 top-level source, which is safe for concurrent use
type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
