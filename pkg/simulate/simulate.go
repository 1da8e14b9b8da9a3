package simulate

import (
	"context"
	"time"

	"github.com/socialai-lab/backend/pkg/crypto"
)

// Configs controls the artificial network behavior every simulated operation
// shares. The window and rate are operation-agnostic.
type Configs struct {
	MinDelay    time.Duration
	MaxDelay    time.Duration
	FailureRate float64
}

func DefaultConfigs() Configs {
	return Configs{
		MinDelay:    300 * time.Millisecond,
		MaxDelay:    800 * time.Millisecond,
		FailureRate: 0.03,
	}
}

// Strategy decides how long an operation stalls and whether it fails. It is
// pluggable so tests can force zero delay and deterministic outcomes.
type Strategy interface {
	Delay() time.Duration
	ShouldFail() bool
}

type randomStrategy struct {
	cfg Configs
}

func NewRandomStrategy(cfg Configs) *randomStrategy {
	return &randomStrategy{cfg: cfg}
}

func (s *randomStrategy) Delay() time.Duration {
	min := int(s.cfg.MinDelay / time.Millisecond)
	max := int(s.cfg.MaxDelay / time.Millisecond)
	if max <= min {
		return s.cfg.MinDelay
	}

	return time.Duration(crypto.RandRange(min, max)) * time.Millisecond
}

func (s *randomStrategy) ShouldFail() bool {
	return crypto.RandFloat() < s.cfg.FailureRate
}

// Simulator wraps operations with the delay/failure envelope.
type Simulator struct {
	strategy Strategy
}

func New(strategy Strategy) *Simulator {
	return &Simulator{strategy: strategy}
}

// Do stalls for the strategy's delay and then runs op. The failure decision is
// not consulted; operations that never fail use this path.
func (s *Simulator) Do(ctx context.Context, op func() error) error {
	if err := s.sleep(ctx); err != nil {
		return err
	}

	return op()
}

// DoFallible stalls for the strategy's delay, then either returns failure
// without running op, or runs op. Callers must treat the returned failure as
// an expected outcome, not a programming error.
func (s *Simulator) DoFallible(ctx context.Context, failure error, op func() error) error {
	if err := s.sleep(ctx); err != nil {
		return err
	}

	if s.strategy.ShouldFail() {
		return failure
	}

	return op()
}

func (s *Simulator) sleep(ctx context.Context) error {
	delay := s.strategy.Delay()
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
