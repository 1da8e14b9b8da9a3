package simulate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixedStrategy struct {
	delay time.Duration
	fail  bool
}

func (s fixedStrategy) Delay() time.Duration { return s.delay }
func (s fixedStrategy) ShouldFail() bool     { return s.fail }

func TestSimulator_Do(t *testing.T) {
	// Do never consults the failure decision.
	simulator := New(fixedStrategy{fail: true})

	ran := false
	err := simulator.Do(context.Background(), func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, ran)
}

func TestSimulator_DoFallible(t *testing.T) {
	declined := errors.New("declined")

	simulator := New(fixedStrategy{fail: true})
	ran := false
	err := simulator.DoFallible(context.Background(), declined, func() error {
		ran = true
		return nil
	})
	require.ErrorIs(t, err, declined)
	require.False(t, ran)

	simulator = New(fixedStrategy{})
	err = simulator.DoFallible(context.Background(), declined, func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, ran)
}

func TestSimulator_contextCancelled(t *testing.T) {
	simulator := New(fixedStrategy{delay: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := simulator.Do(ctx, func() error {
		t.Fatal("op must not run after cancellation")
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRandomStrategy_window(t *testing.T) {
	strategy := NewRandomStrategy(Configs{
		MinDelay: 300 * time.Millisecond,
		MaxDelay: 800 * time.Millisecond,
	})

	for i := 0; i < 100; i++ {
		delay := strategy.Delay()
		require.GreaterOrEqual(t, delay, 300*time.Millisecond)
		require.Less(t, delay, 800*time.Millisecond)
	}
}

func TestRandomStrategy_failureRate(t *testing.T) {
	never := NewRandomStrategy(Configs{FailureRate: 0})
	for i := 0; i < 100; i++ {
		require.False(t, never.ShouldFail())
	}

	always := NewRandomStrategy(Configs{FailureRate: 1})
	for i := 0; i < 100; i++ {
		require.True(t, always.ShouldFail())
	}
}
