package testutil

import (
	"time"

	"github.com/socialai-lab/backend/pkg/simulate"
)

// InstantStrategy removes the delay window and forces the failure decision,
// so envelope-wrapped operations run deterministically in tests.
type InstantStrategy struct {
	Fail bool
}

func (s InstantStrategy) Delay() time.Duration {
	return 0
}

func (s InstantStrategy) ShouldFail() bool {
	return s.Fail
}

func NewSimulator() *simulate.Simulator {
	return simulate.New(InstantStrategy{})
}

func NewFailingSimulator() *simulate.Simulator {
	return simulate.New(InstantStrategy{Fail: true})
}
