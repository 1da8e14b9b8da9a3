package toast

import (
	"testing"
	"time"

	"github.com/socialai-lab/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestEngine_PushAndDismiss(t *testing.T) {
	engine := NewEngine()

	first := engine.Push("first", entity.ToastSuccess, time.Minute, nil)
	second := engine.Push("second", entity.ToastError, time.Minute, nil)

	active := engine.Active()
	require.Len(t, active, 2)
	// Insertion order is the z-order contract.
	require.Equal(t, first.ID, active[0].ID)
	require.Equal(t, second.ID, active[1].ID)

	engine.Dismiss(first.ID)
	active = engine.Active()
	require.Len(t, active, 1)
	require.Equal(t, second.ID, active[0].ID)

	// Dismissing twice, or an unknown id, is a no-op.
	engine.Dismiss(first.ID)
	engine.Dismiss("toast_unknown")
	require.Len(t, engine.Active(), 1)
}

func TestEngine_defaultDuration(t *testing.T) {
	engine := NewEngine()

	pushed := engine.Push("hello", entity.ToastInfo, 0, nil)
	require.Equal(t, entity.DefaultToastDuration, pushed.Duration)
}

func TestEngine_autoDismiss(t *testing.T) {
	engine := NewEngine()

	engine.Push("short lived", entity.ToastInfo, 20*time.Millisecond, nil)
	require.Len(t, engine.Active(), 1)

	require.Eventually(t, func() bool {
		return len(engine.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestEngine_sessionEvents(t *testing.T) {
	engine := NewEngine()
	session := engine.NewSession()
	defer session.Leave()

	pushed := engine.Push("observed", entity.ToastWarning, time.Minute, nil)

	event := <-session.C
	require.Equal(t, OpToastShow, event.Op)
	require.Equal(t, pushed.ID, event.Toast.ID)

	engine.Dismiss(pushed.ID)

	event = <-session.C
	require.Equal(t, OpToastDismiss, event.Op)
	require.Equal(t, pushed.ID, event.Toast.ID)
}

func TestEngine_stalledSessionDisconnected(t *testing.T) {
	engine := NewEngine()
	session := engine.NewSession()

	// Fill the session buffer without draining it.
	for i := 0; i < cap(session.C)+1; i++ {
		engine.Push("flood", entity.ToastInfo, time.Minute, nil)
	}

	// The overflowing broadcast closed the channel.
	drained := 0
	for range session.C {
		drained++
	}
	require.Equal(t, cap(session.C), drained)

	// Leave after a forced disconnect must not panic.
	session.Leave()
}
