package toast

import (
	"sync"
	"time"

	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/pkg/idutil"
)

// Engine owns the in-memory toast queue. Toasts live from Push until either
// their auto-dismiss timer fires or someone dismisses them explicitly,
// whichever happens first; each toast owns exactly one timer and there is no
// re-arming. Nothing here is persisted.
type Engine struct {
	mutex    sync.Mutex
	toasts   []entity.Toast
	timers   map[string]*time.Timer
	sessions map[string]*Session
}

func NewEngine() *Engine {
	return &Engine{
		timers:   make(map[string]*time.Timer),
		sessions: make(map[string]*Session),
	}
}

// Push queues a toast and arms its auto-dismiss timer. A zero duration takes
// the default. The queue keeps insertion order; stacked toasts render in that
// order.
func (e *Engine) Push(
	message string, typ entity.ToastType, duration time.Duration, action *entity.ToastAction,
) entity.Toast {
	if duration <= 0 {
		duration = entity.DefaultToastDuration
	}

	toast := entity.Toast{
		ID:        idutil.New("toast"),
		Message:   message,
		Type:      typ,
		Duration:  duration,
		Action:    action,
		CreatedAt: time.Now(),
	}

	e.mutex.Lock()
	e.toasts = append(e.toasts, toast)
	e.timers[toast.ID] = time.AfterFunc(duration, func() {
		e.Dismiss(toast.ID)
	})
	e.mutex.Unlock()

	e.broadcast(&Event{Op: OpToastShow, Toast: toast})
	return toast
}

// Dismiss removes a toast immediately and stops its timer. An unknown id is a
// no-op, which also makes the timer-versus-user race benign: the second
// dismissal finds nothing.
func (e *Engine) Dismiss(id string) {
	e.mutex.Lock()

	if timer, ok := e.timers[id]; ok {
		timer.Stop()
		delete(e.timers, id)
	}

	var dismissed *entity.Toast
	for i := range e.toasts {
		if e.toasts[i].ID == id {
			dismissed = &e.toasts[i]
			e.toasts = append(e.toasts[:i], e.toasts[i+1:]...)
			break
		}
	}

	e.mutex.Unlock()

	if dismissed != nil {
		e.broadcast(&Event{Op: OpToastDismiss, Toast: *dismissed})
	}
}

// Active returns the visible toasts in insertion order.
func (e *Engine) Active() []entity.Toast {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	active := make([]entity.Toast, len(e.toasts))
	copy(active, e.toasts)
	return active
}

func (e *Engine) broadcast(event *Event) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	for id, session := range e.sessions {
		select {
		case session.C <- event:
		default:
			// A stalled consumer is disconnected rather than blocking the
			// queue for everyone else.
			delete(e.sessions, id)
			close(session.C)
		}
	}
}
