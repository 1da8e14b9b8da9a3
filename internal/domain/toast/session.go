package toast

import "github.com/google/uuid"

// Session is one subscriber of the toast event stream.
type Session struct {
	C chan *Event

	id     string
	engine *Engine
}

// NewSession registers a subscriber. The caller must eventually Leave.
func (e *Engine) NewSession() *Session {
	session := &Session{
		C:      make(chan *Event, 16),
		id:     uuid.NewString(),
		engine: e,
	}

	e.mutex.Lock()
	e.sessions[session.id] = session
	e.mutex.Unlock()

	return session
}

func (s *Session) Leave() {
	s.engine.mutex.Lock()
	defer s.engine.mutex.Unlock()

	// The engine may have disconnected a stalled session already; close only
	// when still registered.
	if _, ok := s.engine.sessions[s.id]; ok {
		delete(s.engine.sessions, s.id)
		close(s.C)
	}
}
