package api

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/socialai-lab/backend/internal/domain/toast"
	"github.com/socialai-lab/backend/pkg/ws"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

var upgrader = websocket.Upgrader{
	// The demo serves a single-page app from another origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ToastFeed streams toast show/dismiss events over a websocket. Each
// connection gets its own engine session; the stream ends when the client
// hangs up or stalls long enough for the engine to disconnect it.
func ToastFeed(engine *toast.Engine, before ...Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := &Context{Context: r.Context(), r: r, w: w}
		for _, h := range before {
			h(ctx)
			if ctx.aborted {
				return
			}
		}

		wsConn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot upgrade websocket: %v", err)
			return
		}

		conn := ws.NewConn(wsConn)
		defer conn.Close()

		session := engine.NewSession()
		defer session.Leave()

		for {
			select {
			case event, ok := <-session.C:
				if !ok {
					return
				}

				if err := conn.Write(event); err != nil {
					xcontext.Logger(ctx).Debugf("Toast feed write failed: %v", err)
					return
				}

			case _, ok := <-conn.R:
				// Inbound frames are ignored; a closed reader means the
				// client went away.
				if !ok {
					return
				}
			}
		}
	}
}
