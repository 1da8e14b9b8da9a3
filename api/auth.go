package api

import (
	"encoding/json"
	"net/http"

	"github.com/socialai-lab/backend/internal/domain"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/pkg/session"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

// Login and Register are written by hand instead of through Endpoint because
// they set the session cookie from the response, which the generic endpoint
// has no hook for.

func Login(authDomain domain.AuthDomain, sessions *session.Store, before ...Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := &Context{Context: r.Context(), r: r, w: w}
		for _, h := range before {
			h(ctx)
			if ctx.aborted {
				return
			}
		}

		var req model.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp, err := authDomain.Login(ctx, &req)
		if err != nil {
			writeError(w, err)
			return
		}

		saveUserSession(ctx, sessions, resp.User.ID)
		writeJSON(w, resp)
	}
}

func Register(authDomain domain.AuthDomain, sessions *session.Store, before ...Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := &Context{Context: r.Context(), r: r, w: w}
		for _, h := range before {
			h(ctx)
			if ctx.aborted {
				return
			}
		}

		var req model.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp, err := authDomain.Register(ctx, &req)
		if err != nil {
			writeError(w, err)
			return
		}

		saveUserSession(ctx, sessions, resp.User.ID)
		writeJSON(w, resp)
	}
}

func saveUserSession(ctx *Context, sessions *session.Store, id string) {
	s, err := sessions.Get(ctx.r)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot open session: %v", err)
		return
	}

	s.Values[sessionUserIDKey] = id
	if err := sessions.Save(ctx.r, ctx.w, s); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot save session: %v", err)
	}
}
