package api

import (
	"net/http"
	"strings"

	"github.com/socialai-lab/backend/config"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/pkg/jwt"
	"github.com/socialai-lab/backend/pkg/kvstore"
	"github.com/socialai-lab/backend/pkg/logger"
	"github.com/socialai-lab/backend/pkg/session"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

const sessionUserIDKey = "user_id"

// WithEnvironment attaches the process-wide store, logger, and configs to
// every request context.
func WithEnvironment(store kvstore.Store, log logger.Logger, cfg config.Configs) Handler {
	return func(ctx *Context) {
		c := xcontext.WithStore(ctx.Context, store)
		c = xcontext.WithLogger(c, log)
		c = xcontext.WithConfigs(c, cfg)
		ctx.Context = c
	}
}

// ImportUserID resolves the request user from a Bearer token, falling back to
// the session cookie. Requests resolving neither are rejected.
func ImportUserID(engine *jwt.Engine[model.AccessToken], sessions *session.Store) Handler {
	return func(ctx *Context) {
		if token := bearerToken(ctx.r); token != "" {
			accessToken, err := engine.Verify(token)
			if err != nil {
				http.Error(ctx.w, "invalid access token", http.StatusUnauthorized)
				ctx.Abort()
				return
			}

			ctx.Context = xcontext.WithRequestUserID(ctx.Context, accessToken.ID)
			return
		}

		s, err := sessions.Get(ctx.r)
		if err == nil {
			if id, ok := s.Values[sessionUserIDKey].(string); ok && id != "" {
				ctx.Context = xcontext.WithRequestUserID(ctx.Context, id)
				return
			}
		}

		http.Error(ctx.w, "not authenticated", http.StatusUnauthorized)
		ctx.Abort()
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	return strings.TrimPrefix(header, "Bearer ")
}
