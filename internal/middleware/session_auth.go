package middleware

import (
	"context"
	"net/http"

	"github.com/Reeshadali/PG/internal/api_context"
	"github.com/Reeshadali/PG/internal/handler/api"
	"github.com/Reeshadali/PG/internal/session"
)

// WithSession authenticates requests by the session cookie alone. A valid
// token names the account; the password is not re-checked once a session
// exists.
func WithSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "Not logged in", nil)
				return
			}

			username, err := sessions.Verify(cookie.Value)
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "Not logged in", nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.AuthUserKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
