package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Reeshadali/PG/internal/logger"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/session"
	"github.com/Reeshadali/PG/internal/usecase/locker"
	"github.com/Reeshadali/PG/internal/validation"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required"`
}

// LoginHandler checks credentials and, on success, issues the session
// cookie that authenticates every later request.
func LoginHandler(svc port.Authenticator, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		if err := svc.Login(r.Context(), port.LoginInput(req)); err != nil {
			if errors.Is(err, locker.ErrAuthFailed) {
				// One message for unknown user and wrong password alike.
				WriteError(w, http.StatusUnauthorized, "Invalid username or password", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not log in", err)
			return
		}

		token, err := sessions.Issue(req.Username)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not create session", err)
			return
		}
		http.SetCookie(w, sessions.Cookie(token))
		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  User %q logged in", req.Username)
	}
}

// LogoutHandler clears the session marker; the account and its media are
// untouched.
func LogoutHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, sessions.ClearCookie())
		w.WriteHeader(http.StatusNoContent)
		logger.Info(r.Context(), "✅  Logged out")
	}
}
