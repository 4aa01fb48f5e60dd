package api

import (
	"errors"
	"net/http"

	"github.com/Reeshadali/PG/internal/api_context"
	"github.com/Reeshadali/PG/internal/logger"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/usecase/locker"
)

// UsageHandler reports the account's storage meter.
func UsageHandler(svc port.Meter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := api_context.AuthUserFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Not logged in", nil)
			return
		}

		out, err := svc.Usage(r.Context(), username)
		if err != nil {
			if errors.Is(err, locker.ErrUserNotFound) {
				WriteError(w, http.StatusUnauthorized, "Unknown account", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not compute storage usage", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Reported storage usage (%d%%)", out.Percent)
	}
}
