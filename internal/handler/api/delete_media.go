package api

import (
	"errors"
	"net/http"

	"github.com/Reeshadali/PG/internal/api_context"
	"github.com/Reeshadali/PG/internal/logger"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/usecase/locker"
)

// DeleteMediaHandler deletes a media item by ID. Deleting an ID the account
// does not hold is a no-op and still answers 204.
func DeleteMediaHandler(svc port.MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := api_context.AuthUserFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Not logged in", nil)
			return
		}
		id, ok := api_context.ItemIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.Delete(r.Context(), username, id); err != nil {
			if errors.Is(err, locker.ErrUserNotFound) {
				WriteError(w, http.StatusUnauthorized, "Unknown account", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to delete media", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Deleted media #%s", id)
	}
}
