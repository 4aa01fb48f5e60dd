package api

import (
	"errors"
	"net/http"

	"github.com/Reeshadali/PG/internal/api_context"
	"github.com/Reeshadali/PG/internal/logger"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/usecase/locker"
)

// ListMediaHandler returns the logged-in account's items, optionally
// narrowed by ?type=image|video. Contents stay out of the listing; each
// item links to its download route instead.
func ListMediaHandler(svc port.Gallery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := api_context.AuthUserFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Not logged in", nil)
			return
		}

		filter := r.URL.Query().Get("type")
		switch filter {
		case "", locker.FilterAll, locker.FilterImage, locker.FilterVideo:
		default:
			WriteError(w, http.StatusBadRequest, "Filter must be one of \"all\", \"image\" or \"video\"", nil)
			return
		}

		items, err := svc.List(r.Context(), port.ListInput{Username: username, Filter: filter})
		if err != nil {
			if errors.Is(err, locker.ErrUserNotFound) {
				WriteError(w, http.StatusUnauthorized, "Unknown account", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not list media", err)
			return
		}

		RespondJSON(w, http.StatusOK, items)
		logger.Infof(r.Context(), "✅  Listed %d media items", len(items))
	}
}
