package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Reeshadali/PG/internal/api_context"
	"github.com/Reeshadali/PG/internal/logger"
	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/usecase/locker"
)

// DownloadMediaHandler streams one item's original bytes back under its
// original filename.
func DownloadMediaHandler(svc port.Gallery) http.HandlerFunc {
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

		item, err := svc.Get(r.Context(), username, id)
		if err != nil {
			switch {
			case errors.Is(err, locker.ErrItemNotFound):
				WriteError(w, http.StatusNotFound, "Media not found", nil)
			case errors.Is(err, locker.ErrUserNotFound):
				WriteError(w, http.StatusUnauthorized, "Unknown account", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not get media", err)
			}
			return
		}

		_, raw, err := model.DecodeDataURL(item.Data)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Stored media is unreadable", err)
			return
		}

		w.Header().Set("Content-Type", item.FileType)
		w.Header().Set("Content-Length", strconv.Itoa(len(raw)))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.Name))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(raw); err != nil {
			logger.Errorf(r.Context(), "❌  Failed to write media payload: %v", err)
			return
		}
		logger.Infof(r.Context(), "✅  Downloaded media #%s", id)
	}
}
