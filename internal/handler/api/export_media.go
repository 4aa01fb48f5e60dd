package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Reeshadali/PG/internal/api_context"
	"github.com/Reeshadali/PG/internal/logger"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/usecase/locker"
)

// ExportMediaHandler bundles every item the account holds into one ZIP
// download.
func ExportMediaHandler(svc port.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := api_context.AuthUserFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Not logged in", nil)
			return
		}

		out, err := svc.Export(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, locker.ErrNothingToExport):
				WriteError(w, http.StatusNotFound, "No media items to download", nil)
			case errors.Is(err, locker.ErrUserNotFound):
				WriteError(w, http.StatusUnauthorized, "Unknown account", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not build archive", err)
			}
			return
		}

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Length", strconv.Itoa(len(out.Archive)))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(out.Archive); err != nil {
			logger.Errorf(r.Context(), "❌  Failed to write archive payload: %v", err)
			return
		}
		logger.Infof(r.Context(), "✅  Exported media archive %q", out.Filename)
	}
}
