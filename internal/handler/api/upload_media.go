package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Reeshadali/PG/internal/api_context"
	"github.com/Reeshadali/PG/internal/logger"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/usecase/locker"
)

// multipartMemoryLimit bounds how much of the form is buffered in memory;
// the rest spills to temp files.
const multipartMemoryLimit = 32 << 20

// UploadMediaHandler feeds a multipart batch (field name "files") through
// the upload pipeline.
func UploadMediaHandler(svc port.Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := api_context.AuthUserFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Not logged in", nil)
			return
		}

		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid multipart request", err)
			return
		}
		headers := r.MultipartForm.File["files"]
		if len(headers) == 0 {
			WriteError(w, http.StatusBadRequest, "No files selected", nil)
			return
		}

		files := make([]port.FileUpload, 0, len(headers))
		for _, fh := range headers {
			fh := fh
			files = append(files, port.FileUpload{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Open: func() (io.ReadCloser, error) {
					return fh.Open()
				},
			})
		}

		out, err := svc.Upload(r.Context(), port.UploadInput{
			Username: username,
			Files:    files,
			Progress: func(percent int) {
				logger.Debugf(r.Context(), "upload progress: %d%%", percent)
			},
		})
		if err != nil {
			var batchErr *locker.BatchTooLargeError
			var quotaErr *locker.QuotaExceededError
			switch {
			case errors.As(err, &batchErr):
				WriteError(w, http.StatusRequestEntityTooLarge, capitalize(batchErr.Error()), nil)
			case errors.As(err, &quotaErr):
				WriteError(w, http.StatusRequestEntityTooLarge, capitalize(quotaErr.Error()), nil)
			case errors.Is(err, locker.ErrUserNotFound):
				WriteError(w, http.StatusUnauthorized, "Unknown account", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Upload failed", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Uploaded %d media items (%d skipped)", len(out.Uploaded), len(out.Skipped))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return fmt.Sprintf("%c%s", s[0]-'a'+'A', s[1:])
	}
	return s
}
