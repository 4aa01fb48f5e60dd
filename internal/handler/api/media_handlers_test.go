package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/usecase/locker"
	"github.com/Reeshadali/PG/internal/uuid"
)

func TestListMediaHandler_OK(t *testing.T) {
	svc := &mockGallery{items: []port.MediaItemOutput{{Name: "a.png", Type: model.MediaTypeImage}}}
	h := ListMediaHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/media?type=image", nil)
	req = req.WithContext(authedCtx(req.Context(), "alice"))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if svc.gotFilter != "image" {
		t.Errorf("filter passed = %q, want image", svc.gotFilter)
	}

	var items []port.MediaItemOutput
	if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].Name != "a.png" {
		t.Errorf("unexpected payload: %+v", items)
	}
}

func TestListMediaHandler_BadFilter(t *testing.T) {
	h := ListMediaHandler(&mockGallery{})

	req := httptest.NewRequest(http.MethodGet, "/media?type=audio", nil)
	req = req.WithContext(authedCtx(req.Context(), "alice"))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListMediaHandler_NoSession(t *testing.T) {
	h := ListMediaHandler(&mockGallery{})

	req := httptest.NewRequest(http.MethodGet, "/media", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := io.Copy(fw, strings.NewReader(content)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadMediaHandler_OK(t *testing.T) {
	svc := &mockUploader{out: &port.UploadOutput{Uploaded: []port.MediaItemOutput{{Name: "a.png"}}}}
	h := UploadMediaHandler(svc)

	body, contentType := multipartBody(t, map[string]string{"a.png": "data"})
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", contentType)
	req = req.WithContext(authedCtx(req.Context(), "alice"))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	if svc.gotFiles != 1 {
		t.Errorf("files passed = %d, want 1", svc.gotFiles)
	}
}

func TestUploadMediaHandler_NoFiles(t *testing.T) {
	h := UploadMediaHandler(&mockUploader{})

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", contentType)
	req = req.WithContext(authedCtx(req.Context(), "alice"))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUploadMediaHandler_BatchRejections(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"batch too large", &locker.BatchTooLargeError{TotalSize: 100, MaxSize: 50}, "exceeds the maximum allowed"},
		{"quota exceeded", &locker.QuotaExceededError{Shortfall: 10}, "more space needed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := UploadMediaHandler(&mockUploader{err: tc.err})

			body, contentType := multipartBody(t, map[string]string{"a.png": "data"})
			req := httptest.NewRequest(http.MethodPost, "/media", body)
			req.Header.Set("Content-Type", contentType)
			req = req.WithContext(authedCtx(req.Context(), "alice"))
			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != http.StatusRequestEntityTooLarge {
				t.Fatalf("status = %d, want 413", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Errorf("body %q should contain %q", rec.Body.String(), tc.want)
			}
		})
	}
}

func TestDownloadMediaHandler_OK(t *testing.T) {
	id := uuid.NewUUID()
	svc := &mockGallery{item: &model.MediaItem{
		ID:       id,
		Name:     "pic.png",
		FileType: "image/png",
		Data:     model.EncodeDataURL("image/png", []byte("png-bytes")),
	}}
	h := DownloadMediaHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/media/"+id.String()+"/download", nil)
	req = req.WithContext(withItemID(authedCtx(req.Context(), "alice"), id))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", got)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "pic.png") {
		t.Errorf("Content-Disposition should carry the filename: %q", rec.Header().Get("Content-Disposition"))
	}
	if rec.Body.String() != "png-bytes" {
		t.Errorf("body = %q, want the original bytes", rec.Body.String())
	}
}

func TestDownloadMediaHandler_NotFound(t *testing.T) {
	svc := &mockGallery{getErr: locker.ErrItemNotFound}
	h := DownloadMediaHandler(svc)

	id := uuid.NewUUID()
	req := httptest.NewRequest(http.MethodGet, "/media/"+id.String()+"/download", nil)
	req = req.WithContext(withItemID(authedCtx(req.Context(), "alice"), id))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteMediaHandler_AlwaysNoContent(t *testing.T) {
	// The deleter treats a missing identifier as a silent no-op, so the
	// handler answers 204 either way.
	svc := &mockDeleter{}
	h := DeleteMediaHandler(svc)

	id := uuid.NewUUID()
	req := httptest.NewRequest(http.MethodDelete, "/media/"+id.String(), nil)
	req = req.WithContext(withItemID(authedCtx(req.Context(), "alice"), id))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if !svc.deleteCalled || svc.gotID != id {
		t.Error("delete not dispatched with the item ID")
	}
}

func TestExportMediaHandler_OK(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("alice_media/pic.png")
	w.Write([]byte("png"))
	zw.Close()

	svc := &mockExporter{out: &port.ExportOutput{Filename: "alice_media_files.zip", Archive: buf.Bytes()}}
	h := ExportMediaHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/media/export", nil)
	req = req.WithContext(authedCtx(req.Context(), "alice"))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/zip" {
		t.Errorf("Content-Type = %q, want application/zip", got)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "alice_media_files.zip") {
		t.Errorf("Content-Disposition should carry the archive name: %q", rec.Header().Get("Content-Disposition"))
	}
	if _, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len())); err != nil {
		t.Errorf("response is not a readable zip: %v", err)
	}
}

func TestExportMediaHandler_Empty(t *testing.T) {
	h := ExportMediaHandler(&mockExporter{err: locker.ErrNothingToExport})

	req := httptest.NewRequest(http.MethodGet, "/media/export", nil)
	req = req.WithContext(authedCtx(req.Context(), "alice"))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUsageHandler_OK(t *testing.T) {
	svc := &mockMeter{out: &port.UsageOutput{
		UsedBytes: 100, TotalBytes: 1000,
		UsedFormatted: "100 Bytes", TotalFormatted: "1000 Bytes",
		Percent: 10, Severity: "ok",
	}}
	h := UsageHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/usage", nil)
	req = req.WithContext(authedCtx(req.Context(), "alice"))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out port.UsageOutput
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Percent != 10 || out.Severity != "ok" {
		t.Errorf("unexpected payload: %+v", out)
	}
}

func TestUsageHandler_UnknownAccount(t *testing.T) {
	h := UsageHandler(&mockMeter{err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodGet, "/usage", nil)
	req = req.WithContext(authedCtx(req.Context(), "alice"))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
