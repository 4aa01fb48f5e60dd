package locker

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/port"
)

type exportSrv struct {
	store port.UserStore
}

// NewExporter constructs an Exporter implementation.
func NewExporter(store port.UserStore) port.Exporter {
	return &exportSrv{store: store}
}

// Export decodes every stored item back to raw bytes and packages them all
// under a per-account folder in a single ZIP archive.
func (s *exportSrv) Export(ctx context.Context, username string) (*port.ExportOutput, error) {
	users, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	acct, ok := users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	if len(acct.Media) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	folder := username + "_media"

	for _, item := range acct.Media {
		_, raw, err := model.DecodeDataURL(item.Data)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("decoding %q: %w", item.Name, err)
		}
		w, err := zw.Create(path.Join(folder, item.Name))
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("adding %q to archive: %w", item.Name, err)
		}
		if _, err := w.Write(raw); err != nil {
			zw.Close()
			return nil, fmt.Errorf("writing %q to archive: %w", item.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}

	return &port.ExportOutput{
		Filename: username + "_media_files.zip",
		Archive:  buf.Bytes(),
	}, nil
}
