package api

import (
	"context"

	"github.com/Reeshadali/PG/internal/api_context"
	"github.com/Reeshadali/PG/internal/model"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/uuid"
)

func authedCtx(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, api_context.AuthUserKey, username)
}

func withItemID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, api_context.ItemIDKey, id)
}

type mockAuthenticator struct {
	err      error
	gotInput port.LoginInput
}

func (m *mockAuthenticator) Login(ctx context.Context, in port.LoginInput) error {
	m.gotInput = in
	return m.err
}

type mockGallery struct {
	items   []port.MediaItemOutput
	item    *model.MediaItem
	listErr error
	getErr  error

	gotFilter string
	gotID     uuid.UUID
}

func (m *mockGallery) List(ctx context.Context, in port.ListInput) ([]port.MediaItemOutput, error) {
	m.gotFilter = in.Filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockGallery) Get(ctx context.Context, username string, id uuid.UUID) (*model.MediaItem, error) {
	m.gotID = id
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.item, nil
}

type mockUploader struct {
	out *port.UploadOutput
	err error

	gotFiles int
}

func (m *mockUploader) Upload(ctx context.Context, in port.UploadInput) (*port.UploadOutput, error) {
	m.gotFiles = len(in.Files)
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

type mockDeleter struct {
	err error

	deleteCalled bool
	gotID        uuid.UUID
}

func (m *mockDeleter) Delete(ctx context.Context, username string, id uuid.UUID) error {
	m.deleteCalled = true
	m.gotID = id
	return m.err
}

type mockExporter struct {
	out *port.ExportOutput
	err error
}

func (m *mockExporter) Export(ctx context.Context, username string) (*port.ExportOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

type mockMeter struct {
	out *port.UsageOutput
	err error
}

func (m *mockMeter) Usage(ctx context.Context, username string) (*port.UsageOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}
