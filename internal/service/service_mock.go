package service

import (
	"context"

	"github.com/UnendingLoop/ImageCompressor/internal/model"
)

// MOCK STORAGE

type mockStorage struct {
	downloadFn    func(ctx context.Context, id, imageType string) (model.ImageRecord, error)
	uploadFn      func(ctx context.Context, record model.ImageRecord) error
	downloadCalls int
	uploadCalls   int
}

func (m *mockStorage) Download(ctx context.Context, id, imageType string) (model.ImageRecord, error) {
	m.downloadCalls++
	return m.downloadFn(ctx, id, imageType)
}

func (m *mockStorage) Upload(ctx context.Context, record model.ImageRecord) error {
	m.uploadCalls++
	return m.uploadFn(ctx, record)
}
