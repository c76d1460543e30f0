// Package mocks provides a mock implementation of the Storage interface for testing.
package mocks

import (
	"context"
	"io"
	"time"
)

// MockStorage is a mock implementation of Storage.
type MockStorage struct {
	PutObjectFunc       func(ctx context.Context, key string, body io.Reader, contentType string) error
	DeleteObjectFunc    func(ctx context.Context, key string) error
	GetPresignedURLFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)

	// PutKeys and DeletedKeys record calls for assertions.
	PutKeys     []string
	DeletedKeys []string
}

func (m *MockStorage) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	m.PutKeys = append(m.PutKeys, key)
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, key, body, contentType)
	}
	return nil
}

func (m *MockStorage) DeleteObject(ctx context.Context, key string) error {
	m.DeletedKeys = append(m.DeletedKeys, key)
	if m.DeleteObjectFunc != nil {
		return m.DeleteObjectFunc(ctx, key)
	}
	return nil
}

func (m *MockStorage) GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.GetPresignedURLFunc != nil {
		return m.GetPresignedURLFunc(ctx, key, expiry)
	}
	return "https://example.com/" + key, nil
}
