// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"carkeep/internal/models"
	"carkeep/internal/service"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
	ProfileFunc  func(ctx context.Context, userID string) (*models.User, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, nil
}

// MockCarService is a mock implementation of CarServicer.
type MockCarService struct {
	ListFunc   func(ctx context.Context, userID string) ([]models.Car, error)
	GetFunc    func(ctx context.Context, userID, carID string) (*models.Car, error)
	AddFunc    func(ctx context.Context, userID string, req *models.CarRequest, image *service.Upload) (*models.Car, error)
	UpdateFunc func(ctx context.Context, userID, carID string, req *models.CarRequest, image *service.Upload) (*models.Car, error)
	DeleteFunc func(ctx context.Context, userID, carID string) error
}

func (m *MockCarService) List(ctx context.Context, userID string) ([]models.Car, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockCarService) Get(ctx context.Context, userID, carID string) (*models.Car, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, carID)
	}
	return nil, nil
}

func (m *MockCarService) Add(ctx context.Context, userID string, req *models.CarRequest, image *service.Upload) (*models.Car, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, req, image)
	}
	return nil, nil
}

func (m *MockCarService) Update(ctx context.Context, userID, carID string, req *models.CarRequest, image *service.Upload) (*models.Car, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, carID, req, image)
	}
	return nil, nil
}

func (m *MockCarService) Delete(ctx context.Context, userID, carID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, carID)
	}
	return nil
}

// MockDocumentService is a mock implementation of DocumentServicer.
type MockDocumentService struct {
	ListByCarFunc func(ctx context.Context, userID, carID string) ([]models.Document, error)
	GetFunc       func(ctx context.Context, userID, documentID string) (*models.Document, error)
	AddFunc       func(ctx context.Context, userID string, req *models.DocumentRequest, file *service.Upload) (*models.Document, error)
	UpdateFunc    func(ctx context.Context, userID, documentID string, req *models.UpdateDocumentRequest, file *service.Upload) (*models.Document, error)
	DeleteFunc    func(ctx context.Context, userID, documentID string) error
}

func (m *MockDocumentService) ListByCar(ctx context.Context, userID, carID string) ([]models.Document, error) {
	if m.ListByCarFunc != nil {
		return m.ListByCarFunc(ctx, userID, carID)
	}
	return nil, nil
}

func (m *MockDocumentService) Get(ctx context.Context, userID, documentID string) (*models.Document, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, documentID)
	}
	return nil, nil
}

func (m *MockDocumentService) Add(ctx context.Context, userID string, req *models.DocumentRequest, file *service.Upload) (*models.Document, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, req, file)
	}
	return nil, nil
}

func (m *MockDocumentService) Update(ctx context.Context, userID, documentID string, req *models.UpdateDocumentRequest, file *service.Upload) (*models.Document, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, documentID, req, file)
	}
	return nil, nil
}

func (m *MockDocumentService) Delete(ctx context.Context, userID, documentID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, documentID)
	}
	return nil
}
