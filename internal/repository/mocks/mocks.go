// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"

	"carkeep/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *models.User) error
	FindByIDFunc    func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*models.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

// MockCarRepository is a mock implementation of CarRepository.
type MockCarRepository struct {
	CreateFunc       func(ctx context.Context, car *models.Car) error
	FindByIDFunc     func(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	FindByUserIDFunc func(ctx context.Context, userID primitive.ObjectID) ([]models.Car, error)
	UpdateFunc       func(ctx context.Context, car *models.Car) error
	DeleteFunc       func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockCarRepository) Create(ctx context.Context, car *models.Car) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, car)
	}
	return nil
}

func (m *MockCarRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCarRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Car, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockCarRepository) Update(ctx context.Context, car *models.Car) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, car)
	}
	return nil
}

func (m *MockCarRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockDocumentRepository is a mock implementation of DocumentRepository.
type MockDocumentRepository struct {
	CreateFunc    func(ctx context.Context, doc *models.Document) error
	FindByIDFunc  func(ctx context.Context, id primitive.ObjectID) (*models.Document, error)
	FindByCarFunc func(ctx context.Context, carID, userID primitive.ObjectID) ([]models.Document, error)
	UpdateFunc    func(ctx context.Context, doc *models.Document) error
	DeleteFunc    func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doc)
	}
	return nil
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Document, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDocumentRepository) FindByCar(ctx context.Context, carID, userID primitive.ObjectID) ([]models.Document, error) {
	if m.FindByCarFunc != nil {
		return m.FindByCarFunc(ctx, carID, userID)
	}
	return nil, nil
}

func (m *MockDocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doc)
	}
	return nil
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
