package service

import (
	"context"

	"carkeep/internal/models"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks carkeep/internal/service AuthServicer,CarServicer,DocumentServicer

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

// CarServicer defines the interface for car operations.
type CarServicer interface {
	List(ctx context.Context, userID string) ([]models.Car, error)
	Get(ctx context.Context, userID, carID string) (*models.Car, error)
	Add(ctx context.Context, userID string, req *models.CarRequest, image *Upload) (*models.Car, error)
	Update(ctx context.Context, userID, carID string, req *models.CarRequest, image *Upload) (*models.Car, error)
	Delete(ctx context.Context, userID, carID string) error
}

// DocumentServicer defines the interface for document operations.
type DocumentServicer interface {
	ListByCar(ctx context.Context, userID, carID string) ([]models.Document, error)
	Get(ctx context.Context, userID, documentID string) (*models.Document, error)
	Add(ctx context.Context, userID string, req *models.DocumentRequest, file *Upload) (*models.Document, error)
	Update(ctx context.Context, userID, documentID string, req *models.UpdateDocumentRequest, file *Upload) (*models.Document, error)
	Delete(ctx context.Context, userID, documentID string) error
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer     = (*AuthService)(nil)
	_ CarServicer      = (*CarService)(nil)
	_ DocumentServicer = (*DocumentService)(nil)
)
