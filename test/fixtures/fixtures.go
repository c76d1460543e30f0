// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"carkeep/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Username:  fmt.Sprintf("user%s", primitive.NewObjectID().Hex()[:8]),
			Email:     fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			Provider:  "local",
			Plan:      "Free",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.user.Username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Car Fixtures =====

// CarBuilder provides fluent API for building test cars.
type CarBuilder struct {
	car models.Car
}

// NewCar creates a new CarBuilder with sensible defaults.
func NewCar() *CarBuilder {
	return &CarBuilder{
		car: models.Car{
			ID:           primitive.NewObjectID(),
			UserID:       primitive.NewObjectID(),
			Make:         "Toyota",
			Model:        "Camry",
			Year:         2022,
			VIN:          "4T1BF1FK5CU123456",
			LicensePlate: "ABC-123",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}
}

func (b *CarBuilder) WithID(id primitive.ObjectID) *CarBuilder {
	b.car.ID = id
	return b
}

func (b *CarBuilder) WithUserID(userID primitive.ObjectID) *CarBuilder {
	b.car.UserID = userID
	return b
}

func (b *CarBuilder) WithMake(make string) *CarBuilder {
	b.car.Make = make
	return b
}

func (b *CarBuilder) WithModel(model string) *CarBuilder {
	b.car.Model = model
	return b
}

func (b *CarBuilder) WithYear(year int) *CarBuilder {
	b.car.Year = year
	return b
}

func (b *CarBuilder) WithLicensePlate(plate string) *CarBuilder {
	b.car.LicensePlate = plate
	return b
}

func (b *CarBuilder) WithImageKey(key string) *CarBuilder {
	b.car.ImageKey = key
	return b
}

func (b *CarBuilder) WithCreatedAt(t time.Time) *CarBuilder {
	b.car.CreatedAt = t
	return b
}

func (b *CarBuilder) Build() models.Car {
	return b.car
}

func (b *CarBuilder) BuildPtr() *models.Car {
	return &b.car
}

// ===== Document Fixtures =====

// DocumentBuilder provides fluent API for building test documents.
type DocumentBuilder struct {
	doc models.Document
}

// NewDocument creates a new DocumentBuilder with sensible defaults.
func NewDocument() *DocumentBuilder {
	return &DocumentBuilder{
		doc: models.Document{
			ID:        primitive.NewObjectID(),
			UserID:    primitive.NewObjectID(),
			CarID:     primitive.NewObjectID(),
			Type:      models.DocumentInsurance,
			Title:     "Test Document",
			CreatedAt: time.Now(),
		},
	}
}

func (b *DocumentBuilder) WithID(id primitive.ObjectID) *DocumentBuilder {
	b.doc.ID = id
	return b
}

func (b *DocumentBuilder) WithUserID(userID primitive.ObjectID) *DocumentBuilder {
	b.doc.UserID = userID
	return b
}

func (b *DocumentBuilder) WithCarID(carID primitive.ObjectID) *DocumentBuilder {
	b.doc.CarID = carID
	return b
}

func (b *DocumentBuilder) WithType(docType models.DocumentType) *DocumentBuilder {
	b.doc.Type = docType
	return b
}

func (b *DocumentBuilder) WithTitle(title string) *DocumentBuilder {
	b.doc.Title = title
	return b
}

func (b *DocumentBuilder) WithDescription(description string) *DocumentBuilder {
	b.doc.Description = description
	return b
}

func (b *DocumentBuilder) WithExpiryDate(t time.Time) *DocumentBuilder {
	b.doc.ExpiryDate = &t
	return b
}

// WithFile sets all stored-file metadata in one call.
func (b *DocumentBuilder) WithFile(key, name, contentType string, size int64) *DocumentBuilder {
	b.doc.FileKey = key
	b.doc.FileName = name
	b.doc.FileType = contentType
	b.doc.FileSize = size
	return b
}

func (b *DocumentBuilder) WithCreatedAt(t time.Time) *DocumentBuilder {
	b.doc.CreatedAt = t
	return b
}

func (b *DocumentBuilder) Build() models.Document {
	return b.doc
}

func (b *DocumentBuilder) BuildPtr() *models.Document {
	return &b.doc
}
