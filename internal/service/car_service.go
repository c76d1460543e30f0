package service

import (
	"context"
	"log"
	"strconv"
	"time"

	apperrors "carkeep/internal/errors"
	"carkeep/internal/models"
	"carkeep/internal/repository"
	"carkeep/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const presignedURLExpiry = 1 * time.Hour

// minCarYear is the oldest model year a car can be registered with.
const minCarYear = 1900

// CarService handles business logic for car operations, including the
// lifecycle of the car's stored image.
type CarService struct {
	carRepo      repository.CarRepository
	documentRepo repository.DocumentRepository
	store        storage.Storage
}

// NewCarService creates a new CarService.
func NewCarService(carRepo repository.CarRepository, documentRepo repository.DocumentRepository, store storage.Storage) *CarService {
	return &CarService{
		carRepo:      carRepo,
		documentRepo: documentRepo,
		store:        store,
	}
}

// List returns all cars owned by the user, newest first.
func (s *CarService) List(ctx context.Context, userID string) ([]models.Car, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	cars, err := s.carRepo.FindByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	for i := range cars {
		s.attachImageURL(ctx, &cars[i])
	}

	return cars, nil
}

// Get returns a single car after enforcing ownership.
func (s *CarService) Get(ctx context.Context, userID, carID string) (*models.Car, error) {
	car, err := s.loadOwned(ctx, userID, carID)
	if err != nil {
		return nil, err
	}

	s.attachImageURL(ctx, car)
	return car, nil
}

// Add validates the request, uploads the image if one was supplied, and
// creates a car owned by the user.
func (s *CarService) Add(ctx context.Context, userID string, req *models.CarRequest, image *Upload) (*models.Car, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	year, err := parseYear(req.Year)
	if err != nil {
		return nil, err
	}

	car := &models.Car{
		UserID:       ownerID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         year,
		VIN:          req.VIN,
		LicensePlate: req.LicensePlate,
	}

	if image != nil {
		if err := CarImageRule.Validate(image); err != nil {
			return nil, err
		}
		key := storage.ObjectKey(CarImageRule.KeyPrefix, image.Filename)
		if err := s.store.PutObject(ctx, key, image.Reader, image.ContentType); err != nil {
			return nil, err
		}
		car.ImageKey = key
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	s.attachImageURL(ctx, car)
	return car, nil
}

// Update replaces all editable fields with the supplied values. The image is
// replaced only when a new file is supplied; the previous object is deleted
// after the new one is stored.
func (s *CarService) Update(ctx context.Context, userID, carID string, req *models.CarRequest, image *Upload) (*models.Car, error) {
	car, err := s.loadOwned(ctx, userID, carID)
	if err != nil {
		return nil, err
	}

	year, err := parseYear(req.Year)
	if err != nil {
		return nil, err
	}

	car.Make = req.Make
	car.Model = req.Model
	car.Year = year
	car.VIN = req.VIN
	car.LicensePlate = req.LicensePlate

	if image != nil {
		if err := CarImageRule.Validate(image); err != nil {
			return nil, err
		}
		key := storage.ObjectKey(CarImageRule.KeyPrefix, image.Filename)
		if err := s.store.PutObject(ctx, key, image.Reader, image.ContentType); err != nil {
			return nil, err
		}

		if car.ImageKey != "" {
			s.deleteObject(ctx, car.ImageKey)
		}
		car.ImageKey = key
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	s.attachImageURL(ctx, car)
	return car, nil
}

// Delete removes a car, its stored image, and all of its documents along with
// their stored files. Storage deletions are best-effort.
func (s *CarService) Delete(ctx context.Context, userID, carID string) error {
	car, err := s.loadOwned(ctx, userID, carID)
	if err != nil {
		return err
	}

	if car.ImageKey != "" {
		s.deleteObject(ctx, car.ImageKey)
	}

	docs, err := s.documentRepo.FindByCar(ctx, car.ID, car.UserID)
	if err != nil {
		return err
	}
	for i := range docs {
		if docs[i].FileKey != "" {
			s.deleteObject(ctx, docs[i].FileKey)
		}
		if err := s.documentRepo.Delete(ctx, docs[i].ID); err != nil {
			return err
		}
	}

	return s.carRepo.Delete(ctx, car.ID)
}

// loadOwned fetches a car by id and enforces that the requester owns it.
func (s *CarService) loadOwned(ctx context.Context, userID, carID string) (*models.Car, error) {
	id, err := primitive.ObjectIDFromHex(carID)
	if err != nil {
		return nil, apperrors.ErrCarNotFound
	}

	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if car.UserID.Hex() != userID {
		return nil, apperrors.ErrCarForbidden
	}

	return car, nil
}

// attachImageURL populates the transient pre-signed image URL.
func (s *CarService) attachImageURL(ctx context.Context, car *models.Car) {
	if car.ImageKey == "" {
		return
	}
	url, err := s.store.GetPresignedURL(ctx, car.ImageKey, presignedURLExpiry)
	if err != nil {
		// URL stays empty; the record itself is still served.
		return
	}
	car.ImageURL = url
}

// deleteObject removes a stored object, logging failures instead of
// propagating them.
func (s *CarService) deleteObject(ctx context.Context, key string) {
	if err := s.store.DeleteObject(ctx, key); err != nil {
		log.Printf("Failed to delete stored object %s: %v", key, err)
	}
}

// parseYear converts the form year value and range-checks it.
func parseYear(value string) (int, error) {
	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.ErrInvalidYear
	}
	if year < minCarYear || year > time.Now().Year()+1 {
		return 0, apperrors.ErrInvalidYear
	}
	return year, nil
}
