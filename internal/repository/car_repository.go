package repository

import (
	"context"
	"errors"
	"time"

	apperrors "carkeep/internal/errors"
	"carkeep/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CarRepository defines the interface for car data operations.
type CarRepository interface {
	Create(ctx context.Context, car *models.Car) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Car, error)
	Update(ctx context.Context, car *models.Car) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// carRepository implements CarRepository using MongoDB.
type carRepository struct {
	collection *mongo.Collection
}

// NewCarRepository creates a new CarRepository.
func NewCarRepository(db *mongo.Database) CarRepository {
	return &carRepository{
		collection: db.Collection("cars"),
	}
}

// Create inserts a new car into the database.
func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, car)
	if err != nil {
		return err
	}

	car.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a car by its ID.
func (r *carRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	var car models.Car

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&car)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCarNotFound
		}
		return nil, err
	}

	return &car, nil
}

// FindByUserID returns all cars owned by a user, newest first.
func (r *carRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Car, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if cars == nil {
		cars = []models.Car{}
	}

	return cars, nil
}

// Update replaces a car's editable fields.
func (r *carRepository) Update(ctx context.Context, car *models.Car) error {
	car.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"make":         car.Make,
		"model":        car.Model,
		"year":         car.Year,
		"vin":          car.VIN,
		"licensePlate": car.LicensePlate,
		"imageKey":     car.ImageKey,
		"updatedAt":    car.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": car.ID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrCarNotFound
	}

	return nil
}

// Delete removes a car from the database.
func (r *carRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrCarNotFound
	}

	return nil
}
