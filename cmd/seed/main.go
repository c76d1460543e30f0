package main

import (
	"bytes"
	"context"
	"log"
	"time"

	"carkeep/internal/config"
	"carkeep/internal/database"
	"carkeep/internal/models"
	"carkeep/internal/storage"
	"carkeep/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3Region,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx := context.Background()

	userIDs := seedUsers(ctx, mongoDB.Database)
	carIDs := seedCars(ctx, mongoDB.Database, s3Client, userIDs)
	seedDocuments(ctx, mongoDB.Database, s3Client, userIDs, carIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	// Clear existing users
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	// Hash passwords
	password1, _ := auth.HashPassword("Password123")
	password2, _ := auth.HashPassword("Password456")

	now := time.Now()

	users := []interface{}{
		models.User{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  password1,
			Provider:  "local",
			Plan:      "Free",
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.User{
			Username:  "bob",
			Email:     "bob@example.com",
			Password:  password2,
			Provider:  "local",
			Plan:      "Free",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedCars(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client, userIDs []primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("cars")

	// Clear existing cars
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear cars: %v", err)
	}

	now := time.Now()

	cars := []models.Car{
		{
			UserID:       userIDs[0],
			Make:         "Toyota",
			Model:        "Camry",
			Year:         2022,
			VIN:          "4T1BF1FK5CU123456",
			LicensePlate: "ABC-123",
			ImageKey:     "cars/seed-camry.jpg",
			CreatedAt:    now.Add(-72 * time.Hour),
			UpdatedAt:    now.Add(-72 * time.Hour),
		},
		{
			UserID:       userIDs[0],
			Make:         "Honda",
			Model:        "Civic",
			Year:         2019,
			LicensePlate: "XYZ-789",
			CreatedAt:    now.Add(-24 * time.Hour),
			UpdatedAt:    now.Add(-24 * time.Hour),
		},
		{
			UserID:       userIDs[1],
			Make:         "Ford",
			Model:        "Focus",
			Year:         2017,
			LicensePlate: "BOB 42",
			CreatedAt:    now.Add(-48 * time.Hour),
			UpdatedAt:    now.Add(-48 * time.Hour),
		},
	}

	// Upload a placeholder image for cars that reference one
	uploadPlaceholder(ctx, s3Client, "cars/seed-camry.jpg", "image/jpeg", 4096)

	var toInsert []interface{}
	for _, car := range cars {
		toInsert = append(toInsert, car)
	}

	result, err := collection.InsertMany(ctx, toInsert)
	if err != nil {
		log.Fatalf("Failed to seed cars: %v", err)
	}

	log.Printf("Seeded %d cars", len(result.InsertedIDs))

	var carIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		carIDs = append(carIDs, id.(primitive.ObjectID))
	}

	return carIDs
}

func seedDocuments(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client, userIDs, carIDs []primitive.ObjectID) {
	collection := db.Collection("documents")

	// Clear existing documents
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear documents: %v", err)
	}

	now := time.Now()
	insuranceExpiry := now.AddDate(1, 0, 0).Truncate(24 * time.Hour)
	taxExpiry := now.AddDate(0, 6, 0).Truncate(24 * time.Hour)

	documents := []models.Document{
		{
			UserID:      userIDs[0],
			CarID:       carIDs[0],
			Type:        models.DocumentInsurance,
			Title:       "Annual insurance policy",
			Description: "Comprehensive cover, renews yearly",
			ExpiryDate:  &insuranceExpiry,
			FileKey:     "documents/seed-policy.pdf",
			FileName:    "policy.pdf",
			FileType:    "application/pdf",
			FileSize:    204800,
			CreatedAt:   now.Add(-70 * time.Hour),
		},
		{
			UserID:     userIDs[0],
			CarID:      carIDs[0],
			Type:       models.DocumentTax,
			Title:      "Road tax receipt",
			ExpiryDate: &taxExpiry,
			CreatedAt:  now.Add(-20 * time.Hour),
		},
		{
			UserID:    userIDs[0],
			CarID:     carIDs[1],
			Type:      models.DocumentMaintenance,
			Title:     "60k mile service",
			CreatedAt: now.Add(-10 * time.Hour),
		},
		{
			UserID:    userIDs[1],
			CarID:     carIDs[2],
			Type:      models.DocumentRegistration,
			Title:     "Registration certificate",
			FileKey:   "documents/seed-registration.pdf",
			FileName:  "registration.pdf",
			FileType:  "application/pdf",
			FileSize:  102400,
			CreatedAt: now.Add(-40 * time.Hour),
		},
	}

	uploadPlaceholder(ctx, s3Client, "documents/seed-policy.pdf", "application/pdf", 204800)
	uploadPlaceholder(ctx, s3Client, "documents/seed-registration.pdf", "application/pdf", 102400)

	var toInsert []interface{}
	for _, doc := range documents {
		toInsert = append(toInsert, doc)
	}

	result, err := collection.InsertMany(ctx, toInsert)
	if err != nil {
		log.Fatalf("Failed to seed documents: %v", err)
	}

	log.Printf("Seeded %d documents", len(result.InsertedIDs))
}

// uploadPlaceholder uploads placeholder file content to S3.
func uploadPlaceholder(ctx context.Context, s3Client *storage.S3Client, key, contentType string, size int64) {
	placeholder := bytes.Repeat([]byte{0x25, 0x50, 0x44, 0x46}, int(size/4)+1)
	placeholder = placeholder[:size]

	err := s3Client.PutObject(ctx, key, bytes.NewReader(placeholder), contentType)
	if err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return
	}

	log.Printf("Uploaded placeholder: %s", key)
}
