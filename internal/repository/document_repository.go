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

// DocumentRepository defines the interface for document data operations.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Document, error)
	FindByCar(ctx context.Context, carID, userID primitive.ObjectID) ([]models.Document, error)
	Update(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// documentRepository implements DocumentRepository using MongoDB.
type documentRepository struct {
	collection *mongo.Collection
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(db *mongo.Database) DocumentRepository {
	return &documentRepository{
		collection: db.Collection("documents"),
	}
}

// Create inserts a new document into the database.
func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	doc.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a document by its ID.
func (r *documentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Document, error) {
	var doc models.Document

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}

	return &doc, nil
}

// FindByCar returns all documents for a car owned by the given user, newest first.
func (r *documentRepository) FindByCar(ctx context.Context, carID, userID primitive.ObjectID) ([]models.Document, error) {
	filter := bson.M{"carId": carID, "userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if docs == nil {
		docs = []models.Document{}
	}

	return docs, nil
}

// Update replaces a document's mutable fields, including file metadata.
// Cleared file fields are unset rather than stored as empty values.
func (r *documentRepository) Update(ctx context.Context, doc *models.Document) error {
	set := bson.M{
		"type":  doc.Type,
		"title": doc.Title,
	}
	unset := bson.M{}

	if doc.Description != "" {
		set["description"] = doc.Description
	} else {
		unset["description"] = ""
	}
	if doc.ExpiryDate != nil {
		set["expiryDate"] = *doc.ExpiryDate
	} else {
		unset["expiryDate"] = ""
	}
	if doc.FileKey != "" {
		set["fileKey"] = doc.FileKey
		set["fileName"] = doc.FileName
		set["fileType"] = doc.FileType
		set["fileSize"] = doc.FileSize
	} else {
		unset["fileKey"] = ""
		unset["fileName"] = ""
		unset["fileType"] = ""
		unset["fileSize"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": doc.ID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}

// Delete removes a document from the database.
func (r *documentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}
