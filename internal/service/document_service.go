package service

import (
	"context"
	"log"
	"time"

	apperrors "carkeep/internal/errors"
	"carkeep/internal/models"
	"carkeep/internal/repository"
	"carkeep/internal/storage"
	"carkeep/internal/validator"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentService handles business logic for document operations, including
// a file lifecycle independent of the parent car's image.
type DocumentService struct {
	documentRepo repository.DocumentRepository
	carRepo      repository.CarRepository
	store        storage.Storage
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documentRepo repository.DocumentRepository, carRepo repository.CarRepository, store storage.Storage) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		carRepo:      carRepo,
		store:        store,
	}
}

// ListByCar returns the user's documents for a car, newest first.
func (s *DocumentService) ListByCar(ctx context.Context, userID, carID string) ([]models.Document, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	car, err := primitive.ObjectIDFromHex(carID)
	if err != nil {
		return nil, apperrors.ErrInvalidCarID
	}

	docs, err := s.documentRepo.FindByCar(ctx, car, ownerID)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		s.attachFileURL(ctx, &docs[i])
	}

	return docs, nil
}

// Get returns a single document after enforcing ownership.
func (s *DocumentService) Get(ctx context.Context, userID, documentID string) (*models.Document, error) {
	doc, err := s.loadOwned(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	s.attachFileURL(ctx, doc)
	return doc, nil
}

// Add validates the request and creates a document attached to one of the
// user's cars. The file is optional; when present it is validated and
// uploaded before the record is persisted.
func (s *DocumentService) Add(ctx context.Context, userID string, req *models.DocumentRequest, file *Upload) (*models.Document, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	carID, err := primitive.ObjectIDFromHex(req.CarID)
	if err != nil {
		return nil, apperrors.ErrInvalidCarID
	}

	// The parent car must exist and belong to the requester.
	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car.UserID != ownerID {
		return nil, apperrors.ErrCarForbidden
	}

	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		UserID:      ownerID,
		CarID:       carID,
		Type:        models.DocumentType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		ExpiryDate:  expiry,
	}

	if file != nil {
		if err := DocumentFileRule.Validate(file); err != nil {
			return nil, err
		}
		key := storage.ObjectKey(DocumentFileRule.KeyPrefix, file.Filename)
		if err := s.store.PutObject(ctx, key, file.Reader, file.ContentType); err != nil {
			return nil, err
		}
		doc.FileKey = key
		doc.FileName = file.Filename
		doc.FileType = file.ContentType
		doc.FileSize = file.Size
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.attachFileURL(ctx, doc)
	return doc, nil
}

// Update replaces the document's metadata wholesale and applies one of three
// mutually exclusive file outcomes: remove the stored file, replace it with a
// newly supplied one, or leave it untouched. The car reference never changes.
func (s *DocumentService) Update(ctx context.Context, userID, documentID string, req *models.UpdateDocumentRequest, file *Upload) (*models.Document, error) {
	doc, err := s.loadOwned(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	doc.Type = models.DocumentType(req.Type)
	doc.Title = req.Title
	doc.Description = req.Description
	doc.ExpiryDate = expiry

	switch {
	case req.RemoveFile && doc.FileKey != "":
		s.deleteObject(ctx, doc.FileKey)
		doc.FileKey = ""
		doc.FileName = ""
		doc.FileType = ""
		doc.FileSize = 0

	case file != nil:
		if err := DocumentFileRule.Validate(file); err != nil {
			return nil, err
		}
		key := storage.ObjectKey(DocumentFileRule.KeyPrefix, file.Filename)
		if err := s.store.PutObject(ctx, key, file.Reader, file.ContentType); err != nil {
			return nil, err
		}
		if doc.FileKey != "" {
			s.deleteObject(ctx, doc.FileKey)
		}
		doc.FileKey = key
		doc.FileName = file.Filename
		doc.FileType = file.ContentType
		doc.FileSize = file.Size
	}

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.attachFileURL(ctx, doc)
	return doc, nil
}

// Delete removes a document and its stored file, file first.
func (s *DocumentService) Delete(ctx context.Context, userID, documentID string) error {
	doc, err := s.loadOwned(ctx, userID, documentID)
	if err != nil {
		return err
	}

	if doc.FileKey != "" {
		s.deleteObject(ctx, doc.FileKey)
	}

	return s.documentRepo.Delete(ctx, doc.ID)
}

// loadOwned fetches a document by id and enforces that the requester owns it.
func (s *DocumentService) loadOwned(ctx context.Context, userID, documentID string) (*models.Document, error) {
	id, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return nil, apperrors.ErrDocumentNotFound
	}

	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if doc.UserID.Hex() != userID {
		return nil, apperrors.ErrDocumentForbidden
	}

	return doc, nil
}

// attachFileURL populates the transient pre-signed file URL.
func (s *DocumentService) attachFileURL(ctx context.Context, doc *models.Document) {
	if doc.FileKey == "" {
		return
	}
	url, err := s.store.GetPresignedURL(ctx, doc.FileKey, presignedURLExpiry)
	if err != nil {
		return
	}
	doc.FileURL = url
}

// deleteObject removes a stored object, logging failures instead of
// propagating them.
func (s *DocumentService) deleteObject(ctx context.Context, key string) {
	if err := s.store.DeleteObject(ctx, key); err != nil {
		log.Printf("Failed to delete stored object %s: %v", key, err)
	}
}

// parseExpiry converts the optional form expiry value.
func parseExpiry(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := validator.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
