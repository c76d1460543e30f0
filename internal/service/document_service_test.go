package service

import (
	"context"
	"strings"
	"testing"
	"time"

	apperrors "carkeep/internal/errors"
	"carkeep/internal/models"
	repomocks "carkeep/internal/repository/mocks"
	storagemocks "carkeep/internal/storage/mocks"
	"carkeep/test/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func pdfUpload() *Upload {
	return &Upload{
		Filename:    "policy.pdf",
		ContentType: "application/pdf",
		Size:        2048,
		Reader:      strings.NewReader("fake pdf bytes"),
	}
}

func TestDocumentService_Add(t *testing.T) {
	ownerID := primitive.NewObjectID()
	carID := primitive.NewObjectID()

	ownedCarRepo := &repomocks.MockCarRepository{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
			return &models.Car{ID: carID, UserID: ownerID}, nil
		},
	}

	validReq := func() *models.DocumentRequest {
		return &models.DocumentRequest{
			CarID: carID.Hex(),
			Type:  "insurance",
			Title: "Annual policy",
		}
	}

	t.Run("creates document without file", func(t *testing.T) {
		docRepo := &repomocks.MockDocumentRepository{
			CreateFunc: func(ctx context.Context, doc *models.Document) error {
				doc.ID = primitive.NewObjectID()
				return nil
			},
		}
		store := &storagemocks.MockStorage{}

		svc := NewDocumentService(docRepo, ownedCarRepo, store)

		doc, err := svc.Add(context.Background(), ownerID.Hex(), validReq(), nil)

		require.NoError(t, err)
		assert.Equal(t, models.DocumentInsurance, doc.Type)
		assert.Empty(t, doc.FileKey)
		assert.Empty(t, store.PutKeys)
	})

	t.Run("creates document with file metadata", func(t *testing.T) {
		docRepo := &repomocks.MockDocumentRepository{
			CreateFunc: func(ctx context.Context, doc *models.Document) error {
				doc.ID = primitive.NewObjectID()
				return nil
			},
		}
		store := &storagemocks.MockStorage{}

		svc := NewDocumentService(docRepo, ownedCarRepo, store)

		doc, err := svc.Add(context.Background(), ownerID.Hex(), validReq(), pdfUpload())

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(doc.FileKey, "documents/"))
		assert.Equal(t, "policy.pdf", doc.FileName)
		assert.Equal(t, "application/pdf", doc.FileType)
		assert.Equal(t, int64(2048), doc.FileSize)
		assert.NotEmpty(t, doc.FileURL)
	})

	t.Run("rejects file over 10MB", func(t *testing.T) {
		store := &storagemocks.MockStorage{}
		svc := NewDocumentService(&repomocks.MockDocumentRepository{}, ownedCarRepo, store)

		file := pdfUpload()
		file.Size = 11 * 1024 * 1024

		_, err := svc.Add(context.Background(), ownerID.Hex(), validReq(), file)

		assert.Equal(t, apperrors.ErrFileTooLarge, err)
		assert.Empty(t, store.PutKeys)
	})

	t.Run("rejects attaching to another user's car", func(t *testing.T) {
		foreignCarRepo := &repomocks.MockCarRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
				return &models.Car{ID: carID, UserID: primitive.NewObjectID()}, nil
			},
		}

		svc := NewDocumentService(&repomocks.MockDocumentRepository{}, foreignCarRepo, &storagemocks.MockStorage{})

		_, err := svc.Add(context.Background(), ownerID.Hex(), validReq(), nil)

		assert.Equal(t, apperrors.ErrCarForbidden, err)
	})

	t.Run("rejects malformed car id", func(t *testing.T) {
		svc := NewDocumentService(&repomocks.MockDocumentRepository{}, ownedCarRepo, &storagemocks.MockStorage{})

		req := validReq()
		req.CarID = "garbage"

		_, err := svc.Add(context.Background(), ownerID.Hex(), req, nil)

		assert.Equal(t, apperrors.ErrInvalidCarID, err)
	})
}

func TestDocumentService_Get(t *testing.T) {
	ownerID := primitive.NewObjectID()
	docID := primitive.NewObjectID()

	docRepo := &repomocks.MockDocumentRepository{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Document, error) {
			if id == docID {
				return &models.Document{ID: docID, UserID: ownerID, Title: "Policy"}, nil
			}
			return nil, apperrors.ErrDocumentNotFound
		},
	}

	svc := NewDocumentService(docRepo, &repomocks.MockCarRepository{}, &storagemocks.MockStorage{})

	t.Run("owner can fetch", func(t *testing.T) {
		doc, err := svc.Get(context.Background(), ownerID.Hex(), docID.Hex())

		require.NoError(t, err)
		assert.Equal(t, "Policy", doc.Title)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex(), docID.Hex())

		assert.Equal(t, apperrors.ErrDocumentForbidden, err)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), ownerID.Hex(), primitive.NewObjectID().Hex())

		assert.Equal(t, apperrors.ErrDocumentNotFound, err)
	})
}

func TestDocumentService_Update(t *testing.T) {
	ownerID := primitive.NewObjectID()
	docID := primitive.NewObjectID()
	carID := primitive.NewObjectID()

	validReq := func() *models.UpdateDocumentRequest {
		return &models.UpdateDocumentRequest{
			CarID: carID.Hex(),
			Type:  "registration",
			Title: "Updated title",
		}
	}

	newDocRepo := func(existing *models.Document) *repomocks.MockDocumentRepository {
		return &repomocks.MockDocumentRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Document, error) {
				copy := *existing
				return &copy, nil
			},
		}
	}

	t.Run("removeFile clears file metadata and keeps other fields", func(t *testing.T) {
		existing := fixtures.NewDocument().WithID(docID).WithUserID(ownerID).WithCarID(carID).
			WithTitle("Old").WithFile("documents/old.pdf", "old.pdf", "application/pdf", 100).BuildPtr()
		var updated *models.Document
		docRepo := newDocRepo(existing)
		docRepo.UpdateFunc = func(ctx context.Context, doc *models.Document) error {
			updated = doc
			return nil
		}
		store := &storagemocks.MockStorage{}

		svc := NewDocumentService(docRepo, &repomocks.MockCarRepository{}, store)

		req := validReq()
		req.RemoveFile = true
		_, err := svc.Update(context.Background(), ownerID.Hex(), docID.Hex(), req, nil)

		require.NoError(t, err)
		assert.Empty(t, updated.FileKey)
		assert.Empty(t, updated.FileName)
		assert.Empty(t, updated.FileType)
		assert.Zero(t, updated.FileSize)
		assert.Equal(t, "Updated title", updated.Title)
		assert.Equal(t, []string{"documents/old.pdf"}, store.DeletedKeys)
	})

	t.Run("new file replaces and deletes the old one", func(t *testing.T) {
		existing := fixtures.NewDocument().WithID(docID).WithUserID(ownerID).WithCarID(carID).
			WithTitle("Old").WithFile("documents/old.pdf", "old.pdf", "application/pdf", 100).BuildPtr()
		docRepo := newDocRepo(existing)
		store := &storagemocks.MockStorage{}

		svc := NewDocumentService(docRepo, &repomocks.MockCarRepository{}, store)

		doc, err := svc.Update(context.Background(), ownerID.Hex(), docID.Hex(), validReq(), pdfUpload())

		require.NoError(t, err)
		assert.NotEqual(t, "documents/old.pdf", doc.FileKey)
		assert.Equal(t, []string{"documents/old.pdf"}, store.DeletedKeys)
		require.Len(t, store.PutKeys, 1)
	})

	t.Run("no file action leaves file metadata untouched", func(t *testing.T) {
		existing := fixtures.NewDocument().WithID(docID).WithUserID(ownerID).WithCarID(carID).
			WithTitle("Old").WithFile("documents/keep.pdf", "keep.pdf", "application/pdf", 42).BuildPtr()
		docRepo := newDocRepo(existing)
		store := &storagemocks.MockStorage{}

		svc := NewDocumentService(docRepo, &repomocks.MockCarRepository{}, store)

		doc, err := svc.Update(context.Background(), ownerID.Hex(), docID.Hex(), validReq(), nil)

		require.NoError(t, err)
		assert.Equal(t, "documents/keep.pdf", doc.FileKey)
		assert.Equal(t, int64(42), doc.FileSize)
		assert.Empty(t, store.DeletedKeys)
	})

	t.Run("car reference never changes", func(t *testing.T) {
		existing := fixtures.NewDocument().WithID(docID).WithUserID(ownerID).WithCarID(carID).WithType(models.DocumentTax).WithTitle("Tax").BuildPtr()
		docRepo := newDocRepo(existing)

		svc := NewDocumentService(docRepo, &repomocks.MockCarRepository{}, &storagemocks.MockStorage{})

		req := validReq()
		req.CarID = primitive.NewObjectID().Hex() // attempt to re-parent

		doc, err := svc.Update(context.Background(), ownerID.Hex(), docID.Hex(), req, nil)

		require.NoError(t, err)
		assert.Equal(t, carID, doc.CarID)
	})

	t.Run("expiry date is stored when supplied", func(t *testing.T) {
		existing := fixtures.NewDocument().WithID(docID).WithUserID(ownerID).WithCarID(carID).WithType(models.DocumentTax).WithTitle("Tax").BuildPtr()
		docRepo := newDocRepo(existing)

		svc := NewDocumentService(docRepo, &repomocks.MockCarRepository{}, &storagemocks.MockStorage{})

		req := validReq()
		req.ExpiryDate = "2031-06-30"

		doc, err := svc.Update(context.Background(), ownerID.Hex(), docID.Hex(), req, nil)

		require.NoError(t, err)
		require.NotNil(t, doc.ExpiryDate)
		assert.Equal(t, time.Date(2031, 6, 30, 0, 0, 0, 0, time.UTC), *doc.ExpiryDate)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		existing := fixtures.NewDocument().WithID(docID).WithUserID(ownerID).WithCarID(carID).WithType(models.DocumentTax).WithTitle("Tax").BuildPtr()
		docRepo := newDocRepo(existing)

		svc := NewDocumentService(docRepo, &repomocks.MockCarRepository{}, &storagemocks.MockStorage{})

		_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), docID.Hex(), validReq(), nil)

		assert.Equal(t, apperrors.ErrDocumentForbidden, err)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ownerID := primitive.NewObjectID()
	docID := primitive.NewObjectID()

	t.Run("deletes stored file before the record", func(t *testing.T) {
		deleted := false
		store := &storagemocks.MockStorage{}
		docRepo := &repomocks.MockDocumentRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Document, error) {
				return &models.Document{ID: docID, UserID: ownerID, FileKey: "documents/x.pdf"}, nil
			},
			DeleteFunc: func(ctx context.Context, id primitive.ObjectID) error {
				assert.Equal(t, []string{"documents/x.pdf"}, store.DeletedKeys, "file must be deleted first")
				deleted = true
				return nil
			},
		}

		svc := NewDocumentService(docRepo, &repomocks.MockCarRepository{}, store)

		require.NoError(t, svc.Delete(context.Background(), ownerID.Hex(), docID.Hex()))
		assert.True(t, deleted)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		docRepo := &repomocks.MockDocumentRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Document, error) {
				return &models.Document{ID: docID, UserID: primitive.NewObjectID()}, nil
			},
		}

		svc := NewDocumentService(docRepo, &repomocks.MockCarRepository{}, &storagemocks.MockStorage{})

		err := svc.Delete(context.Background(), ownerID.Hex(), docID.Hex())

		assert.Equal(t, apperrors.ErrDocumentForbidden, err)
	})
}
