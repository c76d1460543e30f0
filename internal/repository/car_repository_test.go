package repository

import (
	"testing"

	apperrors "carkeep/internal/errors"
	"carkeep/internal/models"
	"carkeep/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCarRepository_CreateAndFind(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCarRepository(tdb.Database)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	userID := primitive.NewObjectID()

	t.Run("creates car and finds it by id", func(t *testing.T) {
		tdb.ClearCollection(t, "cars")

		car := &models.Car{
			UserID:       userID,
			Make:         "Toyota",
			Model:        "Camry",
			Year:         2022,
			LicensePlate: "ABC-123",
		}

		err := repo.Create(ctx, car)

		require.NoError(t, err)
		assert.False(t, car.ID.IsZero())

		found, err := repo.FindByID(ctx, car.ID)
		require.NoError(t, err)
		assert.Equal(t, "Toyota", found.Make)
		assert.Equal(t, "Camry", found.Model)
		assert.Equal(t, 2022, found.Year)
		assert.Equal(t, "ABC-123", found.LicensePlate)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrCarNotFound, err)
	})
}

func TestCarRepository_FindByUserID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCarRepository(tdb.Database)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	t.Run("returns only the user's cars, newest first", func(t *testing.T) {
		tdb.ClearCollection(t, "cars")

		owner := primitive.NewObjectID()
		other := primitive.NewObjectID()

		first := &models.Car{UserID: owner, Make: "Honda", Model: "Civic", Year: 2019, LicensePlate: "AA 111"}
		require.NoError(t, repo.Create(ctx, first))
		second := &models.Car{UserID: owner, Make: "Mazda", Model: "MX-5", Year: 2021, LicensePlate: "BB 222"}
		require.NoError(t, repo.Create(ctx, second))
		require.NoError(t, repo.Create(ctx, &models.Car{UserID: other, Make: "Ford", Model: "Focus", Year: 2018, LicensePlate: "CC 333"}))

		cars, err := repo.FindByUserID(ctx, owner)

		require.NoError(t, err)
		require.Len(t, cars, 2)
		assert.Equal(t, second.ID, cars[0].ID, "newest car should come first")
		assert.Equal(t, first.ID, cars[1].ID)
	})

	t.Run("returns empty slice for user with no cars", func(t *testing.T) {
		cars, err := repo.FindByUserID(ctx, primitive.NewObjectID())

		require.NoError(t, err)
		assert.NotNil(t, cars)
		assert.Empty(t, cars)
	})
}

func TestCarRepository_Update(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCarRepository(tdb.Database)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	t.Run("replaces editable fields", func(t *testing.T) {
		tdb.ClearCollection(t, "cars")

		car := &models.Car{
			UserID:       primitive.NewObjectID(),
			Make:         "Toyota",
			Model:        "Camry",
			Year:         2020,
			LicensePlate: "OLD-111",
			ImageKey:     "cars/1-1.jpg",
		}
		require.NoError(t, repo.Create(ctx, car))

		car.Make = "Lexus"
		car.Model = "ES"
		car.Year = 2023
		car.LicensePlate = "NEW-222"
		car.ImageKey = "cars/2-2.jpg"

		require.NoError(t, repo.Update(ctx, car))

		found, err := repo.FindByID(ctx, car.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lexus", found.Make)
		assert.Equal(t, 2023, found.Year)
		assert.Equal(t, "NEW-222", found.LicensePlate)
		assert.Equal(t, "cars/2-2.jpg", found.ImageKey)
		assert.True(t, found.UpdatedAt.After(found.CreatedAt) || found.UpdatedAt.Equal(found.CreatedAt))
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		missing := &models.Car{ID: primitive.NewObjectID()}

		err := repo.Update(ctx, missing)

		assert.Equal(t, apperrors.ErrCarNotFound, err)
	})
}

func TestCarRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCarRepository(tdb.Database)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	t.Run("deletes existing car", func(t *testing.T) {
		tdb.ClearCollection(t, "cars")

		car := &models.Car{UserID: primitive.NewObjectID(), Make: "Kia", Model: "Rio", Year: 2017, LicensePlate: "DD 444"}
		require.NoError(t, repo.Create(ctx, car))

		require.NoError(t, repo.Delete(ctx, car.ID))

		_, err := repo.FindByID(ctx, car.ID)
		assert.Equal(t, apperrors.ErrCarNotFound, err)
	})

	t.Run("returns not found on repeated delete", func(t *testing.T) {
		err := repo.Delete(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrCarNotFound, err)
	})
}
