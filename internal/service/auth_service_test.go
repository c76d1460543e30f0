package service

import (
	"context"
	"testing"
	"time"

	cachemocks "carkeep/internal/cache/mocks"
	apperrors "carkeep/internal/errors"
	"carkeep/internal/models"
	repomocks "carkeep/internal/repository/mocks"
	"carkeep/pkg/auth"
	"carkeep/test/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestJWT() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", 15*time.Minute)
}

func TestAuthService_Register(t *testing.T) {
	req := &models.RegisterRequest{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "Secret123",
	}

	t.Run("successfully registers new user", func(t *testing.T) {
		var created *models.User
		userRepo := &repomocks.MockUserRepository{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				user.ID = primitive.NewObjectID()
				created = user
				return nil
			},
		}

		svc := NewAuthService(userRepo, &cachemocks.MockCache{}, newTestJWT())

		resp, err := svc.Register(context.Background(), req)

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, created)
		assert.Equal(t, "johndoe", created.Username)
		assert.Equal(t, "john@example.com", created.Email)
		assert.Equal(t, "local", created.Provider)
		assert.Equal(t, "Free", created.Plan)
		assert.NotEqual(t, "Secret123", created.Password, "password must be hashed")
	})

	t.Run("returns conflict for duplicate email", func(t *testing.T) {
		userRepo := &repomocks.MockUserRepository{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				return apperrors.ErrUserAlreadyExists
			},
		}

		svc := NewAuthService(userRepo, &cachemocks.MockCache{}, newTestJWT())

		_, err := svc.Register(context.Background(), req)

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("Secret123")
	require.NoError(t, err)

	user := fixtures.NewUser().WithUsername("johndoe").WithEmail("john@example.com").WithPassword(hashed).BuildPtr()

	t.Run("returns token for valid credentials", func(t *testing.T) {
		userRepo := &repomocks.MockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
				return user, nil
			},
		}

		jwtManager := newTestJWT()
		svc := NewAuthService(userRepo, &cachemocks.MockCache{}, jwtManager)

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "john@example.com", Password: "Secret123"})

		require.NoError(t, err)

		claims, err := jwtManager.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
	})

	t.Run("unknown email yields invalid credentials", func(t *testing.T) {
		userRepo := &repomocks.MockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}

		svc := NewAuthService(userRepo, &cachemocks.MockCache{}, newTestJWT())

		_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@example.com", Password: "Secret123"})

		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})

	t.Run("wrong password yields the same invalid credentials error", func(t *testing.T) {
		userRepo := &repomocks.MockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
				return user, nil
			},
		}

		svc := NewAuthService(userRepo, &cachemocks.MockCache{}, newTestJWT())

		_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "john@example.com", Password: "Wrong123"})

		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})
}

func TestAuthService_Profile(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("loads from repository on cache miss and strips password", func(t *testing.T) {
		var cachedKey string
		c := &cachemocks.MockCache{
			SetFunc: func(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
				cachedKey = key
				return nil
			},
		}
		userRepo := &repomocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return fixtures.NewUser().WithID(userID).WithUsername("johndoe").WithEmail("john@example.com").WithPassword("hash").BuildPtr(), nil
			},
		}

		svc := NewAuthService(userRepo, c, newTestJWT())

		user, err := svc.Profile(context.Background(), userID.Hex())

		require.NoError(t, err)
		assert.Empty(t, user.Password)
		assert.Equal(t, "profile:"+userID.Hex(), cachedKey)
	})

	t.Run("serves from cache on hit", func(t *testing.T) {
		c := &cachemocks.MockCache{
			GetFunc: func(ctx context.Context, key string, dest interface{}) (bool, error) {
				u := dest.(*models.User)
				u.ID = userID
				u.Username = "cacheduser"
				return true, nil
			},
		}
		userRepo := &repomocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				t.Fatal("repository must not be hit on cache hit")
				return nil, nil
			},
		}

		svc := NewAuthService(userRepo, c, newTestJWT())

		user, err := svc.Profile(context.Background(), userID.Hex())

		require.NoError(t, err)
		assert.Equal(t, "cacheduser", user.Username)
	})

	t.Run("invalid id yields not found", func(t *testing.T) {
		svc := NewAuthService(&repomocks.MockUserRepository{}, &cachemocks.MockCache{}, newTestJWT())

		_, err := svc.Profile(context.Background(), "not-an-object-id")

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}
