// Package service contains business logic for the application.
package service

import (
	"context"
	"time"

	"carkeep/internal/cache"
	apperrors "carkeep/internal/errors"
	"carkeep/internal/models"
	"carkeep/internal/repository"
	"carkeep/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const profileCacheTTL = 5 * time.Minute

// AuthService handles registration, login, and profile lookups.
type AuthService struct {
	userRepo   repository.UserRepository
	cache      cache.Cache
	jwtManager auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, c cache.Cache, jwtManager auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		cache:      c,
		jwtManager: jwtManager,
	}
}

// Register creates a new account and returns a signed bearer token.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Provider: "local",
		Plan:     "Free",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{Token: token}, nil
}

// Login authenticates a user and returns a signed bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{Token: token}, nil
}

// Profile returns the authenticated user's record, without the password hash.
// Responses are cached for a short window.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	var cached models.User
	if hit, err := s.cache.Get(ctx, cache.ProfileCacheKey(userID), &cached); err == nil && hit {
		return &cached, nil
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	user.Password = ""

	_ = s.cache.Set(ctx, cache.ProfileCacheKey(userID), user, profileCacheTTL)

	return user, nil
}
