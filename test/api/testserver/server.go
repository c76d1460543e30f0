//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"carkeep/internal/cache"
	"carkeep/internal/handler"
	"carkeep/internal/repository"
	"carkeep/internal/router"
	"carkeep/internal/service"
	"carkeep/internal/storage"
	"carkeep/pkg/auth"
	"carkeep/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token expiry time used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo     repository.UserRepository
	CarRepo      repository.CarRepository
	DocumentRepo repository.DocumentRepository

	// Services (for direct service access in tests)
	AuthService     service.AuthServicer
	CarService      service.CarServicer
	DocumentService service.DocumentServicer

	// Storage (for direct object access in tests)
	Storage storage.Storage

	// Auth
	JWTManager *auth.JWTManager
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		"us-east-1",
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	carRepo := repository.NewCarRepository(mongoDB.Database)
	documentRepo := repository.NewDocumentRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(userRepo, redisCache, jwtManager)
	carService := service.NewCarService(carRepo, documentRepo, s3Client)
	documentService := service.NewDocumentService(documentRepo, carRepo, s3Client)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	carHandler := handler.NewCarHandler(carService)
	documentHandler := handler.NewDocumentHandler(documentService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:     authHandler,
		CarHandler:      carHandler,
		DocumentHandler: documentHandler,
		JWTManager:      jwtManager,
	})

	return &TestServer{
		Router:          r,
		MongoDB:         mongoDB,
		Redis:           redisContainer,
		MinIO:           minioContainer,
		UserRepo:        userRepo,
		CarRepo:         carRepo,
		DocumentRepo:    documentRepo,
		AuthService:     authService,
		CarService:      carService,
		DocumentService: documentService,
		Storage:         s3Client,
		JWTManager:      jwtManager,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
