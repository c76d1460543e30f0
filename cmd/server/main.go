package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carkeep/internal/cache"
	"carkeep/internal/config"
	"carkeep/internal/database"
	"carkeep/internal/handler"
	"carkeep/internal/repository"
	"carkeep/internal/router"
	"carkeep/internal/service"
	"carkeep/internal/storage"
	"carkeep/internal/validator"
	"carkeep/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           CarKeep API
// @version         1.0
// @description     Record keeping for car ownership: cars, documents, and file attachments.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

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
		CORSOrigin:      cfg.CORSOrigin,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
