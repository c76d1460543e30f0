// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "carkeep/swagger" // Import generated swagger docs

	"carkeep/internal/handler"
	"carkeep/internal/middleware"
	"carkeep/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler     *handler.AuthHandler
	CarHandler      *handler.CarHandler
	DocumentHandler *handler.DocumentHandler
	JWTManager      *auth.JWTManager
	CORSOrigin      string
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	origin := cfg.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	r.Use(middleware.CORSWithOrigin(origin))

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// User routes
		users := api.Group("/users")
		{
			users.POST("/register", cfg.AuthHandler.Register)
			users.POST("/login", cfg.AuthHandler.Login)
			users.GET("/profile", middleware.Auth(cfg.JWTManager), cfg.AuthHandler.Profile)
		}

		// Car routes (protected)
		cars := api.Group("/cars")
		cars.Use(middleware.Auth(cfg.JWTManager))
		{
			cars.GET("", cfg.CarHandler.ListCars)
			cars.POST("", cfg.CarHandler.CreateCar)
			cars.GET("/:id", cfg.CarHandler.GetCar)
			cars.PUT("/:id", cfg.CarHandler.UpdateCar)
			cars.DELETE("/:id", cfg.CarHandler.DeleteCar)
		}

		// Document routes (protected)
		documents := api.Group("/documents")
		documents.Use(middleware.Auth(cfg.JWTManager))
		{
			documents.POST("", cfg.DocumentHandler.CreateDocument)
			documents.GET("/car/:carId", cfg.DocumentHandler.ListByCar)
			documents.GET("/:id", cfg.DocumentHandler.GetDocument)
			documents.PUT("/:id", cfg.DocumentHandler.UpdateDocument)
			documents.DELETE("/:id", cfg.DocumentHandler.DeleteDocument)
		}
	}

	return r
}
