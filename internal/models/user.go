// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account.
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Username       string             `json:"username" bson:"username" example:"johndoe"`
	Email          string             `json:"email" bson:"email" example:"user@example.com"`
	Password       string             `json:"-" bson:"password"` // "-" = never include in JSON response
	Provider       string             `json:"provider" bson:"provider" example:"local"`
	ProviderID     string             `json:"providerId,omitempty" bson:"providerId,omitempty"`
	ProfilePicture string             `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Plan           string             `json:"plan" bson:"plan" example:"Free"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// RegisterRequest is the payload for registering a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30,username" example:"johndoe"`
	Email    string `json:"email" binding:"required,email,max=50" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6,max=50,password" example:"Secret123"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=50" example:"user@example.com"`
	Password string `json:"password" binding:"required,max=50" example:"Secret123"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}
