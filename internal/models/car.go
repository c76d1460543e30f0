package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car represents a vehicle owned by a single user.
type Car struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	Make         string             `json:"make" bson:"make" example:"Toyota"`
	Model        string             `json:"model" bson:"model" example:"Camry"`
	Year         int                `json:"year" bson:"year" example:"2022"`
	VIN          string             `json:"vin,omitempty" bson:"vin,omitempty" example:"4T1BF1FK5CU123456"`
	LicensePlate string             `json:"licensePlate" bson:"licensePlate" example:"ABC-123"`
	ImageKey     string             `json:"-" bson:"imageKey,omitempty"` // S3 key, not exposed in JSON
	ImageURL     string             `json:"imageUrl,omitempty" bson:"-"` // Pre-signed URL, not stored in DB
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CarRequest is the multipart form payload for creating or updating a car.
// Year arrives as a form string and is range-checked after parsing.
type CarRequest struct {
	Make         string `form:"make" binding:"required,min=2,max=30" example:"Toyota"`
	Model        string `form:"model" binding:"required,min=2,max=30" example:"Camry"`
	Year         string `form:"year" binding:"required" example:"2022"`
	VIN          string `form:"vin" binding:"omitempty,vin" example:"4T1BF1FK5CU123456"`
	LicensePlate string `form:"licensePlate" binding:"required,min=2,max=10,plate" example:"ABC-123"`
}

// DeleteResponse is the body returned by delete endpoints.
type DeleteResponse struct {
	Msg string `json:"msg" example:"Car removed"`
}
