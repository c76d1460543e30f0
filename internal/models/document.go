package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentType enumerates the supported document categories.
type DocumentType string

const (
	// DocumentInsurance is an insurance policy document.
	DocumentInsurance DocumentType = "insurance"
	// DocumentRegistration is a vehicle registration document.
	DocumentRegistration DocumentType = "registration"
	// DocumentTax is a road tax or tax receipt document.
	DocumentTax DocumentType = "tax"
	// DocumentMaintenance is a service or maintenance record.
	DocumentMaintenance DocumentType = "maintenance"
	// DocumentOther is any other paperwork attached to a car.
	DocumentOther DocumentType = "other"
)

// Document represents a file-backed record attached to a car.
type Document struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	CarID       primitive.ObjectID `json:"carId" bson:"carId" example:"507f1f77bcf86cd799439013"`
	Type        DocumentType       `json:"type" bson:"type" example:"insurance"`
	Title       string             `json:"title" bson:"title" example:"Annual insurance policy"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ExpiryDate  *time.Time         `json:"expiryDate,omitempty" bson:"expiryDate,omitempty" example:"2025-06-30T00:00:00Z"`
	FileKey     string             `json:"-" bson:"fileKey,omitempty"` // S3 key, not exposed in JSON
	FileURL     string             `json:"fileUrl,omitempty" bson:"-"` // Pre-signed URL, not stored in DB
	FileName    string             `json:"fileName,omitempty" bson:"fileName,omitempty" example:"policy.pdf"`
	FileType    string             `json:"fileType,omitempty" bson:"fileType,omitempty" example:"application/pdf"`
	FileSize    int64              `json:"fileSize,omitempty" bson:"fileSize,omitempty" example:"204800"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// DocumentRequest is the multipart form payload for creating a document.
type DocumentRequest struct {
	CarID       string `form:"carId" binding:"required" example:"507f1f77bcf86cd799439013"`
	Type        string `form:"type" binding:"required,oneof=insurance registration tax maintenance other" example:"insurance"`
	Title       string `form:"title" binding:"required,min=2,max=100" example:"Annual insurance policy"`
	Description string `form:"description" binding:"omitempty,max=500"`
	ExpiryDate  string `form:"expiryDate" binding:"omitempty,notpast" example:"2025-06-30"`
}

// UpdateDocumentRequest is the multipart form payload for updating a document.
// RemoveFile clears the stored file without replacing it.
type UpdateDocumentRequest struct {
	CarID       string `form:"carId" binding:"required" example:"507f1f77bcf86cd799439013"`
	Type        string `form:"type" binding:"required,oneof=insurance registration tax maintenance other" example:"insurance"`
	Title       string `form:"title" binding:"required,min=2,max=100" example:"Annual insurance policy"`
	Description string `form:"description" binding:"omitempty,max=500"`
	ExpiryDate  string `form:"expiryDate" binding:"omitempty,notpast" example:"2025-06-30"`
	RemoveFile  bool   `form:"removeFile" example:"false"`
}
