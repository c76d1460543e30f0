// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)

// Car errors
var (
	ErrCarNotFound  = errors.New("car not found")
	ErrCarForbidden = errors.New("not authorized to access this car")
	ErrInvalidYear  = errors.New("year out of allowed range")
)

// Document errors
var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrDocumentForbidden = errors.New("not authorized to access this document")
	ErrInvalidCarID      = errors.New("invalid car id")
)

// File errors
var (
	ErrFileTooLarge       = errors.New("file exceeds the maximum allowed size")
	ErrFileTypeNotAllowed = errors.New("file type is not allowed")
)
