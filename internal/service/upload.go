package service

import (
	"io"
	"path"
	"strings"

	apperrors "carkeep/internal/errors"
)

// Upload is an inbound file accepted from a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadRule constrains what files a resource accepts and where they are stored.
type UploadRule struct {
	KeyPrefix   string
	MaxSize     int64
	AllowedExts []string
}

// CarImageRule accepts image files up to 5MB under the cars/ prefix.
var CarImageRule = UploadRule{
	KeyPrefix:   "cars",
	MaxSize:     5 * 1024 * 1024,
	AllowedExts: []string{".jpeg", ".jpg", ".png", ".webp"},
}

// DocumentFileRule accepts images, PDFs, and Word documents up to 10MB
// under the documents/ prefix.
var DocumentFileRule = UploadRule{
	KeyPrefix:   "documents",
	MaxSize:     10 * 1024 * 1024,
	AllowedExts: []string{".jpeg", ".jpg", ".png", ".pdf", ".doc", ".docx"},
}

// Validate checks an upload against the rule before anything touches storage.
func (r UploadRule) Validate(u *Upload) error {
	if u.Size > r.MaxSize {
		return apperrors.ErrFileTooLarge
	}

	ext := strings.ToLower(path.Ext(u.Filename))
	for _, allowed := range r.AllowedExts {
		if ext == allowed {
			return nil
		}
	}
	return apperrors.ErrFileTypeNotAllowed
}
