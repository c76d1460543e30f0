package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"carkeep/internal/service"

	"github.com/gin-gonic/gin"
)

// trimFormValues strips surrounding whitespace from the named form fields
// before binding, so length rules apply to the value that gets stored.
func trimFormValues(c *gin.Context, fields ...string) {
	if c.Request.MultipartForm == nil {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			return
		}
	}
	for _, field := range fields {
		for _, form := range []map[string][]string{c.Request.MultipartForm.Value, c.Request.PostForm} {
			for i, v := range form[field] {
				form[field][i] = strings.TrimSpace(v)
			}
		}
	}
}

// formUpload extracts an optional multipart file from the request. A missing
// field is not an error; both the upload and the closer are nil in that case.
// The caller must close the returned closer when it is non-nil.
func formUpload(c *gin.Context, field string) (*service.Upload, io.Closer, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	upload := &service.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      f,
	}
	return upload, f, nil
}
