// Package apiclient is a typed Go client for the carkeep HTTP API with a
// response cache modeled after the web frontend's query layer: keyed
// entries with a staleness window, in-flight de-duplication, and
// optimistic deletes with rollback.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"carkeep/internal/models"
	"carkeep/pkg/response"
)

// APIError is the decoded uniform error body plus the HTTP status.
type APIError struct {
	Status int
	Errors []response.FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Msg
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// FileUpload is a file attached to a multipart request.
type FileUpload struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// Client talks to the carkeep API. It holds the auth token after
// Register/Login and caches GET responses.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *QueryCache

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the API at baseURL (e.g.
// "http://localhost:8080/api").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   NewQueryCache(0),
	}
}

// SetToken replaces the auth token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current auth token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Logout drops the auth token and empties the cache.
func (c *Client) Logout() {
	c.SetToken("")
	c.cache.Clear()
}

// Cache exposes the underlying query cache.
func (c *Client) Cache() *QueryCache {
	return c.cache
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error) {
	var out models.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/register", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	var out models.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/login", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Profile returns the authenticated user, cached.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	v, err := c.cache.Fetch("profile", func() (any, error) {
		var user models.User
		if err := c.doJSON(ctx, http.MethodGet, "/users/profile", nil, &user); err != nil {
			return nil, err
		}
		return &user, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.User), nil
}

// ListCars returns the user's cars, cached.
func (c *Client) ListCars(ctx context.Context) ([]models.Car, error) {
	v, err := c.cache.Fetch("cars", func() (any, error) {
		var cars []models.Car
		if err := c.doJSON(ctx, http.MethodGet, "/cars", nil, &cars); err != nil {
			return nil, err
		}
		return cars, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Car), nil
}

// GetCar returns one car by id, cached.
func (c *Client) GetCar(ctx context.Context, id string) (*models.Car, error) {
	v, err := c.cache.Fetch("cars/"+id, func() (any, error) {
		var car models.Car
		if err := c.doJSON(ctx, http.MethodGet, "/cars/"+id, nil, &car); err != nil {
			return nil, err
		}
		return &car, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Car), nil
}

// CreateCar adds a car, with an optional image attachment.
func (c *Client) CreateCar(ctx context.Context, req *models.CarRequest, image *FileUpload) (*models.Car, error) {
	var car models.Car
	if err := c.doForm(ctx, http.MethodPost, "/cars", carFields(req), "image", image, &car); err != nil {
		return nil, err
	}
	c.cache.Invalidate("cars")
	return &car, nil
}

// UpdateCar replaces a car's fields, with an optional new image.
func (c *Client) UpdateCar(ctx context.Context, id string, req *models.CarRequest, image *FileUpload) (*models.Car, error) {
	var car models.Car
	if err := c.doForm(ctx, http.MethodPut, "/cars/"+id, carFields(req), "image", image, &car); err != nil {
		return nil, err
	}
	c.cache.Invalidate("cars")
	c.cache.Set("cars/"+id, &car)
	return &car, nil
}

// DeleteCar removes a car. The cached car list is updated optimistically
// and restored if the server call fails.
func (c *Client) DeleteCar(ctx context.Context, id string) error {
	snap := c.cache.Snapshot("cars")
	if v, ok := c.cache.Get("cars"); ok {
		if cars, ok := v.([]models.Car); ok {
			kept := make([]models.Car, 0, len(cars))
			for _, car := range cars {
				if car.ID.Hex() != id {
					kept = append(kept, car)
				}
			}
			c.cache.Set("cars", kept)
		}
	}

	var out models.DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/cars/"+id, nil, &out); err != nil {
		c.cache.Restore(snap)
		return err
	}

	c.cache.Invalidate("cars/" + id)
	c.cache.InvalidatePrefix("documents/car/" + id)
	return nil
}

// ListDocuments returns the documents for one car, cached.
func (c *Client) ListDocuments(ctx context.Context, carID string) ([]models.Document, error) {
	v, err := c.cache.Fetch("documents/car/"+carID, func() (any, error) {
		var docs []models.Document
		if err := c.doJSON(ctx, http.MethodGet, "/documents/car/"+carID, nil, &docs); err != nil {
			return nil, err
		}
		return docs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Document), nil
}

// GetDocument returns one document by id, cached.
func (c *Client) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	v, err := c.cache.Fetch("documents/"+id, func() (any, error) {
		var doc models.Document
		if err := c.doJSON(ctx, http.MethodGet, "/documents/"+id, nil, &doc); err != nil {
			return nil, err
		}
		return &doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Document), nil
}

// CreateDocument adds a document to a car, with an optional file.
func (c *Client) CreateDocument(ctx context.Context, req *models.DocumentRequest, file *FileUpload) (*models.Document, error) {
	fields := map[string]string{
		"carId":       req.CarID,
		"type":        req.Type,
		"title":       req.Title,
		"description": req.Description,
		"expiryDate":  req.ExpiryDate,
	}
	var doc models.Document
	if err := c.doForm(ctx, http.MethodPost, "/documents", fields, "file", file, &doc); err != nil {
		return nil, err
	}
	c.cache.Invalidate("documents/car/" + req.CarID)
	return &doc, nil
}

// UpdateDocument replaces a document's metadata, optionally replacing or
// removing its file.
func (c *Client) UpdateDocument(ctx context.Context, id string, req *models.UpdateDocumentRequest, file *FileUpload) (*models.Document, error) {
	fields := map[string]string{
		"carId":       req.CarID,
		"type":        req.Type,
		"title":       req.Title,
		"description": req.Description,
		"expiryDate":  req.ExpiryDate,
	}
	if req.RemoveFile {
		fields["removeFile"] = "true"
	}
	var doc models.Document
	if err := c.doForm(ctx, http.MethodPut, "/documents/"+id, fields, "file", file, &doc); err != nil {
		return nil, err
	}
	c.cache.Invalidate("documents/car/" + req.CarID)
	c.cache.Set("documents/"+id, &doc)
	return &doc, nil
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	var out models.DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/documents/"+id, nil, &out); err != nil {
		return err
	}
	c.cache.Invalidate("documents/" + id)
	c.cache.InvalidatePrefix("documents/car/")
	return nil
}

func carFields(req *models.CarRequest) map[string]string {
	return map[string]string{
		"make":         req.Make,
		"model":        req.Model,
		"year":         req.Year,
		"vin":          req.VIN,
		"licensePlate": req.LicensePlate,
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) doForm(ctx context.Context, method, path string, fields map[string]string, fileField string, file *FileUpload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, file.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var body response.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Errors = body.Errors
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
