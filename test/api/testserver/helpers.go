//go:build api

package testserver

import (
	"net/http"
	"testing"

	"carkeep/internal/models"
	"carkeep/test/testutil"

	"github.com/stretchr/testify/require"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the signed token.
func (ah *AuthHelper) RegisterUser(t *testing.T, username, email, password string) string {
	t.Helper()

	req := models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/users/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp models.TokenResponse
	testutil.ParseResponse(t, w, &resp)
	require.NotEmpty(t, resp.Token, "register response should carry a token")

	return resp.Token
}

// Login logs in a user and returns the signed token.
func (ah *AuthHelper) Login(t *testing.T, email, password string) string {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/users/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp models.TokenResponse
	testutil.ParseResponse(t, w, &resp)
	require.NotEmpty(t, resp.Token, "login response should carry a token")

	return resp.Token
}

// CreateDefaultUser registers a user with default test credentials and
// returns the signed token.
func (ah *AuthHelper) CreateDefaultUser(t *testing.T) string {
	t.Helper()
	return ah.RegisterUser(t, "testuser", "test@example.com", "Password123")
}

// CarHelper provides car-related helpers for API tests.
type CarHelper struct {
	server *TestServer
}

// NewCarHelper creates a new car helper.
func NewCarHelper(server *TestServer) *CarHelper {
	return &CarHelper{server: server}
}

// CreateCar creates a car via the API and returns the response data.
func (ch *CarHelper) CreateCar(t *testing.T, token, make, model, year, plate string) map[string]interface{} {
	t.Helper()

	fields := map[string]string{
		"make":         make,
		"model":        model,
		"year":         year,
		"licensePlate": plate,
	}

	w := testutil.MakeMultipartAuthRequest(t, ch.server.Router, http.MethodPost, "/api/cars", token, fields, "", "", nil)
	require.Equal(t, http.StatusCreated, w.Code, "create car should return 201, got: %s", w.Body.String())

	var data map[string]interface{}
	testutil.ParseResponse(t, w, &data)
	return data
}

// DocumentHelper provides document-related helpers for API tests.
type DocumentHelper struct {
	server *TestServer
}

// NewDocumentHelper creates a new document helper.
func NewDocumentHelper(server *TestServer) *DocumentHelper {
	return &DocumentHelper{server: server}
}

// CreateDocument creates a document via the API and returns the response data.
func (dh *DocumentHelper) CreateDocument(t *testing.T, token, carID, docType, title string) map[string]interface{} {
	t.Helper()

	fields := map[string]string{
		"carId": carID,
		"type":  docType,
		"title": title,
	}

	w := testutil.MakeMultipartAuthRequest(t, dh.server.Router, http.MethodPost, "/api/documents", token, fields, "", "", nil)
	require.Equal(t, http.StatusCreated, w.Code, "create document should return 201, got: %s", w.Body.String())

	var data map[string]interface{}
	testutil.ParseResponse(t, w, &data)
	return data
}

// GetIDFromResponse extracts the ID from response data.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	id, ok := data["id"].(string)
	require.True(t, ok, "id should be a string in response data")
	return id
}
