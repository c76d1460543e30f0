//go:build api

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carkeep/internal/models"
	"carkeep/test/api/testserver"
	"carkeep/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorBody decodes the uniform error response shape.
func errorBody(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var resp map[string][]map[string]interface{}
	testutil.ParseResponse(t, w, &resp)
	require.NotEmpty(t, resp["errors"], "error body should carry at least one error: %s", w.Body.String())
	return resp["errors"]
}

// TestRegister tests the POST /api/users/register endpoint.
func TestRegister(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("success - returns a usable token", func(t *testing.T) {
		req := models.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "Password123",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/register", req)
		require.Equal(t, http.StatusCreated, w.Code, "got: %s", w.Body.String())

		var resp models.TokenResponse
		testutil.ParseResponse(t, w, &resp)
		require.NotEmpty(t, resp.Token)

		// The returned token authenticates profile requests.
		pw := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/profile", resp.Token, nil)
		assert.Equal(t, http.StatusOK, pw.Code)
	})

	t.Run("error - duplicate email", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		authHelper := testserver.NewAuthHelper(testServer)
		authHelper.RegisterUser(t, "bob", "bob@example.com", "Password123")

		req := models.RegisterRequest{
			Username: "bobby",
			Email:    "bob@example.com",
			Password: "Password456",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errs := errorBody(t, w)
		assert.Equal(t, "User already exists", errs[0]["msg"])
	})

	t.Run("error - weak password itemized", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		req := models.RegisterRequest{
			Username: "carol",
			Email:    "carol@example.com",
			Password: "alllowercase",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errs := errorBody(t, w)
		assert.Equal(t, "password", errs[0]["param"])
	})
}

// TestLogin tests the POST /api/users/login endpoint.
func TestLogin(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	authHelper.RegisterUser(t, "dave", "dave@example.com", "Password123")

	t.Run("success", func(t *testing.T) {
		token := authHelper.Login(t, "dave@example.com", "Password123")
		assert.NotEmpty(t, token)
	})

	t.Run("error - wrong password", func(t *testing.T) {
		req := models.LoginRequest{Email: "dave@example.com", Password: "Wrongpass1"}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/login", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errs := errorBody(t, w)
		assert.Equal(t, "Invalid Credentials", errs[0]["msg"])
	})

	t.Run("error - unknown email uses the same message", func(t *testing.T) {
		req := models.LoginRequest{Email: "nobody@example.com", Password: "Password123"}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/login", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errs := errorBody(t, w)
		assert.Equal(t, "Invalid Credentials", errs[0]["msg"])
	})
}

// TestProfile tests the GET /api/users/profile endpoint.
func TestProfile(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	token := authHelper.RegisterUser(t, "erin", "erin@example.com", "Password123")

	t.Run("success - returns the profile without the password", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/profile", token, nil)

		require.Equal(t, http.StatusOK, w.Code, "got: %s", w.Body.String())

		var profile map[string]interface{}
		testutil.ParseResponse(t, w, &profile)
		assert.Equal(t, "erin", profile["username"])
		assert.Equal(t, "erin@example.com", profile["email"])
		assert.NotContains(t, profile, "password")
	})

	t.Run("success - repeated requests are served from cache", func(t *testing.T) {
		first := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/profile", token, nil)
		second := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/profile", token, nil)

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
	})

	t.Run("error - no token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/users/profile", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - garbage token", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/profile", "not.a.token", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
