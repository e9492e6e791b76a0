package server

import (
	"net/http"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupFlow(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email":            "ink@example.com",
		"username":         "inkling",
		"name":             "Ink Ling",
		"password":         "Qwert123@",
		"confirm_password": "Qwert123@",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "inkling", body.User.Username)
}

func TestSignupRejectsWeakPassword(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email":            "ink@example.com",
		"username":         "inkling",
		"password":         "weak",
		"confirm_password": "weak",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, models.CodeWeakPassword, body.Code)
}

func TestSignupRejectsPasswordMismatch(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email":            "ink@example.com",
		"username":         "inkling",
		"password":         "Qwert123@",
		"confirm_password": "Qwert124@",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, models.CodePasswordMismatch, body.Code)
}

func TestSigninFlow(t *testing.T) {
	t.Parallel()

	s, app := newTestServer(t)
	createTestUser(t, s, "writer", "writer@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/auth/signin", "", map[string]any{
			"email":    "writer@example.com",
			"password": "Qwert123@",
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Token string `json:"token"`
		}
		decodeBody(t, resp, &body)
		assert.NotEmpty(t, body.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/auth/signin", "", map[string]any{
			"email":    "writer@example.com",
			"password": "Wrong123@",
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)

	req := jsonRequest(t, http.MethodGet, "/api/users/me", "", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredRejectsForeignIssuer(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)

	req := jsonRequest(t, http.MethodGet, "/api/users/me", "not-a-jwt", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
