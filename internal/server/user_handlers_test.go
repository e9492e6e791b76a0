package server

import (
	"fmt"
	"net/http"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileReadAndUpdate(t *testing.T) {
	t.Parallel()

	s, app := newTestServer(t)
	user, token := createTestUser(t, s, "scribe", "scribe@example.com")

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/users/me", token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.User
	decodeBody(t, resp, &me)
	assert.Equal(t, user.ID, me.ID)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/users/me", token, map[string]any{
		"bio":  "writes about storage engines",
		"name": "The Scribe",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.User
	decodeBody(t, resp, &updated)
	assert.Equal(t, "writes about storage engines", updated.Bio)
	assert.Equal(t, "The Scribe", updated.Name)
}

func TestResetPasswordEndpoint(t *testing.T) {
	t.Parallel()

	s, app := newTestServer(t)
	_, token := createTestUser(t, s, "scribe", "scribe@example.com")

	t.Run("wrong current password", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/users/me/password", token, map[string]any{
			"old_password":     "Wrong123@",
			"new_password":     "Newpw123@",
			"confirm_password": "Newpw123@",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, models.CodeInvalidCurrentPassword, body.Code)
	})

	t.Run("success then signin with new password", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/users/me/password", token, map[string]any{
			"old_password":     "Qwert123@",
			"new_password":     "Newpw123@",
			"confirm_password": "Newpw123@",
		}))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/signin", "", map[string]any{
			"email":    "scribe@example.com",
			"password": "Newpw123@",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestUserContentsListsPublishedOnly(t *testing.T) {
	t.Parallel()

	s, app := newTestServer(t)
	author, authorToken := createTestUser(t, s, "author", "author@example.com")
	_, readerToken := createTestUser(t, s, "reader", "reader@example.com")

	createPublishedContent(t, s, app, authorToken, "Public Piece")
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/contents", authorToken, map[string]any{
		"title":    "Hidden Draft",
		"body":     "b",
		"publish":  false,
		"topic_id": createTestTopic(t, s, "General").ID,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for name, token := range map[string]string{"reader": readerToken, "author": authorToken} {
		t.Run(name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, http.MethodGet,
				fmt.Sprintf("/api/users/%d/contents", author.ID), token, nil))
			require.NoError(t, err)
			var contents []ContentSummary
			decodeBody(t, resp, &contents)
			require.Len(t, contents, 1)
			assert.Equal(t, "Public Piece", contents[0].Title)
		})
	}
}
