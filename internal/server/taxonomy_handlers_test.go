package server

import (
	"net/http"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCreateAndList(t *testing.T) {
	t.Parallel()

	s, app := newTestServer(t)
	_, token := createTestUser(t, s, "curator", "curator@example.com")

	for _, title := range []string{"golang", "gardening", "go-tooling"} {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/tags", token, map[string]any{
			"title": title,
		}))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// Creating an existing tag returns the known row instead of failing
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/tags", token, map[string]any{
		"title": "golang",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/tags", "", nil))
	require.NoError(t, err)
	var tags []models.Tag
	decodeBody(t, resp, &tags)
	assert.Len(t, tags, 3)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/tags?search=go", "", nil))
	require.NoError(t, err)
	decodeBody(t, resp, &tags)
	assert.Len(t, tags, 2)
}

func TestTopicsList(t *testing.T) {
	t.Parallel()

	s, app := newTestServer(t)
	for _, title := range []string{"Essays", "Engineering"} {
		require.NoError(t, s.db.Create(&models.Topic{Title: title}).Error)
	}

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/topics", "", nil))
	require.NoError(t, err)
	var topics []models.Topic
	decodeBody(t, resp, &topics)
	require.Len(t, topics, 2)
	assert.Equal(t, "Engineering", topics[0].Title, "topics should list alphabetically")
}
