package server

import (
	"time"

	"inkwell/internal/models"
)

// ContentSummary is the list-read shape of a content: scalar references
// only. Detail reads return the full model with author/topic/tags expanded.
type ContentSummary struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Publish    bool      `json:"publish"`
	AuthorID   uint      `json:"author_id"`
	Author     string    `json:"author"`
	TopicID    uint      `json:"topic_id"`
	Tags       []string  `json:"tags"`
	LikesCount int       `json:"likes_count"`
	Liked      bool      `json:"liked"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func summarizeContent(content *models.Content) ContentSummary {
	tags := make([]string, 0, len(content.Tags))
	for _, tag := range content.Tags {
		tags = append(tags, tag.Title)
	}
	return ContentSummary{
		ID:         content.ID,
		Title:      content.Title,
		Body:       content.Body,
		Publish:    content.Publish,
		AuthorID:   content.AuthorID,
		Author:     content.Author.Username,
		TopicID:    content.TopicID,
		Tags:       tags,
		LikesCount: content.LikesCount,
		Liked:      content.Liked,
		CreatedAt:  content.CreatedAt,
		UpdatedAt:  content.UpdatedAt,
	}
}

func summarizeContents(contents []models.Content) []ContentSummary {
	out := make([]ContentSummary, len(contents))
	for i := range contents {
		out[i] = summarizeContent(&contents[i])
	}
	return out
}
