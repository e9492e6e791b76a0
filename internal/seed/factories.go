// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seed runner.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// all seeded users share one bcrypt hash so large seeds stay fast
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing seed password: %w", err)
	}
	//nolint:gosec // weak randomness is fine for demo data
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Factory{db: db, opts: opts, rng: rng, passwordHash: string(hash)}, nil
}

// spreadCreatedAt returns a timestamp a random amount of time in the past,
// bounded by opts.MaxDays, so listings look lived-in instead of minted at once.
func (f *Factory) spreadCreatedAt() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(f.rng.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rng.Intn(24))*time.Hour +
		time.Duration(f.rng.Intn(60))*time.Minute
	return time.Now().Add(-back)
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:  strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		Name:      gofakeit.Name(),
		Bio:       gofakeit.Sentence(10),
		Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Password:  f.passwordHash,
		IsActive:  true,
		CreatedAt: f.spreadCreatedAt(),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateContent constructs and persists a content for the given author.
// Roughly four in five contents are published; the rest stay drafts.
func (f *Factory) CreateContent(author *models.User, topic *models.Topic, tags []models.Tag, overrides ...func(*models.Content)) (*models.Content, error) {
	content := &models.Content{
		Title:     gofakeit.Sentence(5),
		Body:      gofakeit.Paragraph(2, 4, 8, "\n\n"),
		Publish:   f.rng.Intn(5) > 0,
		AuthorID:  author.ID,
		TopicID:   topic.ID,
		CreatedAt: f.spreadCreatedAt(),
	}
	for _, override := range overrides {
		override(content)
	}
	if err := f.db.Create(content).Error; err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := f.db.Model(content).Association("Tags").Replace(tags); err != nil {
			return nil, err
		}
	}
	return content, nil
}

// CreateComment persists a comment by the given user on the given content.
// A non-nil reply must reference a comment on the same content.
func (f *Factory) CreateComment(author *models.User, content *models.Content, reply *models.Comment, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Body:      gofakeit.Sentence(gofakeit.Number(5, 20)),
		AuthorID:  author.ID,
		ContentID: content.ID,
		CreatedAt: content.CreatedAt.Add(time.Duration(f.rng.Intn(72)) * time.Hour),
	}
	if reply != nil {
		comment.ReplyID = &reply.ID
		comment.CreatedAt = reply.CreatedAt.Add(time.Duration(f.rng.Intn(24)) * time.Hour)
	}
	for _, override := range overrides {
		override(comment)
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike records a like; duplicate (user, content) pairs are skipped by
// the unique index, mirroring the live write path.
func (f *Factory) CreateLike(user *models.User, content *models.Content) error {
	like := models.Like{UserID: user.ID, ContentID: content.ID, Liked: true}
	err := f.db.Create(&like).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

// CreateBookmark records a bookmark for a published content.
func (f *Factory) CreateBookmark(user *models.User, content *models.Content) error {
	if !content.Publish {
		return nil
	}
	bookmark := models.Bookmark{UserID: user.ID, ContentID: content.ID}
	err := f.db.Create(&bookmark).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

func isDuplicate(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
