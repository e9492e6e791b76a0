package seed

import (
	"fmt"
	"log"
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// seedPassword is the password every seeded account signs in with.
const seedPassword = "Qwert123@"

// Options configuration for the seeder.
type Options struct {
	NumUsers    int
	NumContents int
	MaxDays     int
	ShouldClean bool
}

var topicTitles = []string{
	"Technology", "Programming", "Science", "Books", "Travel",
	"Food", "Music", "Fitness", "Finance", "Philosophy",
}

var tagTitles = []string{
	"go", "python", "rust", "databases", "web", "cloud", "devops",
	"ai", "security", "testing", "design", "career", "opinion",
	"tutorial", "review", "longform",
}

// Run populates the database with demo users, topics, tags, contents,
// comments, likes and bookmarks.
func Run(db *gorm.DB, opts Options) error {
	log.Printf("seeding database: %d users, %d contents", opts.NumUsers, opts.NumContents)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("clearing existing data: %w", err)
		}
	}

	factory, err := NewFactory(db, opts)
	if err != nil {
		return err
	}

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("creating users: %w", err)
	}
	log.Printf("created %d users (password %q)", len(users), seedPassword)

	topics, err := createTopics(db)
	if err != nil {
		return fmt.Errorf("creating topics: %w", err)
	}
	tags, err := createTags(db)
	if err != nil {
		return fmt.Errorf("creating tags: %w", err)
	}
	log.Printf("created %d topics, %d tags", len(topics), len(tags))

	contents, err := createContents(factory, users, topics, tags, opts.NumContents)
	if err != nil {
		return fmt.Errorf("creating contents: %w", err)
	}
	log.Printf("created %d contents", len(contents))

	if err := createEngagement(factory, users, contents); err != nil {
		return fmt.Errorf("creating engagement: %w", err)
	}

	log.Println("seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("clearing existing data")
	return db.Exec(`TRUNCATE TABLE bookmarks, likes, comments, content_tags, contents, tags, topics, users RESTART IDENTITY CASCADE`).Error
}

func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// a couple of well-known accounts for manual testing
	for _, name := range []string{"alice", "bob"} {
		name := name
		user, err := factory.CreateUser(func(u *models.User) {
			u.Username = name
			u.Email = name + "@example.com"
			u.Name = strings.ToUpper(name[:1]) + name[1:]
			u.Bio = "Founding member."
		})
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	for len(users) < count {
		user, err := factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createTopics(db *gorm.DB) ([]models.Topic, error) {
	topics := make([]models.Topic, 0, len(topicTitles))
	for _, title := range topicTitles {
		topic := models.Topic{Title: title}
		if err := db.Where(models.Topic{Title: title}).FirstOrCreate(&topic).Error; err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

func createTags(db *gorm.DB) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(tagTitles))
	for _, title := range tagTitles {
		tag := models.Tag{Title: title}
		if err := db.Where(models.Tag{Title: title}).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func createContents(factory *Factory, users []*models.User, topics []models.Topic, tags []models.Tag, count int) ([]*models.Content, error) {
	contents := make([]*models.Content, 0, count)
	for i := 0; i < count; i++ {
		author := users[factory.rng.Intn(len(users))]

		topic := &topics[factory.rng.Intn(len(topics))]

		picked := make([]models.Tag, 0, 3)
		for _, idx := range factory.rng.Perm(len(tags))[:factory.rng.Intn(4)] {
			picked = append(picked, tags[idx])
		}

		content, err := factory.CreateContent(author, topic, picked)
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	return contents, nil
}

func createEngagement(factory *Factory, users []*models.User, contents []*models.Content) error {
	var comments, likes, bookmarks int
	for _, content := range contents {
		if !content.Publish {
			continue
		}

		var thread []*models.Comment
		for i := factory.rng.Intn(6); i > 0; i-- {
			commenter := users[factory.rng.Intn(len(users))]
			var reply *models.Comment
			if len(thread) > 0 && factory.rng.Intn(3) == 0 {
				reply = thread[factory.rng.Intn(len(thread))]
			}
			comment, err := factory.CreateComment(commenter, content, reply)
			if err != nil {
				return err
			}
			thread = append(thread, comment)
			comments++
		}

		for _, idx := range factory.rng.Perm(len(users))[:factory.rng.Intn(len(users)+1)] {
			if err := factory.CreateLike(users[idx], content); err != nil {
				return err
			}
			likes++
		}

		for _, idx := range factory.rng.Perm(len(users))[:factory.rng.Intn(3)] {
			if err := factory.CreateBookmark(users[idx], content); err != nil {
				return err
			}
			bookmarks++
		}
	}
	log.Printf("created %d comments, %d likes, %d bookmarks", comments, likes, bookmarks)
	return nil
}
