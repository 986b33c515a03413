// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"

	"blogly/internal/models"

	"gorm.io/gorm"
)

// Options controls how much demo data Run creates.
type Options struct {
	Users        int
	PostsPerUser int
	Tags         int
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{Users: 5, PostsPerUser: 3, Tags: 8}
}

// Run populates the database with fake users, tags, and tagged posts.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	tags := make([]models.Tag, 0, opts.Tags)
	for i := 0; i < opts.Tags; i++ {
		tag, err := f.CreateTag()
		if err != nil {
			return fmt.Errorf("seeding tag: %w", err)
		}
		tags = append(tags, *tag)
	}

	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		for j := 0; j < opts.PostsPerUser; j++ {
			if _, err := f.CreatePost(user, f.PickTags(tags)); err != nil {
				return fmt.Errorf("seeding post: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users, %d tags, %d posts",
		opts.Users, opts.Tags, opts.Users*opts.PostsPerUser)
	return nil
}
