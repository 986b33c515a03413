package models

import (
	"time"
)

// Post represents a blog post authored by a user.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tags      []Tag     `gorm:"many2many:post_tags" json:"tags,omitempty"`
}

// FriendlyDate renders the post's creation time in the human-readable
// format used on post detail pages, e.g. "Mon Jan 2 2006, 3:04 PM".
func (p Post) FriendlyDate() string {
	return p.CreatedAt.Format("Mon Jan 2 2006, 3:04 PM")
}
