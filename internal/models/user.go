// Package models defines the database entities and application errors.
package models

// DefaultImageURL is the placeholder profile picture used when a user is
// created or edited without an image URL.
const DefaultImageURL = "https://upload.wikimedia.org/wikipedia/commons/a/ac/Default_pfp.jpg"

// User represents a blog author.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	ImgURL    string `gorm:"size:200;not null" json:"img_url"`
	Posts     []Post `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// FullName returns the user's display name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
