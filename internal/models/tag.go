package models

// Tag labels posts. Tag names are unique site-wide.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:30;not null;unique" json:"name"`
	Posts []Post `gorm:"many2many:post_tags" json:"posts,omitempty"`
}
