package models

// Tag is a named label scoped to exactly one post. Names are unique
// within a post; a tag never outlives its parent.
type Tag struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	PostID int    `gorm:"index;not null" json:"post_id"`
	Name   string `gorm:"size:255;not null" json:"name"`
}
