package models

// Post is the primary content resource. Title, Author and Content are
// never empty for a persisted row; that is enforced at the request
// boundary, not by the store.
type Post struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Author   string `gorm:"size:255;not null" json:"author"`
	Content  string `gorm:"size:1024;not null" json:"content"`
	Category string `gorm:"size:255" json:"category"`
	Tags     []Tag  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tags"`
}

// TagNames returns the names of the post's tags, never nil.
func (p *Post) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return names
}

// HasTag reports whether the post already carries a tag with the given
// name (case-sensitive exact match).
func (p *Post) HasTag(name string) bool {
	for _, t := range p.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}
