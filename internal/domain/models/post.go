package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

type Metadata map[string]any

type BlogPost struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Slug          string     `db:"slug" json:"slug"`
	Excerpt       string     `db:"excerpt" json:"excerpt,omitempty"`
	Content       string     `db:"content" json:"content"`
	FeaturedImage string     `db:"featured_image" json:"featured_image,omitempty"`
	AuthorID      uuid.UUID  `db:"author_id" json:"author_id"`
	Categories    []string   `db:"categories" json:"categories"`
	Tags          []string   `db:"tags" json:"tags"`
	Status        PostStatus `db:"status" json:"status"`
	PublishedAt   *time.Time `db:"published_at" json:"published_at,omitempty"`
	ReadTime      int        `db:"read_time" json:"read_time"`
	SEO           Metadata   `db:"seo" json:"seo,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// IsVisible reports whether the post may be served to anonymous readers.
func (p *BlogPost) IsVisible(now time.Time) bool {
	if p.Status != StatusPublished {
		return false
	}
	return p.PublishedAt == nil || !p.PublishedAt.After(now)
}

// Value реализует driver.Valuer для сериализации Metadata в JSONB
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan реализует sql.Scanner для десериализации JSONB в Metadata
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			*m = nil
			return nil
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, m)
}
