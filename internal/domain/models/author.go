package models

import (
	"time"

	"github.com/google/uuid"
)

type Author struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Bio       string    `db:"bio" json:"bio,omitempty"`
	Avatar    string    `db:"avatar" json:"avatar,omitempty"`
	Email     string    `db:"email" json:"email,omitempty"`
	Social    Metadata  `db:"social" json:"social,omitempty"`
	Role      string    `db:"role" json:"role,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// UnknownAuthor is the placeholder returned when an author lookup fails.
// A broken reference degrades the post card, not the whole page.
var UnknownAuthor = Author{Name: "Unknown Author", Slug: "unknown"}
