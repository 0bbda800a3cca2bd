package models

import (
	"time"

	"github.com/google/uuid"
)

type PostType string

const (
	PostTypeBlog      PostType = "blog"
	PostTypePortfolio PostType = "portfolio"
)

func (t PostType) Valid() bool {
	return t == PostTypeBlog || t == PostTypePortfolio
}

type Comment struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	PostID      uuid.UUID  `db:"post_id" json:"post_id"`
	PostType    PostType   `db:"post_type" json:"post_type"`
	AuthorName  string     `db:"author_name" json:"author_name"`
	AuthorEmail string     `db:"author_email" json:"author_email"`
	Content     string     `db:"content" json:"content"`
	IsApproved  bool       `db:"is_approved" json:"is_approved"`
	ParentID    *uuid.UUID `db:"parent_id" json:"parent_id,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}
