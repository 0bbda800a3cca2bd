package dto

import "github.com/google/uuid"

type CreateCommentRequest struct {
	PostID      uuid.UUID  `json:"post_id" validate:"required"`
	PostType    string     `json:"post_type" validate:"required,oneof=blog portfolio"`
	AuthorName  string     `json:"author_name" validate:"required,min=2,max=100"`
	AuthorEmail string     `json:"author_email" validate:"required,email"`
	Content     string     `json:"content" validate:"required,min=2,max=5000"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

type ListCommentsQuery struct {
	PostID   uuid.UUID `query:"post_id" validate:"required"`
	PostType string    `query:"post_type" validate:"required,oneof=blog portfolio"`
	// Pending widens the listing to unapproved comments; requires an
	// admin session.
	Pending bool `query:"pending"`
}
