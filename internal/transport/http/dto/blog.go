package dto

import (
	"time"

	"digibayt/internal/domain/models"
	"digibayt/internal/lib/markdown"

	"github.com/google/uuid"
)

type CreateBlogPostRequest struct {
	Title         string          `json:"title" validate:"required,min=3,max=200"`
	Slug          string          `json:"slug,omitempty" validate:"omitempty,max=200"`
	Excerpt       string          `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content       string          `json:"content" validate:"required"`
	FeaturedImage string          `json:"featured_image,omitempty"`
	AuthorID      uuid.UUID       `json:"author_id" validate:"required"`
	Categories    []string        `json:"categories,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	Status        string          `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
	SEO           models.Metadata `json:"seo,omitempty"`
}

type UpdateBlogPostRequest struct {
	Title         *string         `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Slug          *string         `json:"slug,omitempty" validate:"omitempty,max=200"`
	Excerpt       *string         `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content       *string         `json:"content,omitempty"`
	FeaturedImage *string         `json:"featured_image,omitempty"`
	AuthorID      *uuid.UUID      `json:"author_id,omitempty"`
	Categories    []string        `json:"categories,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	Status        *string         `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
	SEO           models.Metadata `json:"seo,omitempty"`
}

// ListPostsQuery enumerates every recognized listing filter with its type;
// anything else is rejected by validation rather than silently ignored.
type ListPostsQuery struct {
	Status        string `query:"status" validate:"omitempty,oneof=draft published all"`
	Category      string `query:"category"`
	Tag           string `query:"tag"`
	Page          int    `query:"page" validate:"omitempty,min=1"`
	PerPage       int    `query:"per_page" validate:"omitempty,min=1,max=100"`
	IncludeDrafts bool   `query:"include_drafts"`
}

type AuthorSummary struct {
	ID     uuid.UUID `json:"id,omitempty"`
	Name   string    `json:"name"`
	Slug   string    `json:"slug"`
	Avatar string    `json:"avatar,omitempty"`
}

type BlogPostResponse struct {
	ID            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	Slug          string             `json:"slug"`
	Excerpt       string             `json:"excerpt,omitempty"`
	Content       string             `json:"content"`
	FeaturedImage string             `json:"featured_image,omitempty"`
	Author        AuthorSummary      `json:"author"`
	Categories    []string           `json:"categories"`
	Tags          []string           `json:"tags"`
	Status        models.PostStatus  `json:"status"`
	PublishedAt   *time.Time         `json:"published_at,omitempty"`
	ReadTime      int                `json:"read_time"`
	SEO           models.Metadata    `json:"seo,omitempty"`
	TOC           []markdown.Heading `json:"toc,omitempty"`
	Related       []BlogPostResponse `json:"related,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type BlogPostListResponse struct {
	Posts      []BlogPostResponse `json:"posts"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
}
