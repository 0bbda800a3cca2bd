package dto

import (
	"time"

	"digibayt/internal/domain/models"

	"github.com/google/uuid"
)

type CreatePortfolioItemRequest struct {
	Title            string          `json:"title" validate:"required,min=3,max=200"`
	Slug             string          `json:"slug,omitempty" validate:"omitempty,max=200"`
	ShortDescription string          `json:"short_description,omitempty" validate:"omitempty,max=500"`
	Description      string          `json:"description" validate:"required"`
	Category         string          `json:"category,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	Gallery          []string        `json:"gallery,omitempty"`
	Client           string          `json:"client,omitempty"`
	CompletionDate   *time.Time      `json:"completion_date,omitempty"`
	Technologies     []string        `json:"technologies,omitempty"`
	Challenge        string          `json:"challenge,omitempty"`
	Solution         string          `json:"solution,omitempty"`
	Results          string          `json:"results,omitempty"`
	Testimonial      models.Metadata `json:"testimonial,omitempty"`
	Featured         bool            `json:"featured"`
	Order            int             `json:"order"`
	Status           string          `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}

type UpdatePortfolioItemRequest struct {
	Title            *string         `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Slug             *string         `json:"slug,omitempty" validate:"omitempty,max=200"`
	ShortDescription *string         `json:"short_description,omitempty" validate:"omitempty,max=500"`
	Description      *string         `json:"description,omitempty"`
	Category         *string         `json:"category,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	Gallery          []string        `json:"gallery,omitempty"`
	Client           *string         `json:"client,omitempty"`
	CompletionDate   *time.Time      `json:"completion_date,omitempty"`
	Technologies     []string        `json:"technologies,omitempty"`
	Challenge        *string         `json:"challenge,omitempty"`
	Solution         *string         `json:"solution,omitempty"`
	Results          *string         `json:"results,omitempty"`
	Testimonial      models.Metadata `json:"testimonial,omitempty"`
	Featured         *bool           `json:"featured,omitempty"`
	Order            *int            `json:"order,omitempty"`
	Status           *string         `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}

type ListPortfolioQuery struct {
	Status        string `query:"status" validate:"omitempty,oneof=draft published all"`
	Category      string `query:"category"`
	Tag           string `query:"tag"`
	Featured      *bool  `query:"featured"`
	Page          int    `query:"page" validate:"omitempty,min=1"`
	PerPage       int    `query:"per_page" validate:"omitempty,min=1,max=100"`
	IncludeDrafts bool   `query:"include_drafts"`
}

type PortfolioItemResponse struct {
	ID               uuid.UUID               `json:"id"`
	Title            string                  `json:"title"`
	Slug             string                  `json:"slug"`
	ShortDescription string                  `json:"short_description,omitempty"`
	Description      string                  `json:"description"`
	Category         string                  `json:"category"`
	Tags             []string                `json:"tags"`
	Gallery          []string                `json:"gallery"`
	Client           string                  `json:"client,omitempty"`
	CompletionDate   *time.Time              `json:"completion_date,omitempty"`
	Technologies     []string                `json:"technologies"`
	Challenge        string                  `json:"challenge,omitempty"`
	Solution         string                  `json:"solution,omitempty"`
	Results          string                  `json:"results,omitempty"`
	Testimonial      models.Metadata         `json:"testimonial,omitempty"`
	Featured         bool                    `json:"featured"`
	Order            int                     `json:"order"`
	Status           models.PostStatus       `json:"status"`
	Related          []PortfolioItemResponse `json:"related,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

type PortfolioListResponse struct {
	Items      []PortfolioItemResponse `json:"items"`
	TotalCount int                     `json:"total_count"`
	Page       int                     `json:"page"`
	PerPage    int                     `json:"per_page"`
}

type PortfolioCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}
