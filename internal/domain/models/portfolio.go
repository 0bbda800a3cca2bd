package models

import (
	"time"

	"github.com/google/uuid"
)

type PortfolioItem struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	Title            string     `db:"title" json:"title"`
	Slug             string     `db:"slug" json:"slug"`
	ShortDescription string     `db:"short_description" json:"short_description,omitempty"`
	Description      string     `db:"description" json:"description"`
	Category         string     `db:"category" json:"category"`
	Tags             []string   `db:"tags" json:"tags"`
	Gallery          []string   `db:"gallery" json:"gallery"`
	Client           string     `db:"client" json:"client,omitempty"`
	CompletionDate   *time.Time `db:"completion_date" json:"completion_date,omitempty"`
	Technologies     []string   `db:"technologies" json:"technologies"`
	Challenge        string     `db:"challenge" json:"challenge,omitempty"`
	Solution         string     `db:"solution" json:"solution,omitempty"`
	Results          string     `db:"results" json:"results,omitempty"`
	Testimonial      Metadata   `db:"testimonial" json:"testimonial,omitempty"`
	Featured         bool       `db:"featured" json:"featured"`
	Order            int        `db:"sort_order" json:"order"`
	Status           PostStatus `db:"status" json:"status"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

type PortfolioCategory struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
