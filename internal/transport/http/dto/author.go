package dto

import "digibayt/internal/domain/models"

type AuthorRequest struct {
	Name   string          `json:"name" validate:"required,min=2,max=100"`
	Slug   string          `json:"slug,omitempty" validate:"omitempty,max=100"`
	Bio    string          `json:"bio,omitempty"`
	Avatar string          `json:"avatar,omitempty"`
	Email  string          `json:"email,omitempty" validate:"omitempty,email"`
	Social models.Metadata `json:"social,omitempty"`
	Role   string          `json:"role,omitempty" validate:"omitempty,max=100"`
}
