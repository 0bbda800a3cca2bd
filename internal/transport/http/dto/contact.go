package dto

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Company string `json:"company,omitempty" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
	Service string `json:"service,omitempty" validate:"omitempty,max=100"`
	Source  string `json:"source,omitempty" validate:"omitempty,max=100"`
}

// UpdateContactRequest carries the admin-driven status transition plus
// optional internal notes.
type UpdateContactRequest struct {
	Status string  `json:"status" validate:"required,oneof=new in-progress completed"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

type ListContactsQuery struct {
	Status  string `query:"status" validate:"omitempty,oneof=new in-progress completed"`
	Page    int    `query:"page" validate:"omitempty,min=1"`
	PerPage int    `query:"per_page" validate:"omitempty,min=1,max=100"`
}
