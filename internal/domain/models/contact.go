package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "new"
	ContactStatusInProgress ContactStatus = "in-progress"
	ContactStatusCompleted  ContactStatus = "completed"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusInProgress, ContactStatusCompleted:
		return true
	}
	return false
}

type ContactSubmission struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Email     string        `db:"email" json:"email"`
	Phone     string        `db:"phone" json:"phone,omitempty"`
	Company   string        `db:"company" json:"company,omitempty"`
	Message   string        `db:"message" json:"message"`
	Service   string        `db:"service" json:"service,omitempty"`
	Source    string        `db:"source" json:"source,omitempty"`
	Status    ContactStatus `db:"status" json:"status"`
	Notes     string        `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}
