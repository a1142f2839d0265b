package models

import "time"

// Zone is an administrative grouping of schools (maps to a local
// government area).
type Zone struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Schools   []*School `json:"schools,omitempty"`
}
