package models

import "time"

// Admin is an authority account. Role is fixed at creation and is part of
// the login lookup key: the same username may exist once per role.
type Admin struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Username  string    `json:"username" validate:"required,min=3"`
	Password  string    `json:"-" validate:"required"`
	Role      string    `json:"role" validate:"required,oneof=school jera"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
