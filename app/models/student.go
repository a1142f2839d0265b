package models

import "time"

type Student struct {
	ID              string    `json:"id" validate:"required,uuid"`
	FirstName       string    `json:"first_name" validate:"required"`
	LastName        string    `json:"last_name" validate:"required"`
	Gender          string    `json:"gender" validate:"required,oneof=Male Female"`
	HomeTown        string    `json:"home_town,omitempty"`
	LGA             string    `json:"lga,omitempty"`
	GuardianContact string    `json:"guardian_contact,omitempty"`
	Photo           string    `json:"photo,omitempty"`
	SchoolID        string    `json:"school_id" validate:"required,uuid"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	School          *School   `json:"school,omitempty"`
	Results         []*Result `json:"results,omitempty"`
}

func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
