package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs struct-tag validation on v and returns the first
// validation error encountered.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
