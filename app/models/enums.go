package models

// Admin roles
const (
	RoleSchool = "school"
	RoleJera   = "jera"
)

// Exam types
const (
	ExamTypeQE   = "QE"
	ExamTypeBECE = "BECE"
)

// Genders
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)
