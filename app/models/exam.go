package models

import "time"

// Exam is an examination sitting (QE or BECE) in a given year, optionally
// tied to one student. There is no lifecycle status: once created an exam
// only changes through direct edit.
type Exam struct {
	ID        string    `json:"id" validate:"required,uuid"`
	ExamType  string    `json:"exam_type" validate:"required,oneof=QE BECE"`
	Year      int       `json:"year" validate:"required,gte=2000"`
	ExamDate  time.Time `json:"exam_date"`
	StudentID *string   `json:"student_id,omitempty" validate:"omitempty,uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Student   *Student  `json:"student,omitempty"`
}
