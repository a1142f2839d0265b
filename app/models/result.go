package models

import "time"

// Result stores a student's continuous-assessment and exam scores for one
// subject. At most one record exists per (student, subject) pair; writes
// overwrite it. Total is persisted and recomputed on every write path so it
// always equals CAScore + ExamScore.
type Result struct {
	ID        string    `json:"id" validate:"required,uuid"`
	StudentID string    `json:"student_id" validate:"required,uuid"`
	SubjectID string    `json:"subject_id" validate:"required,uuid"`
	CAScore   float64   `json:"ca_score" validate:"gte=0"`
	ExamScore float64   `json:"exam_score" validate:"gte=0"`
	Total     float64   `json:"total" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Student   *Student  `json:"student,omitempty"`
	Subject   *Subject  `json:"subject,omitempty"`
}
