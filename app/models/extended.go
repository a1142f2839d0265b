package models

// StudentSummary aggregates a student's result records.
type StudentSummary struct {
	TotalScore   float64 `json:"total_score"`
	AverageScore float64 `json:"average_score"`
	CreditCount  int     `json:"credit_count"`
}

// CohortSummary holds the population-level counts for the analytics page.
type CohortSummary struct {
	TotalSchools            int `json:"total_schools"`
	TotalStudents           int `json:"total_students"`
	MaleCount               int `json:"male_count"`
	FemaleCount             int `json:"female_count"`
	StudentsWithFiveCredits int `json:"students_with_five_credits"`
}

// RegistrationSummary splits the cohort by whether a score record exists
// for a subject. Registered + NotRegistered always equals the student total
// the summary was built from.
type RegistrationSummary struct {
	Registered    int `json:"registered"`
	NotRegistered int `json:"not_registered"`
}
