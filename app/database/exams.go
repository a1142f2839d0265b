package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Aliyuabk/EMS/app/models"
)

// ExamFilters narrows exam listings. Empty fields are ignored.
type ExamFilters struct {
	StudentID string
	SchoolID  string
}

func GetExams(db *sql.DB, filters ExamFilters) ([]*models.Exam, error) {
	query := `SELECT e.id, e.exam_type, e.year, e.exam_date, e.student_id,
			  e.created_at, e.updated_at
			  FROM exams e`
	var args []interface{}

	if filters.SchoolID != "" {
		query += ` JOIN students st ON e.student_id = st.id WHERE st.school_id = $1`
		args = append(args, filters.SchoolID)
	} else if filters.StudentID != "" {
		query += ` WHERE e.student_id = $1`
		args = append(args, filters.StudentID)
	}
	query += ` ORDER BY e.year DESC, e.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		exams = append(exams, exam)
	}
	return exams, rows.Err()
}

func scanExam(rows *sql.Rows) (*models.Exam, error) {
	var exam models.Exam
	var examDate sql.NullTime
	var studentID sql.NullString

	err := rows.Scan(
		&exam.ID, &exam.ExamType, &exam.Year, &examDate, &studentID,
		&exam.CreatedAt, &exam.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan exam: %w", err)
	}
	if examDate.Valid {
		exam.ExamDate = examDate.Time
	}
	if studentID.Valid {
		exam.StudentID = &studentID.String
	}
	return &exam, nil
}

// GetLatestExam returns the exam with the highest year, used by the photo
// card page. Returns ErrNotFound when no exam exists yet.
func GetLatestExam(db *sql.DB) (*models.Exam, error) {
	exam := &models.Exam{}
	var examDate sql.NullTime
	var studentID sql.NullString

	query := `SELECT id, exam_type, year, exam_date, student_id, created_at, updated_at
			  FROM exams ORDER BY year DESC, created_at DESC LIMIT 1`

	err := db.QueryRow(query).Scan(
		&exam.ID, &exam.ExamType, &exam.Year, &examDate, &studentID,
		&exam.CreatedAt, &exam.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if examDate.Valid {
		exam.ExamDate = examDate.Time
	}
	if studentID.Valid {
		exam.StudentID = &studentID.String
	}
	return exam, nil
}

func CreateExam(db *sql.DB, examType string, year int, examDate time.Time, studentID *string) (*models.Exam, error) {
	exam := &models.Exam{ExamType: examType, Year: year, ExamDate: examDate, StudentID: studentID}

	var date interface{}
	if !examDate.IsZero() {
		date = examDate
	}

	query := `INSERT INTO exams (exam_type, year, exam_date, student_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, examType, year, date, studentID).Scan(
		&exam.ID, &exam.CreatedAt, &exam.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create exam: %w", translateError(err))
	}
	return exam, nil
}

func UpdateExam(db *sql.DB, exam *models.Exam) error {
	var date interface{}
	if !exam.ExamDate.IsZero() {
		date = exam.ExamDate
	}

	query := `UPDATE exams
			  SET exam_type = $1, year = $2, exam_date = $3, student_id = $4, updated_at = NOW()
			  WHERE id = $5`

	res, err := db.Exec(query, exam.ExamType, exam.Year, date, exam.StudentID, exam.ID)
	if err != nil {
		return fmt.Errorf("failed to update exam: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
