package database

import (
	"database/sql"
	"fmt"

	"github.com/Aliyuabk/EMS/app/models"
)

// GetResultsByStudent fetches all of a student's result records with their
// subjects attached.
func GetResultsByStudent(db *sql.DB, studentID string) ([]*models.Result, error) {
	query := `
		SELECT
			r.id, r.student_id, r.subject_id, r.ca_score, r.exam_score, r.total,
			r.created_at, r.updated_at,
			sub.id, sub.name
		FROM results r
		JOIN subjects sub ON r.subject_id = sub.id
		WHERE r.student_id = $1
		ORDER BY sub.name
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		var result models.Result
		var subject models.Subject

		err := rows.Scan(
			&result.ID, &result.StudentID, &result.SubjectID,
			&result.CAScore, &result.ExamScore, &result.Total,
			&result.CreatedAt, &result.UpdatedAt,
			&subject.ID, &subject.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		result.Subject = &subject
		results = append(results, &result)
	}
	return results, rows.Err()
}

// GetResultByStudentAndSubject fetches the single record for a (student,
// subject) pair. A missing record is not an error: it returns nil, nil.
func GetResultByStudentAndSubject(db *sql.DB, studentID, subjectID string) (*models.Result, error) {
	query := `
		SELECT r.id, r.student_id, r.subject_id, r.ca_score, r.exam_score, r.total,
		       r.created_at, r.updated_at
		FROM results r
		WHERE r.student_id = $1 AND r.subject_id = $2
	`

	var result models.Result
	err := db.QueryRow(query, studentID, subjectID).Scan(
		&result.ID, &result.StudentID, &result.SubjectID,
		&result.CAScore, &result.ExamScore, &result.Total,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // No result found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch result: %w", err)
	}
	return &result, nil
}

// UpsertResult records scores for a (student, subject) pair. An existing
// record is overwritten in place, so the ledger holds at most one record
// per pair and the last write wins. Total is always recomputed and stored
// alongside the scores.
func UpsertResult(db *sql.DB, studentID, subjectID string, caScore, examScore float64) (*models.Result, error) {
	result := &models.Result{
		StudentID: studentID,
		SubjectID: subjectID,
		CAScore:   caScore,
		ExamScore: examScore,
		Total:     caScore + examScore,
	}

	query := `
		INSERT INTO results (student_id, subject_id, ca_score, exam_score, total)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, subject_id) DO UPDATE
		SET ca_score = EXCLUDED.ca_score,
		    exam_score = EXCLUDED.exam_score,
		    total = EXCLUDED.total,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := db.QueryRow(query, studentID, subjectID, caScore, examScore, result.Total).Scan(
		&result.ID, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert result: %w", translateError(err))
	}
	return result, nil
}

// CountResultsBySubject counts the result records for a subject, optionally
// restricted to students whose school belongs to a zone.
func CountResultsBySubject(db *sql.DB, subjectID, zoneID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM results r
		JOIN students st ON r.student_id = st.id
		JOIN schools sc ON st.school_id = sc.id
		WHERE r.subject_id = $1
	`
	args := []interface{}{subjectID}

	if zoneID != "" {
		query += ` AND sc.zone_id = $2`
		args = append(args, zoneID)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subject results: %w", err)
	}
	return count, nil
}
