package database

import (
	"database/sql"
	"fmt"

	"github.com/Aliyuabk/EMS/app/models"
)

func GetAllSubjects(db *sql.DB) ([]*models.Subject, error) {
	query := `SELECT id, name, created_at, updated_at FROM subjects ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.CreatedAt, &subject.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, &subject)
	}
	return subjects, rows.Err()
}

func GetSubjectByID(db *sql.DB, subjectID string) (*models.Subject, error) {
	subject := &models.Subject{}
	query := `SELECT id, name, created_at, updated_at FROM subjects WHERE id = $1`

	err := db.QueryRow(query, subjectID).Scan(
		&subject.ID, &subject.Name, &subject.CreatedAt, &subject.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return subject, nil
}

func CreateSubject(db *sql.DB, name string) (*models.Subject, error) {
	subject := &models.Subject{Name: name}
	query := `INSERT INTO subjects (name) VALUES ($1) RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, name).Scan(&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", translateError(err))
	}
	return subject, nil
}

func DeleteSubject(db *sql.DB, subjectID string) error {
	if _, err := db.Exec(`DELETE FROM results WHERE subject_id = $1`, subjectID); err != nil {
		return fmt.Errorf("failed to delete subject results: %w", err)
	}

	res, err := db.Exec(`DELETE FROM subjects WHERE id = $1`, subjectID)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
