package database

import (
	"database/sql"
	"fmt"
)

func CountSchools(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schools`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count schools: %w", err)
	}
	return count, nil
}

func CountStudents(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

func CountStudentsByGender(db *sql.DB, gender string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE gender = $1`, gender).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students by gender: %w", err)
	}
	return count, nil
}

// TotalsByStudent returns every student's result totals keyed by student
// id, in one query. Students without results are absent from the map.
func TotalsByStudent(db *sql.DB) (map[string][]float64, error) {
	rows, err := db.Query(`SELECT student_id, total FROM results`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch result totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string][]float64)
	for rows.Next() {
		var studentID string
		var total float64
		if err := rows.Scan(&studentID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan result total: %w", err)
		}
		totals[studentID] = append(totals[studentID], total)
	}
	return totals, rows.Err()
}
