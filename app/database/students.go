package database

import (
	"database/sql"
	"fmt"

	"github.com/Aliyuabk/EMS/app/models"
)

const studentColumns = `st.id, st.first_name, st.last_name, st.gender, st.home_town,
			st.lga, st.guardian_contact, st.photo, st.school_id, st.created_at, st.updated_at,
			sc.id, sc.code, sc.name, sc.zone_id`

func scanStudent(rows *sql.Rows) (*models.Student, error) {
	var student models.Student
	var school models.School
	err := rows.Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Gender,
		&student.HomeTown, &student.LGA, &student.GuardianContact, &student.Photo,
		&student.SchoolID, &student.CreatedAt, &student.UpdatedAt,
		&school.ID, &school.Code, &school.Name, &school.ZoneID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan student: %w", err)
	}
	student.School = &school
	return &student, nil
}

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + `
		FROM students st
		JOIN schools sc ON st.school_id = sc.id
		ORDER BY st.last_name, st.first_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func GetStudentsBySchool(db *sql.DB, schoolID string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + `
		FROM students st
		JOIN schools sc ON st.school_id = sc.id
		WHERE st.school_id = $1
		ORDER BY st.last_name, st.first_name`

	rows, err := db.Query(query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students by school: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, first_name, last_name, gender, home_town, lga,
			  guardian_contact, photo, school_id, created_at, updated_at
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Gender,
		&student.HomeTown, &student.LGA, &student.GuardianContact, &student.Photo,
		&student.SchoolID, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return student, nil
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (first_name, last_name, gender, home_town, lga,
			  guardian_contact, photo, school_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(
		query,
		student.FirstName, student.LastName, student.Gender, student.HomeTown,
		student.LGA, student.GuardianContact, student.Photo, student.SchoolID,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", translateError(err))
	}
	return nil
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET first_name = $1, last_name = $2, gender = $3, home_town = $4,
			      lga = $5, guardian_contact = $6, photo = $7, school_id = $8,
			      updated_at = NOW()
			  WHERE id = $9`

	res, err := db.Exec(
		query,
		student.FirstName, student.LastName, student.Gender, student.HomeTown,
		student.LGA, student.GuardianContact, student.Photo, student.SchoolID,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteStudent(db *sql.DB, studentID string) error {
	if _, err := db.Exec(`DELETE FROM results WHERE student_id = $1`, studentID); err != nil {
		return fmt.Errorf("failed to delete student results: %w", err)
	}

	res, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
