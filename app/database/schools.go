package database

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	"github.com/Aliyuabk/EMS/app/models"
)

// GenerateSchoolCode derives a school code from the zone name and the
// number of schools already in that zone: the first three letters of the
// zone name upper-cased, then a zero-padded sequence number. "Auyo" with
// no existing schools yields AUY001.
//
// Known limitation: renaming a zone after schools were created can make a
// later code collide with an earlier prefix.
func GenerateSchoolCode(zoneName string, existing int) string {
	var letters []rune
	for _, r := range zoneName {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 3 {
			break
		}
	}
	return fmt.Sprintf("%s%03d", string(letters), existing+1)
}

const schoolColumns = `s.id, s.code, s.name, s.zone_id, s.created_at, s.updated_at,
			z.id, z.name, z.created_at, z.updated_at`

func scanSchool(rows *sql.Rows) (*models.School, error) {
	var school models.School
	var zone models.Zone
	err := rows.Scan(
		&school.ID, &school.Code, &school.Name, &school.ZoneID,
		&school.CreatedAt, &school.UpdatedAt,
		&zone.ID, &zone.Name, &zone.CreatedAt, &zone.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan school: %w", err)
	}
	school.Zone = &zone
	return &school, nil
}

func GetAllSchools(db *sql.DB) ([]*models.School, error) {
	query := `SELECT ` + schoolColumns + `
		FROM schools s
		JOIN zones z ON s.zone_id = z.id
		ORDER BY s.code`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schools: %w", err)
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, err
		}
		schools = append(schools, school)
	}
	return schools, rows.Err()
}

func GetSchoolsByZone(db *sql.DB, zoneID string) ([]*models.School, error) {
	query := `SELECT ` + schoolColumns + `
		FROM schools s
		JOIN zones z ON s.zone_id = z.id
		WHERE s.zone_id = $1
		ORDER BY s.code`

	rows, err := db.Query(query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schools by zone: %w", err)
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, err
		}
		schools = append(schools, school)
	}
	return schools, rows.Err()
}

func GetSchoolByID(db *sql.DB, schoolID string) (*models.School, error) {
	school := &models.School{}
	query := `SELECT id, code, name, zone_id, created_at, updated_at FROM schools WHERE id = $1`

	err := db.QueryRow(query, schoolID).Scan(
		&school.ID, &school.Code, &school.Name, &school.ZoneID,
		&school.CreatedAt, &school.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return school, nil
}

// CreateSchool inserts a school into a zone, generating its code from the
// zone name and the current school count in that zone.
func CreateSchool(db *sql.DB, name, zoneID string) (*models.School, error) {
	zone, err := GetZoneByID(db, zoneID)
	if err != nil {
		return nil, err
	}

	count, err := CountSchoolsInZone(db, zoneID)
	if err != nil {
		return nil, err
	}

	school := &models.School{
		Code:   GenerateSchoolCode(zone.Name, count),
		Name:   strings.TrimSpace(name),
		ZoneID: zoneID,
		Zone:   zone,
	}
	query := `INSERT INTO schools (code, name, zone_id)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`

	err = db.QueryRow(query, school.Code, school.Name, school.ZoneID).Scan(
		&school.ID, &school.CreatedAt, &school.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create school: %w", translateError(err))
	}
	return school, nil
}

func UpdateSchool(db *sql.DB, schoolID, name string) error {
	query := `UPDATE schools SET name = $1, updated_at = NOW() WHERE id = $2`

	res, err := db.Exec(query, name, schoolID)
	if err != nil {
		return fmt.Errorf("failed to update school: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteSchool(db *sql.DB, schoolID string) error {
	res, err := db.Exec(`DELETE FROM schools WHERE id = $1`, schoolID)
	if err != nil {
		return fmt.Errorf("failed to delete school: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
