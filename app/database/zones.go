package database

import (
	"database/sql"
	"fmt"

	"github.com/Aliyuabk/EMS/app/models"
)

func GetAllZones(db *sql.DB) ([]*models.Zone, error) {
	query := `SELECT id, name, created_at, updated_at FROM zones ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch zones: %w", err)
	}
	defer rows.Close()

	var zones []*models.Zone
	for rows.Next() {
		var zone models.Zone
		if err := rows.Scan(&zone.ID, &zone.Name, &zone.CreatedAt, &zone.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, &zone)
	}
	return zones, rows.Err()
}

func GetZoneByID(db *sql.DB, zoneID string) (*models.Zone, error) {
	zone := &models.Zone{}
	query := `SELECT id, name, created_at, updated_at FROM zones WHERE id = $1`

	err := db.QueryRow(query, zoneID).Scan(&zone.ID, &zone.Name, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return zone, nil
}

// CreateZone inserts a zone. Zone names are unique; a collision surfaces
// as ErrDuplicateKey.
func CreateZone(db *sql.DB, name string) (*models.Zone, error) {
	zone := &models.Zone{Name: name}
	query := `INSERT INTO zones (name) VALUES ($1) RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, name).Scan(&zone.ID, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create zone: %w", translateError(err))
	}
	return zone, nil
}

func UpdateZone(db *sql.DB, zoneID, name string) error {
	query := `UPDATE zones SET name = $1, updated_at = NOW() WHERE id = $2`

	res, err := db.Exec(query, name, zoneID)
	if err != nil {
		return fmt.Errorf("failed to update zone: %w", translateError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteZone removes a zone. It fails with ErrZoneHasSchools while any
// school still references the zone; nothing is cascade-deleted.
func DeleteZone(db *sql.DB, zoneID string) error {
	count, err := CountSchoolsInZone(db, zoneID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrZoneHasSchools
	}

	res, err := db.Exec(`DELETE FROM zones WHERE id = $1`, zoneID)
	if err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func CountSchoolsInZone(db *sql.DB, zoneID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM schools WHERE zone_id = $1`, zoneID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count schools in zone: %w", err)
	}
	return count, nil
}
