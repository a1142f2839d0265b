package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Jigawa state education zones, one per local government area.
var jigawaZones = []string{
	"Auyo", "Babura", "Biriniwa", "Birnin Kudu",
	"Buji", "Dutse", "Gagarawa", "Garki",
	"Gumel", "Guri", "Gwaram", "Gwiwa",
	"Hadejia", "Jahun", "Kafin Hausa", "Kazaure",
	"Kiri Kasamma", "Kiyawa", "Maigatari", "Malam Madori",
	"Miga", "Ringim", "Roni", "Sule Tankarkar",
	"Taura", "Yankwashi",
}

// Default admin accounts, one per role.
var defaultAdmins = []struct {
	Username string
	Password string
	Role     string
}{
	{Username: "schooladmin", Password: "school123", Role: "school"},
	{Username: "jeraadmin", Password: "jera123", Role: "jera"},
}

// SeedDefaults inserts the default admin accounts and the zone reference
// list. Existing records are left untouched, so running it on every
// startup never duplicates data.
func SeedDefaults(db *sql.DB) error {
	log.Println("Seeding default admins and zones...")

	for _, a := range defaultAdmins {
		var exists bool
		err := db.QueryRow(
			`SELECT EXISTS (SELECT 1 FROM admins WHERE username = $1 AND role = $2)`,
			a.Username, a.Role,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check admin %s: %w", a.Username, err)
		}
		if exists {
			continue
		}
		if _, err := CreateAdmin(db, a.Username, a.Password, a.Role); err != nil {
			return fmt.Errorf("failed to seed admin %s: %w", a.Username, err)
		}
		log.Printf("Seeded %s admin account %q", a.Role, a.Username)
	}

	for _, name := range jigawaZones {
		_, err := db.Exec(
			`INSERT INTO zones (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		)
		if err != nil {
			return fmt.Errorf("failed to seed zone %s: %w", name, err)
		}
	}

	log.Println("Seeding completed")
	return nil
}
