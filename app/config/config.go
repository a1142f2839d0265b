package config

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
)

type Config struct {
	DB            *sql.DB
	SessionSecret string
	Port          string
	UploadDir     string
}

var AppConfig *Config

// getenv returns the value of key, or fallback when the variable is unset
// or empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	dsn := getenv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=jera sslmode=disable")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	AppConfig = &Config{
		DB:            db,
		SessionSecret: getenv("SESSION_SECRET", "jera-ems-secret-key"),
		Port:          getenv("PORT", "3000"),
		UploadDir:     getenv("UPLOAD_DIR", "./static/uploads"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// SessionSecret returns the key used to sign session tokens. It falls back
// to the environment so auth helpers stay usable before InitDB runs (tests,
// CLI tools).
func SessionSecret() []byte {
	if AppConfig != nil {
		return []byte(AppConfig.SessionSecret)
	}
	return []byte(getenv("SESSION_SECRET", "jera-ems-secret-key"))
}

func UploadDir() string {
	if AppConfig != nil {
		return AppConfig.UploadDir
	}
	return getenv("UPLOAD_DIR", "./static/uploads")
}
