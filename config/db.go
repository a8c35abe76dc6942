package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"patientgift/domain"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GetDatabaseURL builds the postgres connection string.
func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

func GetDBMS() string {
	v := os.Getenv("DBMS")
	if v == "" {
		return "sqlite"
	}
	return v
}

func GetSQLitePath() string {
	v := os.Getenv("SQLITE_PATH")
	if v == "" {
		return filepath.Join("data", "app.db")
	}
	return v
}

// GormConfig is shared by the server and the tests so duplicate keys surface
// as gorm.ErrDuplicatedKey on every driver.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// BootDB opens the configured database and runs migrations.
func BootDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbms := GetDBMS(); dbms {
	case "postgres":
		dialector = postgres.Open(GetDatabaseURL())
	case "sqlite":
		path := GetSQLitePath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported DBMS, value : %s", dbms)
	}

	db, err := gorm.Open(dialector, GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return db, err
	}

	GetLogrusInstance().WithField("dbms", GetDBMS()).Info("DB initialized")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Gift{}); err != nil {
		return fmt.Errorf("failed to migrate gifts table: %w", err)
	}
	return nil
}
