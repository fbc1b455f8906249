package initializers

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectToDB opens the relational store. A DATABASE_URL selects MySQL;
// otherwise the storefront keeps its catalog in a SQLite file next to the
// binary.
func ConnectToDB(cfg Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(mysql.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}
