// Package database opens the embedded SQLite store backing each service.
package database

import (
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
)

// Open opens (creating if absent) the single-file store at path and applies
// the pragmas every service relies on.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(gormlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.Exec("PRAGMA journal_mode=wal").Error; err != nil {
		return nil, err
	}
	if err := db.Exec("PRAGMA foreign_keys=on").Error; err != nil {
		return nil, err
	}
	if err := db.Exec("PRAGMA busy_timeout=30000").Error; err != nil {
		return nil, err
	}

	return db, nil
}
