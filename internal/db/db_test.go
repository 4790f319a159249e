package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"credit-calculator/internal/config"
)

func InitTest(t *testing.T) {
	config.InitTestConfig()

	var err error
	DB, err = sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Пул соединений держим на одном соединении, иначе каждое новое
	// соединение видит свою пустую базу в памяти
	DB.SetMaxOpenConns(1)

	if err := ApplySchema(filepath.Join("../../internal/db", "schema.sql")); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}
}

func CleanupDB() {
	CloseDB()
}
