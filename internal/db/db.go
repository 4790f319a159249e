package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"credit-calculator/internal/config"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// InitDB инициализирует соединение с базой данных SQLite
func InitDB(schemaDir string) error {
	// Получаем путь к базе данных из конфигурации
	dbPath := config.AppConfig.DBPath

	// Проверка, что директория для базы данных существует
	dbDir := filepath.Dir(dbPath)
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	var err error

	// Открываем соединение с включенными внешними ключами
	DB, err = sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err = DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err = ApplySchema(filepath.Join(schemaDir, "schema.sql")); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}

func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// ApplySchema выполняет SQL из файла схемы
func ApplySchema(schemaPath string) error {
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	_, err = DB.Exec(string(schemaBytes))
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// parseTimestamp разбирает временную метку SQLite в одном из известных форматов
func parseTimestamp(value string) time.Time {
	formats := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}

	for _, format := range formats {
		if parsed, err := time.Parse(format, value); err == nil {
			return parsed
		}
	}

	// Если не удалось разобрать дату, устанавливаем текущее время
	return time.Now()
}
