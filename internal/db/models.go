package db

import (
	"time"
)

// User представляет пользователя с балансом кредитов
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Не включается в JSON сериализацию
	Balance      int       `json:"balance"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Operation представляет запись каталога операций: имя типа и цена в кредитах
type Operation struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Cost      int       `json:"cost"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Record представляет неизменяемую запись аудита одного выполнения операции.
// Amount и UserBalance - снимки на момент выполнения, не живые ссылки.
type Record struct {
	ID                int64     `json:"id"`
	OperationID       int64     `json:"operation_id"`
	UserID            int64     `json:"user_id"`
	Amount            int       `json:"amount"`
	UserBalance       int       `json:"user_balance"`
	OperationResponse string    `json:"operation_response"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
}

// RecordSummary представляет строку списка записей вместе с именем типа операции
type RecordSummary struct {
	ID                int64     `json:"id"`
	CreatedAt         time.Time `json:"creation_date"`
	Amount            int       `json:"amount"`
	UserBalance       int       `json:"user_balance"`
	OperationResponse string    `json:"operation_response"`
	OperationType     string    `json:"operation_type"`
}

// Статусы пользователей
const (
	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"
)
