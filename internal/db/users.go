package db

import (
	"database/sql"
	"errors"
	"time"

	"credit-calculator/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// Ошибки
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CreateUser создает нового пользователя со стартовым балансом кредитов
func CreateUser(username, password string) (*User, error) {
	// Проверяем, что пользователь уже существует
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM users WHERE username = ?", username).Scan(&count)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserAlreadyExists
	}

	// Хешируем пароль
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	balance := config.AppConfig.DefaultUserBalance

	// Добавляем нового пользователя
	result, err := DB.Exec(
		"INSERT INTO users (username, password_hash, balance, status) VALUES (?, ?, ?, ?)",
		username, string(passwordHash), balance, UserStatusActive,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Возвращаем созданного пользователя
	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: string(passwordHash),
		Balance:      balance,
		Status:       UserStatusActive,
		CreatedAt:    time.Now(),
	}, nil
}

// GetUserByID получает пользователя по ID
func GetUserByID(id int64) (*User, error) {
	return scanUser(DB.QueryRow(
		"SELECT id, username, password_hash, balance, status, created_at FROM users WHERE id = ?",
		id,
	))
}

// GetUserByUsername получает пользователя по имени
func GetUserByUsername(username string) (*User, error) {
	return scanUser(DB.QueryRow(
		"SELECT id, username, password_hash, balance, status, created_at FROM users WHERE username = ?",
		username,
	))
}

// GetActiveUserByUsername получает пользователя по имени, только в статусе active
func GetActiveUserByUsername(username string) (*User, error) {
	return scanUser(DB.QueryRow(
		"SELECT id, username, password_hash, balance, status, created_at FROM users WHERE username = ? AND status = ?",
		username, UserStatusActive,
	))
}

func scanUser(row *sql.Row) (*User, error) {
	var user User
	var createdAtStr string

	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Balance, &user.Status, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.CreatedAt = parseTimestamp(createdAtStr)

	return &user, nil
}

// AuthenticateUser проверяет, действительны ли предоставленные учетные данные
func AuthenticateUser(username, password string) (*User, error) {
	user, err := GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	// Сравниваем хешированный пароль с предоставленным паролем
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
