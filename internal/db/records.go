package db

import (
	"database/sql"
	"errors"
	"time"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// DebitAndRecord атомарно списывает стоимость операции с баланса пользователя
// и добавляет запись аудита. Либо оба изменения фиксируются, либо ни одного.
// Условие balance >= cost в UPDATE сериализует конкурентные списания по строке
// пользователя: двойная трата при гонке невозможна.
func DebitAndRecord(userID, operationID int64, cost int, response string) (*Record, error) {
	tx, err := DB.Begin()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	result, err := tx.Exec(
		"UPDATE users SET balance = balance - ? WHERE id = ? AND balance >= ?",
		cost, userID, cost,
	)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		err = ErrInsufficientFunds
		return nil, err
	}

	// Баланс после списания - снимок для записи аудита
	var newBalance int
	if err = tx.QueryRow("SELECT balance FROM users WHERE id = ?", userID).Scan(&newBalance); err != nil {
		return nil, err
	}

	result, err = tx.Exec(
		"INSERT INTO records (operation_id, user_id, amount, user_balance, operation_response, status) VALUES (?, ?, ?, ?, ?, 1)",
		operationID, userID, cost, newBalance, response,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return &Record{
		ID:                id,
		OperationID:       operationID,
		UserID:            userID,
		Amount:            cost,
		UserBalance:       newBalance,
		OperationResponse: response,
		Active:            true,
		CreatedAt:         time.Now(),
	}, nil
}

// GetRecordByID получает запись аудита по ID
func GetRecordByID(id int64) (*Record, error) {
	var record Record
	var createdAtStr string

	err := DB.QueryRow(
		`SELECT id, operation_id, user_id, amount, user_balance, operation_response, status, created_at
		FROM records WHERE id = ?`,
		id,
	).Scan(
		&record.ID, &record.OperationID, &record.UserID, &record.Amount,
		&record.UserBalance, &record.OperationResponse, &record.Active, &createdAtStr,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	record.CreatedAt = parseTimestamp(createdAtStr)

	return &record, nil
}

// ListActiveRecordsByUser возвращает активные записи пользователя, новые первыми.
// Имя типа операции подтягивается из каталога для читаемости списка.
func ListActiveRecordsByUser(userID int64) ([]RecordSummary, error) {
	rows, err := DB.Query(
		`SELECT r.id, r.created_at, r.amount, r.user_balance, r.operation_response, o.type
		FROM records r
		JOIN operations o ON o.id = r.operation_id
		WHERE r.user_id = ? AND r.status = 1
		ORDER BY r.id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]RecordSummary, 0)
	for rows.Next() {
		var summary RecordSummary
		var createdAtStr string

		if err := rows.Scan(
			&summary.ID, &createdAtStr, &summary.Amount,
			&summary.UserBalance, &summary.OperationResponse, &summary.OperationType,
		); err != nil {
			return nil, err
		}

		summary.CreatedAt = parseTimestamp(createdAtStr)
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// SoftDeleteRecord помечает активную запись пользователя как удаленную.
// Запись физически не удаляется: история аудита сохраняется.
// Повторное удаление или чужая запись - ошибка, а не no-op.
func SoftDeleteRecord(id, userID int64) error {
	result, err := DB.Exec(
		"UPDATE records SET status = 0 WHERE id = ? AND user_id = ? AND status = 1",
		id, userID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
