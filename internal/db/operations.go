package db

import (
	"database/sql"
	"errors"
	"time"
)

var (
	ErrOperationNotFound = errors.New("operation not found")
)

// CreateOperation добавляет операцию в каталог.
// Цена операции фиксируется в записях аудита на момент выполнения,
// поэтому менять ее задним числом безопасно только для новых запросов.
func CreateOperation(opType string, cost int) (*Operation, error) {
	result, err := DB.Exec(
		"INSERT INTO operations (type, cost, status) VALUES (?, ?, 1)",
		opType, cost,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Operation{
		ID:        id,
		Type:      opType,
		Cost:      cost,
		Active:    true,
		CreatedAt: time.Now(),
	}, nil
}

// GetOperationByID получает операцию каталога по ID
func GetOperationByID(id int64) (*Operation, error) {
	var op Operation
	var createdAtStr string

	err := DB.QueryRow(
		"SELECT id, type, cost, status, created_at FROM operations WHERE id = ?",
		id,
	).Scan(&op.ID, &op.Type, &op.Cost, &op.Active, &createdAtStr)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOperationNotFound
		}
		return nil, err
	}

	op.CreatedAt = parseTimestamp(createdAtStr)

	return &op, nil
}

// UpdateOperationCost меняет цену операции в каталоге
func UpdateOperationCost(id int64, cost int) error {
	result, err := DB.Exec("UPDATE operations SET cost = ? WHERE id = ?", cost, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOperationNotFound
	}

	return nil
}

// ListOperations возвращает весь каталог операций, упорядоченный по ID
func ListOperations() ([]Operation, error) {
	rows, err := DB.Query("SELECT id, type, cost, status, created_at FROM operations ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var operations []Operation
	for rows.Next() {
		var op Operation
		var createdAtStr string

		if err := rows.Scan(&op.ID, &op.Type, &op.Cost, &op.Active, &createdAtStr); err != nil {
			return nil, err
		}

		op.CreatedAt = parseTimestamp(createdAtStr)
		operations = append(operations, op)
	}

	return operations, rows.Err()
}
