package db

import (
	"testing"
)

// TestDebitAndRecord проверяет атомарное списание с записью аудита
func TestDebitAndRecord(t *testing.T) {
	InitTest(t)

	defer CleanupDB()

	user, err := CreateUser("testuser_debit", "testpassword")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	// Списываем стоимость операции Addition (id=1, cost=10)
	record, err := DebitAndRecord(user.ID, 1, 10, "4")
	if err != nil {
		t.Fatalf("Failed to debit and record: %v", err)
	}

	if record.Amount != 10 {
		t.Errorf("Expected amount 10, got %d", record.Amount)
	}

	// user_balance - снимок баланса после списания
	if record.UserBalance != 190 {
		t.Errorf("Expected user balance 190, got %d", record.UserBalance)
	}

	if record.OperationResponse != "4" {
		t.Errorf("Expected operation response '4', got '%s'", record.OperationResponse)
	}

	if !record.Active {
		t.Errorf("Expected new record to be active")
	}

	// Баланс пользователя действительно уменьшился
	updatedUser, err := GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}

	if updatedUser.Balance != 190 {
		t.Errorf("Expected balance 190 after debit, got %d", updatedUser.Balance)
	}

	// Запись читается обратно
	stored, err := GetRecordByID(record.ID)
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}

	if stored.UserBalance != 190 || stored.Amount != 10 {
		t.Errorf("Stored record mismatch: amount=%d, user_balance=%d", stored.Amount, stored.UserBalance)
	}
}

// TestDebitAndRecordInsufficientFunds проверяет, что при нехватке кредитов
// ни списания, ни записи не происходит
func TestDebitAndRecordInsufficientFunds(t *testing.T) {
	InitTest(t)

	defer CleanupDB()

	user, err := CreateUser("testuser_poor", "testpassword")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	_, err = DebitAndRecord(user.ID, 1, 210, "4")
	if err != ErrInsufficientFunds {
		t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
	}

	// Баланс не изменился
	updatedUser, err := GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}

	if updatedUser.Balance != 200 {
		t.Errorf("Expected balance unchanged at 200, got %d", updatedUser.Balance)
	}

	// Записей не появилось
	records, err := ListActiveRecordsByUser(user.ID)
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}

	if len(records) != 0 {
		t.Errorf("Expected no records after rejected debit, got %d", len(records))
	}
}

// TestDebitDrainsBalanceExactly проверяет, что баланс не уходит в минус
// при последовательных списаниях
func TestDebitDrainsBalanceExactly(t *testing.T) {
	InitTest(t)

	defer CleanupDB()

	user, err := CreateUser("testuser_drain", "testpassword")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	// 20 списаний по 10 кредитов опустошают баланс ровно до нуля
	for i := 0; i < 20; i++ {
		if _, err := DebitAndRecord(user.ID, 1, 10, "1"); err != nil {
			t.Fatalf("Debit %d failed: %v", i, err)
		}
	}

	updatedUser, err := GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}

	if updatedUser.Balance != 0 {
		t.Errorf("Expected balance 0 after draining, got %d", updatedUser.Balance)
	}

	// Следующее списание отклоняется
	if _, err := DebitAndRecord(user.ID, 1, 10, "1"); err != ErrInsufficientFunds {
		t.Errorf("Expected ErrInsufficientFunds on drained balance, got %v", err)
	}
}

// TestListActiveRecordsByUser проверяет список записей пользователя
func TestListActiveRecordsByUser(t *testing.T) {
	InitTest(t)

	defer CleanupDB()

	user, err := CreateUser("testuser_list", "testpassword")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	other, err := CreateUser("testuser_other", "testpassword")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	first, err := DebitAndRecord(user.ID, 1, 10, "4")
	if err != nil {
		t.Fatalf("Failed to debit and record: %v", err)
	}

	second, err := DebitAndRecord(user.ID, 5, 50, "1.41")
	if err != nil {
		t.Fatalf("Failed to debit and record: %v", err)
	}

	// Чужая запись не должна попасть в список
	if _, err := DebitAndRecord(other.ID, 1, 10, "8"); err != nil {
		t.Fatalf("Failed to debit and record: %v", err)
	}

	records, err := ListActiveRecordsByUser(user.ID)
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	// Новые записи первыми
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Errorf("Expected records ordered newest first, got %d, %d", records[0].ID, records[1].ID)
	}

	// Имя типа операции подтянуто из каталога
	if records[0].OperationType != "Square root" {
		t.Errorf("Expected operation type 'Square root', got '%s'", records[0].OperationType)
	}

	if records[1].OperationType != "Addition" {
		t.Errorf("Expected operation type 'Addition', got '%s'", records[1].OperationType)
	}
}

// TestSoftDeleteRecord проверяет мягкое удаление записи
func TestSoftDeleteRecord(t *testing.T) {
	InitTest(t)

	defer CleanupDB()

	user, err := CreateUser("testuser_delete", "testpassword")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	other, err := CreateUser("testuser_delete_other", "testpassword")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	record, err := DebitAndRecord(user.ID, 1, 10, "4")
	if err != nil {
		t.Fatalf("Failed to debit and record: %v", err)
	}

	// Чужую запись удалить нельзя
	if err := SoftDeleteRecord(record.ID, other.ID); err != ErrRecordNotFound {
		t.Errorf("Expected ErrRecordNotFound for foreign record, got %v", err)
	}

	// Удаляем свою запись
	if err := SoftDeleteRecord(record.ID, user.ID); err != nil {
		t.Fatalf("Failed to soft delete record: %v", err)
	}

	// Запись исчезла из списка
	records, err := ListActiveRecordsByUser(user.ID)
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}

	if len(records) != 0 {
		t.Errorf("Expected no active records after delete, got %d", len(records))
	}

	// Но физически строка осталась - история аудита сохраняется
	stored, err := GetRecordByID(record.ID)
	if err != nil {
		t.Fatalf("Expected record row to survive soft delete, got %v", err)
	}

	if stored.Active {
		t.Errorf("Expected record to be inactive after soft delete")
	}

	// Повторное удаление - ошибка, а не no-op
	if err := SoftDeleteRecord(record.ID, user.ID); err != ErrRecordNotFound {
		t.Errorf("Expected ErrRecordNotFound on repeated delete, got %v", err)
	}

	// Несуществующая запись
	if err := SoftDeleteRecord(999999, user.ID); err != ErrRecordNotFound {
		t.Errorf("Expected ErrRecordNotFound for unknown record, got %v", err)
	}
}

// TestRecordAmountSnapshotsCost проверяет, что amount записи - снимок цены
// на момент выполнения, а не живая ссылка на каталог
func TestRecordAmountSnapshotsCost(t *testing.T) {
	InitTest(t)

	defer CleanupDB()

	user, err := CreateUser("testuser_snapshot", "testpassword")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	record, err := DebitAndRecord(user.ID, 1, 10, "4")
	if err != nil {
		t.Fatalf("Failed to debit and record: %v", err)
	}

	// Меняем цену операции задним числом
	if err := UpdateOperationCost(1, 99); err != nil {
		t.Fatalf("Failed to update cost: %v", err)
	}

	stored, err := GetRecordByID(record.ID)
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}

	if stored.Amount != 10 {
		t.Errorf("Expected recorded amount to stay 10 after cost change, got %d", stored.Amount)
	}
}
