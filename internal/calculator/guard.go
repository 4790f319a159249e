package calculator

import "errors"

var (
	ErrInsufficientBalance = errors.New("Insufficient balance")
)

// CheckBalance решает, хватает ли пользователю кредитов на операцию.
// Проверка выполняется до вычисления и до любых изменений состояния:
// отклоненный запрос не оставляет следов.
func CheckBalance(balance, cost int) error {
	if balance < cost {
		return ErrInsufficientBalance
	}
	return nil
}
