package ledger

import (
	"errors"
	"fmt"
)

// Ошибки координатора. Тексты - то, что видит клиент в поле error.
var (
	ErrMissingFields     = errors.New("User Id or Operation Id missing!")
	ErrNotNumeric        = errors.New("num1 and num2 must be integers or floats")
	ErrRandomStringArgs  = errors.New("For random string, num1 and num2 must be integers")
	ErrUserNotFound      = errors.New("User does not exits!")
	ErrOperationNotFound = errors.New("Operation does not exits!")
	ErrRecordNotFound    = errors.New("Not found record")
)

// UnsupportedOperationError возникает, когда в каталоге лежит операция
// с именем типа, которому не соответствует ни один вид вычисления
type UnsupportedOperationError struct {
	Type string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("Operation %q not supported.", e.Type)
}

// ExecuteRequest представляет один запрос на выполнение операции
type ExecuteRequest struct {
	Username    string
	OperationID int64
	Num1        float64
	Num2        float64
}
