package ledger

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"credit-calculator/internal/calculator"
	"credit-calculator/internal/config"
	"credit-calculator/internal/db"
	"credit-calculator/internal/logger"
)

// Coordinator проводит один запрос на выполнение операции от валидации
// до атомарной фиксации: резолв пользователя и операции, проверка баланса,
// вычисление, списание и запись аудита.
type Coordinator struct {
	cache *LookupCache
	gen   calculator.StringGenerator
}

// DefaultCoordinator - экземпляр координатора, используемый HTTP-обработчиками
var DefaultCoordinator *Coordinator

// NewCoordinator создает координатор с кешем резолва и внешним генератором строк
func NewCoordinator(cache *LookupCache, gen calculator.StringGenerator) *Coordinator {
	return &Coordinator{
		cache: cache,
		gen:   gen,
	}
}

// InitCoordinator инициализирует DefaultCoordinator
func InitCoordinator(gen calculator.StringGenerator) {
	DefaultCoordinator = NewCoordinator(
		NewLookupCache(config.AppConfig.LookupCacheTTL),
		gen,
	)
}

// Execute выполняет запрос целиком. Любая ошибка до фиксации оставляет
// состояние нетронутым: ни списания, ни записи аудита не происходит.
func (c *Coordinator) Execute(req ExecuteRequest) (interface{}, error) {
	// Валидация: без имени пользователя или ID операции делать нечего
	if req.Username == "" || req.OperationID == 0 {
		return nil, ErrMissingFields
	}

	// Мутирующий запрос меняет баланс - сбрасываем кеш резолва
	c.cache.Invalidate()

	user, err := c.resolveUser(req.Username)
	if err != nil {
		return nil, err
	}

	operation, err := c.resolveOperation(req.OperationID)
	if err != nil {
		return nil, err
	}

	operator, err := calculator.ParseOperator(operation.Type)
	if err != nil {
		return nil, &UnsupportedOperationError{Type: operation.Type}
	}

	// Генератору строк нужны целые количество и длина
	if operator == calculator.RandomString && (!isWholeNumber(req.Num1) || !isWholeNumber(req.Num2)) {
		return nil, ErrRandomStringArgs
	}

	// Деление на ноль проверяется до общей проверки баланса,
	// чтобы клиент получил конкретную ошибку
	if operator == calculator.Division && req.Num2 == 0 {
		return nil, calculator.ErrDivisionByZero
	}

	if err := calculator.CheckBalance(user.Balance, operation.Cost); err != nil {
		return nil, err
	}

	// Вычисление. Для RandomString это внешний вызов - последний шаг,
	// который может упасть до фиксации: его отказ не трогает баланс.
	result, err := operator.Eval(req.Num1, req.Num2, c.gen)
	if err != nil {
		return nil, err
	}

	record, err := db.DebitAndRecord(user.ID, operation.ID, operation.Cost, formatResult(result))
	if err != nil {
		if errors.Is(err, db.ErrInsufficientFunds) {
			// Конкурентный запрос успел списать баланс раньше нас
			return nil, calculator.ErrInsufficientBalance
		}
		return nil, err
	}

	logger.LogINFO(fmt.Sprintf(
		"Executed operation %q for user %q: amount=%d, balance=%d, record=%d",
		operation.Type, user.Username, record.Amount, record.UserBalance, record.ID,
	))

	return result, nil
}

// resolveUser ищет активного пользователя по имени, с учетом кеша
func (c *Coordinator) resolveUser(username string) (*db.User, error) {
	if user, ok := c.cache.GetUser(username); ok {
		return user, nil
	}

	user, err := db.GetActiveUserByUsername(username)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	c.cache.SetUser(user)
	return user, nil
}

// resolveOperation ищет операцию каталога по ID, с учетом кеша
func (c *Coordinator) resolveOperation(id int64) (*db.Operation, error) {
	if operation, ok := c.cache.GetOperation(id); ok {
		return operation, nil
	}

	operation, err := db.GetOperationByID(id)
	if err != nil {
		if errors.Is(err, db.ErrOperationNotFound) {
			return nil, ErrOperationNotFound
		}
		return nil, err
	}

	c.cache.SetOperation(operation)
	return operation, nil
}

// formatResult приводит результат вычисления к строке для записи аудита
func formatResult(result interface{}) string {
	switch v := result.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func isWholeNumber(v float64) bool {
	return v == math.Trunc(v)
}
