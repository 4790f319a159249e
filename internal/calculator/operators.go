package calculator

import (
	"errors"
	"math"
)

// Ошибки вычислений. Тексты - то, что видит клиент в поле error.
var (
	ErrDivisionByZero       = errors.New("Division by zero not allowed")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrNegativeSquareRoot   = errors.New("Square root of a negative number is not allowed")
)

// Operator - закрытое перечисление видов операций.
// Неизвестное имя типа из каталога не проходит ParseOperator,
// поэтому Eval всегда работает с известным вариантом.
type Operator int

const (
	Addition Operator = iota
	Subtraction
	Multiplication
	Division
	SquareRoot
	RandomString
)

// Имена типов операций в каталоге
const (
	TypeAddition       = "Addition"
	TypeSubtraction    = "Subtraction"
	TypeMultiplication = "Multiplication"
	TypeDivision       = "Division"
	TypeSquareRoot     = "Square root"
	TypeRandomString   = "Random string"
)

// StringGenerator - внешний генератор случайных строк.
// Вынесен в интерфейс, чтобы в тестах подставлять фальшивую реализацию.
type StringGenerator interface {
	Generate(count, length int) (string, error)
}

// ParseOperator сопоставляет имя типа операции из каталога с видом операции
func ParseOperator(typeName string) (Operator, error) {
	switch typeName {
	case TypeAddition:
		return Addition, nil
	case TypeSubtraction:
		return Subtraction, nil
	case TypeMultiplication:
		return Multiplication, nil
	case TypeDivision:
		return Division, nil
	case TypeSquareRoot:
		return SquareRoot, nil
	case TypeRandomString:
		return RandomString, nil
	default:
		return 0, ErrUnsupportedOperation
	}
}

// String возвращает имя типа операции для вида операции
func (op Operator) String() string {
	switch op {
	case Addition:
		return TypeAddition
	case Subtraction:
		return TypeSubtraction
	case Multiplication:
		return TypeMultiplication
	case Division:
		return TypeDivision
	case SquareRoot:
		return TypeSquareRoot
	case RandomString:
		return TypeRandomString
	default:
		return "unknown"
	}
}

// Eval выполняет операцию над двумя операндами.
// Первые пять видов - чистые вычисления без побочных эффектов.
// RandomString делегирует внешнему генератору: a - количество строк,
// b - длина каждой строки.
func (op Operator) Eval(a, b float64, gen StringGenerator) (interface{}, error) {
	switch op {
	case Addition:
		return a + b, nil
	case Subtraction:
		return a - b, nil
	case Multiplication:
		return a * b, nil
	case Division:
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		return a / b, nil
	case SquareRoot:
		// b игнорируется, результат округляется до двух знаков
		if a < 0 {
			return nil, ErrNegativeSquareRoot
		}
		return math.Round(math.Sqrt(a)*100) / 100, nil
	case RandomString:
		return gen.Generate(int(a), int(b))
	default:
		return nil, ErrUnsupportedOperation
	}
}
