package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"credit-calculator/internal/auth"
	"credit-calculator/internal/calculator"
	"credit-calculator/internal/db"
	"credit-calculator/internal/logger"
	"credit-calculator/internal/randomorg"
)

// CalculateRequest представляет тело POST /api/v1/records.
// Операнды принимаются как interface{}, чтобы отличать отсутствующие
// и нечисловые значения от нулевых.
type CalculateRequest struct {
	Username  string      `json:"username"`
	Operation int64       `json:"operation"`
	Num1      interface{} `json:"num1"`
	Num2      interface{} `json:"num2"`
}

// CalculateResponse представляет успешный ответ с результатом операции
type CalculateResponse struct {
	Result interface{} `json:"result"`
}

// OperationSummary представляет элемент списка каталога операций
type OperationSummary struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// HandleCalculate выполняет операцию для пользователя и создает запись аудита
// (POST /api/v1/records)
func HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var request CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, "Ошибка при разборе JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	logger.LogINFO(fmt.Sprintf("Received calculate request: user=%q operation=%d", request.Username, request.Operation))

	// JSON-числа декодируются в float64; все остальное - ошибка валидации
	num1, ok1 := request.Num1.(float64)
	num2, ok2 := request.Num2.(float64)
	if !ok1 || !ok2 {
		writeError(w, ErrNotNumeric.Error(), http.StatusBadRequest)
		return
	}

	result, err := DefaultCoordinator.Execute(ExecuteRequest{
		Username:    request.Username,
		OperationID: request.Operation,
		Num1:        num1,
		Num2:        num2,
	})
	if err != nil {
		writeError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, CalculateResponse{Result: result}, http.StatusOK)
}

// HandleListRecords возвращает активные записи аудита вызывающего пользователя
// (GET /api/v1/records)
func HandleListRecords(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.RequireAuth(r)
	if err != nil {
		writeError(w, "Не авторизован", http.StatusUnauthorized)
		return
	}

	logger.LogINFO(fmt.Sprintf("Received list records request: user=%d", userID))

	records, err := db.ListActiveRecordsByUser(userID)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, records, http.StatusOK)
}

// HandleDeleteRecord помечает запись аудита как удаленную
// (DELETE /api/v1/records/{id})
func HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.RequireAuth(r)
	if err != nil {
		writeError(w, "Не авторизован", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	idStr := vars["id"] // получаем параметр id из URL

	logger.LogINFO(fmt.Sprintf("Received delete record request: id=%s user=%d", idStr, userID))

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, ErrRecordNotFound.Error(), http.StatusBadRequest)
		return
	}

	if err := db.SoftDeleteRecord(id, userID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			writeError(w, ErrRecordNotFound.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, messageResponse{Message: "Record deleted"}, http.StatusOK)
}

// HandleListOperations возвращает каталог операций (GET /api/v1/operations)
func HandleListOperations(w http.ResponseWriter, r *http.Request) {
	logger.LogINFO("Received list operations request")

	operations, err := db.ListOperations()
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := make([]OperationSummary, len(operations))
	for i, operation := range operations {
		summaries[i] = OperationSummary{
			ID:   operation.ID,
			Type: operation.Type,
		}
	}

	writeJSON(w, summaries, http.StatusOK)
}

// statusForError сопоставляет ошибку координатора с HTTP-статусом
func statusForError(err error) int {
	var unsupported *UnsupportedOperationError

	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrOperationNotFound),
		errors.Is(err, randomorg.ErrServiceUnavailable):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrNotNumeric),
		errors.Is(err, ErrRandomStringArgs),
		errors.Is(err, calculator.ErrDivisionByZero),
		errors.Is(err, calculator.ErrNegativeSquareRoot),
		errors.Is(err, calculator.ErrInsufficientBalance),
		errors.As(err, &unsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, body interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.LogERROR("Failed to encode response: " + err.Error())
	}
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, errorResponse{Error: message}, status)
}
