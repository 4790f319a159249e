package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"credit-calculator/internal/auth"
	"credit-calculator/internal/config"
	"credit-calculator/internal/db"
	"credit-calculator/internal/ledger"
	"credit-calculator/internal/logger"
	"credit-calculator/internal/randomorg"

	"github.com/gorilla/mux"
)

func main() {
	config.InitConfig(".env")
	logger.InitServerLogger()
	defer logger.CloseLogger()

	// Инициализируем базу данных
	err := db.InitDB("internal/db/")
	if err != nil {
		logger.ERROR.Fatalf("Ошибка инициализации базы данных: %v", err)
	}
	defer db.CloseDB()

	// Координатор выполнения с внешним генератором случайных строк
	ledger.InitCoordinator(randomorg.NewClient())

	// Настраиваем HTTP сервер
	r := mux.NewRouter()

	// Публичные эндпоинты для аутентификации
	r.HandleFunc("/api/v1/register", auth.Register).Methods("POST")
	r.HandleFunc("/api/v1/login", auth.Login).Methods("POST")

	// Защищенные маршруты для пользовательского API
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(auth.AuthMiddleware)
	protected.HandleFunc("/records", ledger.HandleListRecords).Methods("GET")
	protected.HandleFunc("/records", ledger.HandleCalculate).Methods("POST")
	protected.HandleFunc("/records/{id}", ledger.HandleDeleteRecord).Methods("DELETE")
	protected.HandleFunc("/operations", ledger.HandleListOperations).Methods("GET")

	// Запускаем HTTP сервер в отдельной горутине
	httpServer := &http.Server{
		Addr:    ":" + config.AppConfig.ServerPort,
		Handler: r,
	}

	go func() {
		logger.INFO.Println("HTTP сервер запущен на порту " + config.AppConfig.ServerPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ERROR.Fatalf("Ошибка запуска HTTP сервера: %v", err)
		}
	}()

	// Ожидаем сигнал для остановки
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.INFO.Println("Получен сигнал остановки, завершаем работу сервера...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.ERROR.Printf("Ошибка остановки HTTP сервера: %v", err)
	}

	logger.INFO.Println("Сервер остановлен")
}
