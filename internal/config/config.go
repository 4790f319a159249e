package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort           string
	ServerLogFilePath    string
	DBPath               string
	JWTSecret            string
	JWTExpirationMinutes int
	DefaultUserBalance   int
	RandomOrgBaseURL     string
	RandomOrgTimeout     time.Duration
	LookupCacheTTL       time.Duration
}

var AppConfig *Config

func InitConfig(configPath string) {
	AppConfig = &Config{}

	if _, err := os.Stat(configPath); err == nil {
		err := godotenv.Load(configPath)
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	} else {
		log.Println("/.env not found")
		// current path
		log.Println(os.Getwd())
	}

	if os.Getenv("SERVER_PORT") != "" {
		AppConfig.ServerPort = os.Getenv("SERVER_PORT")
	} else {
		log.Println("SERVER_PORT not set. Auto set to 8080")
		AppConfig.ServerPort = "8080"
	}

	if os.Getenv("SERVER_LOG_FILE_PATH") != "" {
		AppConfig.ServerLogFilePath = os.Getenv("SERVER_LOG_FILE_PATH")
	} else {
		log.Println("SERVER_LOG_FILE_PATH not set. Auto set to logs/server.log")
		AppConfig.ServerLogFilePath = "logs/server.log"
	}

	if os.Getenv("DB_PATH") != "" {
		AppConfig.DBPath = os.Getenv("DB_PATH")
	} else {
		log.Println("DB_PATH not set. Auto set to data/calculator.db")
		AppConfig.DBPath = "data/calculator.db"
	}

	if os.Getenv("JWT_SECRET") != "" {
		AppConfig.JWTSecret = os.Getenv("JWT_SECRET")
	} else {
		log.Fatal("JWT_SECRET not set")
	}

	if os.Getenv("JWT_EXPIRATION_MINUTES") != "" {
		value, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_MINUTES"))
		if err != nil {
			log.Fatal("JWT_EXPIRATION_MINUTES not a number")
		}
		AppConfig.JWTExpirationMinutes = value
	} else {
		log.Println("JWT_EXPIRATION_MINUTES not set. Auto set to 60")
		AppConfig.JWTExpirationMinutes = 60
	}

	if os.Getenv("DEFAULT_USER_BALANCE") != "" {
		value, err := strconv.Atoi(os.Getenv("DEFAULT_USER_BALANCE"))
		if err != nil {
			log.Fatal("DEFAULT_USER_BALANCE not a number")
		}
		AppConfig.DefaultUserBalance = value
	} else {
		log.Println("DEFAULT_USER_BALANCE not set. Auto set to 200")
		AppConfig.DefaultUserBalance = 200
	}

	if os.Getenv("RANDOM_ORG_BASE_URL") != "" {
		AppConfig.RandomOrgBaseURL = os.Getenv("RANDOM_ORG_BASE_URL")
	} else {
		log.Println("RANDOM_ORG_BASE_URL not set. Auto set to https://www.random.org")
		AppConfig.RandomOrgBaseURL = "https://www.random.org"
	}

	if os.Getenv("RANDOM_ORG_TIMEOUT_MS") != "" {
		value, err := strconv.Atoi(os.Getenv("RANDOM_ORG_TIMEOUT_MS"))
		if err != nil {
			log.Println("RANDOM_ORG_TIMEOUT_MS not a number. Auto set to 5000ms")
			AppConfig.RandomOrgTimeout = 5000 * time.Millisecond
		} else {
			AppConfig.RandomOrgTimeout = time.Duration(value) * time.Millisecond
		}
	} else {
		log.Println("RANDOM_ORG_TIMEOUT_MS not set. Auto set to 5000ms")
		AppConfig.RandomOrgTimeout = 5000 * time.Millisecond
	}

	if os.Getenv("LOOKUP_CACHE_TTL_MS") != "" {
		value, err := strconv.Atoi(os.Getenv("LOOKUP_CACHE_TTL_MS"))
		if err != nil {
			log.Println("LOOKUP_CACHE_TTL_MS not a number. Auto set to 1000ms")
			AppConfig.LookupCacheTTL = 1000 * time.Millisecond
		} else {
			AppConfig.LookupCacheTTL = time.Duration(value) * time.Millisecond
		}
	} else {
		log.Println("LOOKUP_CACHE_TTL_MS not set. Auto set to 1000ms")
		AppConfig.LookupCacheTTL = 1000 * time.Millisecond
	}
}

// InitTestConfig заполняет конфигурацию значениями для тестов без чтения .env
func InitTestConfig() {
	AppConfig = &Config{
		ServerPort:           "8080",
		DBPath:               ":memory:",
		JWTSecret:            "test-secret-key",
		JWTExpirationMinutes: 60,
		DefaultUserBalance:   200,
		RandomOrgBaseURL:     "https://www.random.org",
		RandomOrgTimeout:     5000 * time.Millisecond,
		LookupCacheTTL:       1000 * time.Millisecond,
	}
}
