package logger

import (
	"log"
	"os"
	"sync"

	"credit-calculator/internal/config"
)

var (
	fileMutex sync.Mutex
	INFO      *log.Logger
	ERROR     *log.Logger
	logFile   *os.File
)

func LogINFO(s string) {
	if INFO == nil {
		return
	}
	INFO.Println(s)
}

func LogERROR(s string) {
	if ERROR == nil {
		return
	}
	ERROR.Println(s)
}

type lockedFile struct {
	file *os.File
}

func (lf *lockedFile) Write(p []byte) (n int, err error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()
	return lf.file.Write(p)
}

func InitServerLogger() {
	config := config.AppConfig

	if config.ServerLogFilePath == "" {
		log.Println("server log file path not set. We will use standard output")
		INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
		ERROR = log.New(os.Stdout, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
		return
	}

	logFile, err := os.OpenFile(config.ServerLogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Printf("Failed to open log file: %v. We will use standard output", err)
		INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
		ERROR = log.New(os.Stdout, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
		return
	}

	writer := &lockedFile{file: logFile}
	INFO = log.New(writer, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ERROR = log.New(writer, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
