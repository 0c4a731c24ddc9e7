package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
)

func init() {
	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "logs"
	}

	out := os.Stderr
	if err := os.MkdirAll(dir, 0755); err == nil {
		name := fmt.Sprintf("%s/desk-%s.log", dir, time.Now().Format("2006-01-02"))
		if logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666); err == nil {
			out = logFile
		}
	}

	InfoLogger = log.New(out, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(out, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// LogInfo writes an info line to the daily log file
func LogInfo(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// LogError writes an error line to the daily log file
func LogError(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}
