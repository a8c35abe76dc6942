package config

import (
	"net/http"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logrusInstance *logrus.Logger
	logrusOnce     sync.Once
)

func GetLogrusInstance() *logrus.Logger {
	logrusOnce.Do(func() {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
		logrusInstance.SetOutput(os.Stdout)

		level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil {
			level = logrus.InfoLevel
		}
		logrusInstance.SetLevel(level)
	})
	return logrusInstance
}

// PrintLogInfo records the outcome of a handler. A nil actor is logged as anonymous.
func PrintLogInfo(actor *string, statusCode int, functionName string) {
	user := "anonymous"
	if actor != nil && *actor != "" {
		user = *actor
	}

	entry := GetLogrusInstance().WithFields(logrus.Fields{
		"actor":    user,
		"function": functionName,
		"status":   statusCode,
		"text":     http.StatusText(statusCode),
	})

	switch {
	case statusCode >= http.StatusInternalServerError:
		entry.Error("handler finished")
	case statusCode >= http.StatusBadRequest:
		entry.Warn("handler finished")
	default:
		entry.Info("handler finished")
	}
}
