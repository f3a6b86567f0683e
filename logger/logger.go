package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	projectLogger *logrus.Logger
	loggerLock    sync.Mutex
)

// GetProjectLogger returns the logger shared by every package in the module. It is created on first use.
func GetProjectLogger() *logrus.Logger {
	loggerLock.Lock()
	defer loggerLock.Unlock()

	if projectLogger == nil {
		projectLogger = NewLogger(logrus.InfoLevel)
	}
	return projectLogger
}

// SetProjectLogger replaces the shared logger, e.g. to redirect output in a host application.
func SetProjectLogger(l *logrus.Logger) {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	projectLogger = l
}

// NewLogger creates a text logger writing to stderr at the given level.
func NewLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Level = level
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}
	return l
}
