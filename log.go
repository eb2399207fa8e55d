//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// logger carries the package's own diagnostics: unknown enum codes coming
// back from newer libinput releases, lifecycle anomalies, and the like.
// These diagnostics are instrumentation only; no return value depends on
// them.
var (
	loggerMu sync.RWMutex
	logger   = newDefaultLogger()
)

func newDefaultLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{Prefix: "inputgo"})

	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		l.SetLevel(log.DebugLevel)
	case "INFO":
		l.SetLevel(log.InfoLevel)
	case "ERROR":
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.WarnLevel)
	}
	return l
}

// SetLogger replaces the package logger. Pass nil to silence diagnostics.
func SetLogger(l *log.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func warnf(format string, args ...interface{}) {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		l.Warnf(format, args...)
	}
}
