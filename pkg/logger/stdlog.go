package logger

import (
	"log"
	"strings"
)

// loggerWriter forwards writes to a Logger's Info level.
type loggerWriter struct {
	log Logger
}

func (w *loggerWriter) Write(p []byte) (int, error) {
	w.log.Info("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// ToStdLogger adapts a Logger to a stdlib *log.Logger for components
// that only accept the standard interface. Output goes through Info.
func ToStdLogger(l Logger) *log.Logger {
	return log.New(&loggerWriter{log: l}, "", 0)
}
