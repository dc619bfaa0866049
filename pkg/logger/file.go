package logger

import (
	"log"
	"os"
)

// FileLogger appends prefixed log lines to a file and closes it on
// Close.
type FileLogger struct {
	*StandardLogger
	f *os.File
}

// NewFileLogger opens (or creates) the file at path for appending.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		StandardLogger: NewStandardLogger(log.New(f, "", log.LstdFlags)),
		f:              f,
	}, nil
}

// Close closes the underlying file.
func (l *FileLogger) Close() error {
	return l.f.Close()
}

var _ Logger = (*FileLogger)(nil)
