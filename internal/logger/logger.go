package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes leveled lines. Standard output is left to command results,
// so every level goes to the same writer (stderr by default).
type Logger struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	debugLog *log.Logger
	verbose  bool
}

func NewLogger(verbose bool) *Logger {
	return NewLoggerTo(os.Stderr, verbose)
}

// NewLoggerTo is NewLogger with an explicit destination.
func NewLoggerTo(w io.Writer, verbose bool) *Logger {
	return &Logger{
		errorLog: log.New(w, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile),
		infoLog:  log.New(w, "INFO\t", log.Ldate|log.Ltime),
		debugLog: log.New(w, "DEBUG\t", log.Ldate|log.Ltime|log.Lmicroseconds),
		verbose:  verbose,
	}
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.errorLog.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.infoLog.Printf(format, v...)
}

// Debug is dropped unless the logger is verbose.
func (l *Logger) Debug(format string, v ...interface{}) {
	if !l.verbose {
		return
	}
	l.debugLog.Printf(format, v...)
}
