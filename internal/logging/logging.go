package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warning": LevelWarning,
	"warn":    LevelWarning,
	"error":   LevelError,
	"none":    LevelNone,
	"off":     LevelNone,
}

var (
	debugLog   *log.Logger
	infoLog    *log.Logger
	warningLog *log.Logger
	errorLog   *log.Logger

	out   io.Writer = os.Stderr
	level           = LevelWarning
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debugLog = log.New(io.Discard, "D ", flags)
	infoLog = log.New(io.Discard, "I ", flags)
	warningLog = log.New(io.Discard, "W ", flags)
	errorLog = log.New(io.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// ParseLevel looks up a level by its name (case insensitive).
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelNone, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// SetOutput redirects all enabled loggers to w.
// The terminal viewer uses this to keep log lines off the screen.
func SetOutput(w io.Writer) {
	out = w
	SetLevel(level)
}

func SetLevel(l Level) {
	level = l
	for _, entry := range []struct {
		logger *log.Logger
		min    Level
	}{
		{debugLog, LevelDebug},
		{infoLog, LevelInfo},
		{warningLog, LevelWarning},
		{errorLog, LevelError},
	} {
		if l <= entry.min {
			entry.logger.SetOutput(out)
		} else {
			entry.logger.SetOutput(io.Discard)
		}
	}
}

func Debug(msg string, v ...interface{}) {
	debugLog.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	infoLog.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warningLog.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	errorLog.Printf(msg, v...)
}
