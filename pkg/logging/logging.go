package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level controls which messages are emitted.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var (
	mu       sync.Mutex
	minLevel = LevelInfo
	logFile  *os.File
)

// ParseLevel maps a config string (DEBUG/INFO/ERROR) to a Level. Unknown
// values fall back to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// SetLevel sets the minimum level that will be emitted.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

// EnableFile additionally mirrors messages into a daily log file under dir
// (sentinel_aegis_YYYYMMDD.log). Failure to open the file is returned but
// console logging keeps working.
func EnableFile(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("sentinel_aegis_%s.log", time.Now().Format("20060102")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

func emit(l Level, tag, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLevel {
		return
	}
	line := fmt.Sprintf("%s [%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), tag, fmt.Sprintf(format, args...))
	fmt.Print(line)
	if logFile != nil {
		logFile.WriteString(line)
	}
}

// Debugf prints messages only when the debug level is enabled.
func Debugf(format string, args ...interface{}) {
	emit(LevelDebug, "DEBUG", format, args...)
}

// Infof prints informational messages.
func Infof(format string, args ...interface{}) {
	emit(LevelInfo, "INFO", format, args...)
}

// Errorf prints error messages.
func Errorf(format string, args ...interface{}) {
	emit(LevelError, "ERROR", format, args...)
}
