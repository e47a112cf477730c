package logging

// Leveled logging for binwriter. Console output goes to stderr because
// stdout may be the generated output.

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// ParseLogLevel maps a level name to a LogLevel.
func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent", "quiet":
		return LogLevelSilent, nil
	case "error":
		return LogLevelError, nil
	case "", "info":
		return LogLevelInfo, nil
	case "verbose":
		return LogLevelVerbose, nil
	case "debug":
		return LogLevelDebug, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger provides leveled logging
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	format  string
	file    *os.File
	fileLog *log.Logger
	console *log.Logger
}

// NewLoggerWithOptions creates a logger. format selects how logFile lines are
// written: "text" (the default) or "json"; the console is always text.
func NewLoggerWithOptions(level LogLevel, logFile, format string) (*Logger, error) {
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
	l := &Logger{
		level:   level,
		format:  format,
		console: log.New(os.Stderr, "", 0),
	}

	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		if format == "json" {
			l.fileLog = log.New(file, "", 0)
		} else {
			l.fileLog = log.New(file, "", log.LstdFlags)
		}
	}

	return l, nil
}

// SetConsole redirects console output.
func (l *Logger) SetConsole(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = log.New(w, "", 0)
}

// Close closes the logger and flushes all data
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level >= LogLevelError {
		l.write("error", fmt.Sprintf(format, v...))
	}
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level >= LogLevelInfo {
		l.write("info", fmt.Sprintf(format, v...))
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.level >= LogLevelVerbose {
		l.write("verbose", fmt.Sprintf(format, v...))
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level >= LogLevelDebug {
		l.write("debug", fmt.Sprintf(format, v...))
	}
}

func (l *Logger) write(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := strings.ToUpper(level) + ": " + msg

	if l.fileLog != nil {
		if l.format == "json" {
			entry, err := json.Marshal(struct {
				Time    string `json:"time"`
				Level   string `json:"level"`
				Message string `json:"message"`
			}{time.Now().Format(time.RFC3339), level, msg})
			if err == nil {
				l.fileLog.Println(string(entry))
			}
		} else {
			l.fileLog.Println(line)
		}
	}

	// Errors always reach the console; everything else only at verbose and above.
	if level == "error" || l.level >= LogLevelVerbose {
		l.console.Println(line)
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogRequest logs the output target, size and mode of a generation run.
// These lines are info level, so the console shows them only at verbose;
// the run summary panel carries the same fields unless output is quiet.
func (l *Logger) LogRequest(filename string, size int64, mode string, ignored []string) {
	l.Info("Filename: %s", filename)
	l.Info("Size: %d", size)
	l.Info("Mode: %s", mode)
	if len(ignored) > 0 {
		l.Verbose("Ignoring for this mode: %s", strings.Join(ignored, ", "))
	}
}

// LogHex logs hex data (for debug level)
func (l *Logger) LogHex(label string, data []byte) {
	if l.level < LogLevelDebug {
		return
	}
	var formatted strings.Builder
	for i, b := range data {
		if i > 0 {
			formatted.WriteByte(' ')
		}
		fmt.Fprintf(&formatted, "%02x", b)
	}
	l.Debug("%s: %s", label, formatted.String())
}
