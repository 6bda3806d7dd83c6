package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"time"

	"gossdb/settings"
)

// Leveled logging for the client internals. Connections and the pool tag
// their entries with a scope (the remote address, "pool") so interleaved
// traffic from many leased connections stays attributable.

type Level int

// log levels
const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
)

var levelTags = []string{"DEBUG", "INFO", "WARNING", "ERROR"}

// callerSkip reaches the line that called Debugf/Warnf/... through logf.
const callerSkip = 2

type Logger struct {
	out   *log.Logger
	level Level
	scope string
}

var DefaultLogger = NewStdoutLogger()

// NewStdoutLogger creates a logger which prints to stdout.
func NewStdoutLogger() *Logger {
	return &Logger{
		out:   log.New(os.Stdout, "", log.LstdFlags),
		level: DEBUG,
	}
}

// Setup points DefaultLogger at the configured dated log file in addition
// to stdout.
func Setup(conf *settings.LogConfig) error {
	fileName := fmt.Sprintf("%s-%s.%s",
		conf.Name,
		time.Now().Format(conf.TimeFormat),
		conf.Ext)
	logFile, err := openLogFile(fileName, conf.Path)
	if err != nil {
		return err
	}
	DefaultLogger = &Logger{
		out:   log.New(io.MultiWriter(os.Stdout, logFile), "", log.LstdFlags),
		level: DefaultLogger.level,
	}
	return nil
}

// SetLevel drops entries below level before they are formatted.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// WithScope returns a logger whose entries carry the given tag instead of
// a caller location. The connection layer scopes by remote address.
func (l *Logger) WithScope(scope string) *Logger {
	return &Logger{out: l.out, level: l.level, scope: scope}
}

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	tag := l.scope
	if tag == "" {
		if _, file, line, ok := runtime.Caller(callerSkip); ok {
			tag = fmt.Sprintf("%s:%d", filepath.Base(file), line)
		}
	}
	_ = l.out.Output(0, fmt.Sprintf("[%s][%s] %s", levelTags[level], tag, fmt.Sprintf(format, v...)))
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(DEBUG, format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.logf(INFO, format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.logf(WARNING, format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(ERROR, format, v...) }

// Debugf logs through DefaultLogger
func Debugf(format string, v ...interface{}) {
	DefaultLogger.logf(DEBUG, format, v...)
}

// Infof logs through DefaultLogger
func Infof(format string, v ...interface{}) {
	DefaultLogger.logf(INFO, format, v...)
}

// Warnf logs through DefaultLogger
func Warnf(format string, v ...interface{}) {
	DefaultLogger.logf(WARNING, format, v...)
}

// Errorf logs through DefaultLogger
func Errorf(format string, v ...interface{}) {
	DefaultLogger.logf(ERROR, format, v...)
}

func openLogFile(name, dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logger: mkdir %s: %w", dir, err)
	}
	f, err := os.OpenFile(path.Join(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open %s: %w", name, err)
	}
	return f, nil
}
