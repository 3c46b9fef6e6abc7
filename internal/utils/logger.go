package utils

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger struct {
	logger *log.Logger
	prefix string
	debug  bool
}

// NewLogger writes timestamped, levelled lines to out. Debug lines are
// dropped unless SITEMAP_DEBUG is set.
func NewLogger(out io.Writer) *Logger {
	return &Logger{
		logger: log.New(out, "", log.Ldate|log.Ltime|log.Lmicroseconds),
		debug:  os.Getenv("SITEMAP_DEBUG") != "",
	}
}

// NewStderrLogger keeps stdout free for the success message.
func NewStderrLogger() *Logger {
	return NewLogger(os.Stderr)
}

// With returns a logger that tags every line with key=value.
func (l *Logger) With(key string, value interface{}) *Logger {
	tagged := *l
	tagged.prefix = fmt.Sprintf("%s%s=%v ", l.prefix, key, value)
	return &tagged
}

func (l *Logger) SetDebug(enabled bool) {
	l.debug = enabled
}

func (l *Logger) LogInfo(format string, v ...interface{}) {
	l.log("INFO", format, v...)
}

func (l *Logger) LogWarn(format string, v ...interface{}) {
	l.log("WARN", format, v...)
}

func (l *Logger) LogError(format string, v ...interface{}) {
	l.log("ERROR", format, v...)
}

func (l *Logger) LogDebug(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	l.log("DEBUG", format, v...)
}

func (l *Logger) log(level string, format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	l.logger.Printf("[%s] %s%s", level, l.prefix, message)
}
