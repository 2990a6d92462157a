package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var levelColors = map[string]string{
	"TRACE": "\x1b[36m",
	"DEBUG": "\x1b[32m",
	"INFO":  "\x1b[34m",
	"WARN":  "\x1b[33m",
	"ERROR": "\x1b[31m",
	"FATAL": "\x1b[31;1m",
	"PANIC": "\x1b[35m",
}

// NewLogger returns a colored console logger writing to stdout.
// Unknown levels fall back to info.
func NewLogger(level string) *zerolog.Logger {
	log := New(os.Stdout, level)
	return &log
}

func New(out io.Writer, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05 MST",
	}

	output.FormatLevel = func(i interface{}) string {
		l, _ := i.(string)
		l = strings.ToUpper(l)
		color, ok := levelColors[l]
		if !ok {
			color = "\x1b[0m"
		}
		return fmt.Sprintf("%s| %-6s|\x1b[0m", color, l)
	}

	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("\x1b[1m%s\x1b[0m", i)
	}

	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("\x1b[36m%s:\x1b[0m", i)
	}

	output.FormatFieldValue = func(i interface{}) string {
		return fmt.Sprintf("\x1b[32m%s\x1b[0m", i)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldInteger = true

	return zerolog.New(output).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
