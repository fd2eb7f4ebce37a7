package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu            sync.RWMutex
	defaultLogger *zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger with a JSON writer on os.Stdout at debug level.
// It ensures that the logger is initialized only once; Configure replaces it afterwards.
func Init() {
	once.Do(func() {
		l := zerolog.New(os.Stdout).Level(zerolog.DebugLevel).With().Timestamp().Logger()
		mu.Lock()
		defaultLogger = &l
		mu.Unlock()
	})
}

// Configure rebuilds the default logger from the logging config section.
// format is "json" or "text"; level is any zerolog level name.
func Configure(level, format string, out io.Writer) {
	Init()
	if out == nil {
		out = os.Stdout
	}
	if strings.EqualFold(format, "text") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	l := zerolog.New(out).Level(lvl).With().Timestamp().Logger()

	mu.Lock()
	defaultLogger = &l
	mu.Unlock()
}

// Get returns the initialized default logger.
func Get() *zerolog.Logger {
	Init()
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Info logs an informational message with alternating key/value pairs.
func Info(msg string, args ...any) {
	Get().Info().Fields(args).Msg(msg)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Get().Warn().Fields(args).Msg(msg)
}

// Error logs an error message; err may be nil.
func Error(msg string, err error, args ...any) {
	Get().Error().Err(err).Fields(args).Msg(msg)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Get().Debug().Fields(args).Msg(msg)
}
