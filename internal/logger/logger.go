package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const runIDKey ctxKey = "run_id"

type implLogger struct {
	zl    zerolog.Logger
	level string
}

// New creates a Logger writing to stdout. format is "json" or "text".
func New(level, format string) Logger {
	return NewWriter(os.Stdout, level, format)
}

// NewWriter creates a Logger writing to w
func NewWriter(w io.Writer, level, format string) Logger {
	if strings.ToLower(format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return &implLogger{
		zl:    zerolog.New(w).With().Timestamp().Logger(),
		level: strings.ToLower(level),
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &implLogger{zl: zerolog.Nop(), level: "error"}
}

// WithRunID attaches a run identifier that is emitted with every entry
// logged under ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunID returns the run identifier stored in ctx, if any.
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(ctx context.Context, event *zerolog.Event, msg string, args []interface{}) {
	if id := RunID(ctx); id != "" {
		event = event.Str("run_id", id)
	}
	event.Msg(fmt.Sprintf(msg, args...))
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.write(ctx, l.zl.Debug(), msg, args)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.write(ctx, l.zl.Info(), msg, args)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.write(ctx, l.zl.Warn(), msg, args)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.write(ctx, l.zl.Error(), msg, args)
	}
}
