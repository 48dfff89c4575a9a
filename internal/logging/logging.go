// Package logging carries a zap logger through context for the example
// programs and integration tests.
package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

type ctxKey struct{}

type Logger struct {
	log *zap.Logger
}

var (
	once   sync.Once
	shared *Logger
)

func inProduction() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

func newZap() *zap.Logger {
	opts := []Option{
		zap.AddCallerSkip(1),
	}

	var cfg zap.Config
	if inProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := cfg.Build(opts...)
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}

func New() *Logger {
	once.Do(func() {
		shared = &Logger{log: newZap()}
	})
	return shared
}

// FromContext returns the logger attached to ctx, or the shared default
// when ctx carries none.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}

	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}

	return New()
}

// Attach returns a child context carrying l.
func (l *Logger) Attach(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func (l Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l Logger) Sync() error {
	return l.log.Sync()
}

func (l Logger) With(fields ...Field) *Logger {
	return &Logger{log: l.log.With(fields...)}
}
