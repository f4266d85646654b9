package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *logger
	initOnce     sync.Once
	mu           sync.RWMutex
)

type logger struct {
	zl *zap.Logger
}

// Init builds the process-wide logger. Calling it again is a no-op.
func Init(level string, asJSON bool) error {
	var initErr error

	initOnce.Do(func() {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			initErr = fmt.Errorf("logger.Init: parse level %q: %w", level, err)
			return
		}

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		var encoder zapcore.Encoder
		if asJSON {
			encoder = zapcore.NewJSONEncoder(encCfg)
		} else {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
			encoder = zapcore.NewConsoleEncoder(encCfg)
		}

		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl))

		mu.Lock()
		globalLogger = &logger{zl: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))}
		mu.Unlock()
	})

	return initErr
}

// SetNopLogger silences all output. Used by tests.
func SetNopLogger() {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = &logger{zl: zap.NewNop()}
}

func L() *logger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()

	if l == nil {
		return &logger{zl: zap.NewNop()}
	}
	return l
}

func With(fields ...Field) *logger {
	return &logger{zl: L().zl.With(fields...)}
}

func Sync() error { return L().zl.Sync() }

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func (l *logger) With(fields ...Field) *logger {
	return &logger{zl: l.zl.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, withRequestID(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, withRequestID(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zl.Warn(msg, withRequestID(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, withRequestID(ctx, fields)...)
}

func withRequestID(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return append(fields, zap.String("request_id", reqID))
	}
	return fields
}

