package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

type closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFunc
	logger Logger
}

var global = &closer{}

func SetLogger(l Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logger = l
}

func Add(fn ...func(context.Context) error) {
	for _, f := range fn {
		AddNamed("anonymous", f)
	}
}

func AddNamed(name string, fn func(context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.funcs = append(global.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll runs registered functions in reverse order of registration.
func CloseAll(ctx context.Context) error {
	var result error

	global.once.Do(func() {
		global.mu.Lock()
		funcs := global.funcs
		global.funcs = nil
		l := global.logger
		global.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]

			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}

			if err := f.fn(ctx); err != nil {
				if l != nil {
					l.Error(ctx, "❌ failed to close", zap.String("name", f.name), zap.Error(err))
				}
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}

			if l != nil {
				l.Info(ctx, "✅ closed", zap.String("name", f.name))
			}
		}

		result = errors.Join(errs...)
	})

	return result
}
