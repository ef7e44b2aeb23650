// Package goroutine launches background work that must never take the process down.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic is logged with its stack and swallowed.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverAndLog(log, name)
		fn()
	}()
}

// SafeGoWithContext is SafeGo for loops that stop on context cancellation.
// The returned channel is closed once fn has returned or panicked.
func SafeGoWithContext(ctx context.Context, log logger.Interface, name string, fn func(ctx context.Context)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer recoverAndLog(log, name)
		fn(ctx)
	}()
	return done
}

func recoverAndLog(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
