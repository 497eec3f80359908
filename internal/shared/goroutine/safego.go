// Package goroutine launches background goroutines that log panics instead of
// taking the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/lumenhq/lumen/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and recovers any panic.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer Recover(log, name)
		fn()
	}()
}

// Recover logs a recovered panic with its stack. It must be deferred directly.
func Recover(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
