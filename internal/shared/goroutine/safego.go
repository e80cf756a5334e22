// Package goroutine launches background work with panic recovery. Email
// delivery and other best-effort side effects run through SafeGo so a panic
// in a notification path cannot take the server down.
package goroutine

import (
	"runtime/debug"

	"helpdesk/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic is recovered and logged with
// the goroutine name and stack instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background goroutine panicked",
					"name", name,
					"panic", r,
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
