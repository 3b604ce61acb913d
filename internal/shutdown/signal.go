// Package shutdown turns SIGINT/SIGTERM into context cancellation so a scan
// stops between files.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler returns a context derived from parent that is cancelled
// on SIGTERM or SIGINT. The returned stop function releases the signal
// registration and must be called when the caller is done.
func SetupSignalHandler(parent context.Context) (context.Context, context.CancelFunc) {
	return SetupSignalHandlerWithCallback(parent, nil)
}

// SetupSignalHandlerWithCallback is SetupSignalHandler with a callback
// invoked with the received signal before the context is cancelled.
func SetupSignalHandlerWithCallback(parent context.Context, callback func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case sig := <-sigChan:
			if callback != nil {
				callback(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	stop := func() {
		cancel()
		<-done
		signal.Stop(sigChan)
	}
	return ctx, stop
}
