package signals

import (
	"fmt"
	"os"
	"time"
)

// defaultFlushTimeout is the maximum time to wait for flush handlers to
// complete before proceeding with interrupt handlers.
const defaultFlushTimeout = 30 * time.Second

var (
	flushHandlers []registeredHandler
	flushTimeout  = defaultFlushTimeout
)

// RegisterFlushHandler registers a handler that runs BEFORE the interrupt
// handlers during shutdown. This is where pending settings writes get
// drained: a handler typically calls the store's blocking Sync so queued
// saves reach disk before the process exits.
//
// Flush handlers run in registration order (FIFO) and each handler is
// protected against panics. All flush handlers must complete (or the flush
// timeout must expire) before interrupt handlers are invoked.
//
// Nil handlers are silently ignored and return -1.
func RegisterFlushHandler(f Handler) HandlerID {
	if f == nil {
		return -1
	}
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	flushHandlers = append(flushHandlers, registeredHandler{id: id, fn: f})
	return id
}

// DeregisterFlushHandler removes a previously registered flush handler by ID.
func DeregisterFlushHandler(id HandlerID) {
	mu.Lock()
	defer mu.Unlock()
	for i, h := range flushHandlers {
		if h.id == id {
			flushHandlers = append(flushHandlers[:i], flushHandlers[i+1:]...)
			return
		}
	}
}

// SetFlushTimeout configures the maximum time to wait for flush handlers to
// complete. If zero or negative, defaults to 30 seconds.
func SetFlushTimeout(timeout time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if timeout <= 0 {
		flushTimeout = defaultFlushTimeout
	} else {
		flushTimeout = timeout
	}
}

// handleFlush runs all registered flush handlers with a timeout. Returns
// true if all handlers completed within the timeout, false otherwise.
func handleFlush() bool {
	mu.RLock()
	snapshot := make([]registeredHandler, len(flushHandlers))
	copy(snapshot, flushHandlers)
	timeout := flushTimeout
	mu.RUnlock()

	if len(snapshot) == 0 {
		return true
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, h := range snapshot {
			func() {
				defer func() {
					if r := recover(); r != nil {
						fmt.Fprintf(os.Stderr, "signals: panic in flush handler: %v\n", r)
					}
				}()
				h.fn()
			}()
		}
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		fmt.Fprintf(os.Stderr, "signals: flush handlers timed out after %s\n", timeout)
		return false
	}
}
