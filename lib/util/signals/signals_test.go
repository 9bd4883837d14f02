package signals

import (
	"bytes"
	"os"
	"sync"
	"testing"
	"time"
)

// resetHandlers clears the registries for a test and restores them on
// cleanup, so tests do not see each other's handlers.
func resetHandlers(t *testing.T) {
	t.Helper()
	mu.Lock()
	origReloaders := reloaders
	origInterrupters := interrupters
	origFlush := flushHandlers
	reloaders = nil
	interrupters = nil
	flushHandlers = nil
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		reloaders = origReloaders
		interrupters = origInterrupters
		flushHandlers = origFlush
		mu.Unlock()
	})
}

// TestReloadHandlerDispatch verifies a registered reload handler runs on a
// reload signal.
func TestReloadHandlerDispatch(t *testing.T) {
	resetHandlers(t)

	called := false
	RegisterReloadHandler(func() { called = true })

	handleReload()

	if !called {
		t.Error("reload handler was not called")
	}
}

// TestInterruptHandlerDispatch verifies a registered interrupt handler runs
// on a termination signal.
func TestInterruptHandlerDispatch(t *testing.T) {
	resetHandlers(t)

	called := false
	RegisterInterruptHandler(func() { called = true })

	handleInterrupted()

	if !called {
		t.Error("interrupt handler was not called")
	}
}

// TestReloadHandlersRunInOrder verifies registration order is dispatch order.
func TestReloadHandlersRunInOrder(t *testing.T) {
	resetHandlers(t)

	var orderMu sync.Mutex
	order := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		idx := i
		RegisterReloadHandler(func() {
			orderMu.Lock()
			order = append(order, idx)
			orderMu.Unlock()
		})
	}

	handleReload()

	orderMu.Lock()
	defer orderMu.Unlock()
	if len(order) != 3 {
		t.Fatalf("expected 3 handlers called, got %d", len(order))
	}
	for i := 0; i < 3; i++ {
		if order[i] != i {
			t.Errorf("expected handler %d at position %d, got %d", i, i, order[i])
		}
	}
}

// TestNilHandlersIgnored verifies nil handlers are rejected on registration.
func TestNilHandlersIgnored(t *testing.T) {
	resetHandlers(t)

	if id := RegisterReloadHandler(nil); id != -1 {
		t.Errorf("expected -1 for nil reload handler, got %d", id)
	}
	if id := RegisterInterruptHandler(nil); id != -1 {
		t.Errorf("expected -1 for nil interrupt handler, got %d", id)
	}

	mu.RLock()
	reloadCount := len(reloaders)
	interruptCount := len(interrupters)
	mu.RUnlock()

	if reloadCount != 0 || interruptCount != 0 {
		t.Errorf("nil handlers should not be registered, got %d reload and %d interrupt", reloadCount, interruptCount)
	}

	// Dispatch over empty registries must not panic.
	handleReload()
	handleInterrupted()
}

// TestDeregisterReloadHandler verifies a deregistered handler no longer runs.
func TestDeregisterReloadHandler(t *testing.T) {
	resetHandlers(t)

	called1, called2 := false, false
	id1 := RegisterReloadHandler(func() { called1 = true })
	_ = RegisterReloadHandler(func() { called2 = true })

	DeregisterReloadHandler(id1)
	handleReload()

	if called1 {
		t.Error("deregistered handler should not have been called")
	}
	if !called2 {
		t.Error("remaining handler should have been called")
	}
}

// TestDeregisterUnknownIDIsNoop verifies deregistering an unknown id leaves
// the registry alone.
func TestDeregisterUnknownIDIsNoop(t *testing.T) {
	resetHandlers(t)

	called := false
	RegisterInterruptHandler(func() { called = true })

	DeregisterInterruptHandler(999)
	handleInterrupted()

	if !called {
		t.Error("handler should survive deregistration of an unknown id")
	}
}

// TestInterruptHandlerPanicRecovery verifies a panicking interrupt handler
// is recovered, logged to stderr and does not stop the remaining handlers.
func TestInterruptHandlerPanicRecovery(t *testing.T) {
	resetHandlers(t)

	calledAfterPanic := false
	RegisterInterruptHandler(func() { panic("boom") })
	RegisterInterruptHandler(func() { calledAfterPanic = true })

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	handleInterrupted()

	w.Close()
	os.Stderr = oldStderr
	var buf bytes.Buffer
	b := make([]byte, 1024)
	n, _ := r.Read(b)
	buf.Write(b[:n])

	if !calledAfterPanic {
		t.Error("handler after panicking handler was not called")
	}
	if buf.Len() == 0 {
		t.Error("expected panic to be logged to stderr")
	}
}

// TestInterruptProceedsWhenFlushTimesOut verifies a stuck flush handler
// delays teardown only up to the flush timeout; interrupt handlers still run.
func TestInterruptProceedsWhenFlushTimesOut(t *testing.T) {
	resetHandlers(t)

	mu.Lock()
	origTimeout := flushTimeout
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		flushTimeout = origTimeout
		mu.Unlock()
	})
	SetFlushTimeout(50 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	RegisterFlushHandler(func() { <-release })

	interrupted := false
	RegisterInterruptHandler(func() { interrupted = true })

	handleInterrupted()

	if !interrupted {
		t.Error("interrupt handlers must run even when a flush handler hangs")
	}
}

// TestConcurrentRegistration verifies the registries tolerate concurrent
// registration from many goroutines.
func TestConcurrentRegistration(t *testing.T) {
	resetHandlers(t)

	var wg sync.WaitGroup
	const n = 50
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			RegisterReloadHandler(func() {})
		}()
		go func() {
			defer wg.Done()
			RegisterInterruptHandler(func() {})
		}()
	}
	wg.Wait()

	mu.RLock()
	reloadCount := len(reloaders)
	interruptCount := len(interrupters)
	mu.RUnlock()

	if reloadCount != n {
		t.Errorf("expected %d reload handlers, got %d", n, reloadCount)
	}
	if interruptCount != n {
		t.Errorf("expected %d interrupt handlers, got %d", n, interruptCount)
	}
}
