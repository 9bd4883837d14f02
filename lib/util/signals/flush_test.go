package signals

import (
	"bytes"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Flush Handler Registration Tests
// =============================================================================

// TestRegisterFlushHandler verifies flush handler registration.
func TestRegisterFlushHandler(t *testing.T) {
	originalHandlers := flushHandlers
	defer func() {
		mu.Lock()
		flushHandlers = originalHandlers
		mu.Unlock()
	}()

	mu.Lock()
	flushHandlers = nil
	mu.Unlock()

	called := false
	RegisterFlushHandler(func() {
		called = true
	})

	mu.RLock()
	count := len(flushHandlers)
	mu.RUnlock()

	if count != 1 {
		t.Errorf("expected 1 flush handler registered, got %d", count)
	}

	handleFlush()

	if !called {
		t.Error("flush handler was not called")
	}
}

// TestRegisterFlushHandler_Nil verifies nil handlers are ignored.
func TestRegisterFlushHandler_Nil(t *testing.T) {
	originalHandlers := flushHandlers
	defer func() {
		mu.Lock()
		flushHandlers = originalHandlers
		mu.Unlock()
	}()

	mu.Lock()
	flushHandlers = nil
	mu.Unlock()

	if id := RegisterFlushHandler(nil); id != -1 {
		t.Errorf("expected -1 for nil handler, got %d", id)
	}

	mu.RLock()
	count := len(flushHandlers)
	mu.RUnlock()

	if count != 0 {
		t.Errorf("nil handler should not be registered, got %d handlers", count)
	}
}

// TestFlushHandlers_CalledInOrder verifies FIFO order.
func TestFlushHandlers_CalledInOrder(t *testing.T) {
	originalHandlers := flushHandlers
	defer func() {
		mu.Lock()
		flushHandlers = originalHandlers
		mu.Unlock()
	}()

	mu.Lock()
	flushHandlers = nil
	mu.Unlock()

	var orderMu sync.Mutex
	order := make([]int, 0, 3)

	for i := 0; i < 3; i++ {
		idx := i
		RegisterFlushHandler(func() {
			orderMu.Lock()
			order = append(order, idx)
			orderMu.Unlock()
		})
	}

	handleFlush()

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

// TestFlushHandlers_Empty verifies empty handler list returns true.
func TestFlushHandlers_Empty(t *testing.T) {
	originalHandlers := flushHandlers
	defer func() {
		mu.Lock()
		flushHandlers = originalHandlers
		mu.Unlock()
	}()

	mu.Lock()
	flushHandlers = nil
	mu.Unlock()

	if !handleFlush() {
		t.Error("expected true for empty handler list")
	}
}

// TestFlushHandlers_Timeout verifies timeout behavior.
func TestFlushHandlers_Timeout(t *testing.T) {
	originalHandlers := flushHandlers
	originalTimeout := flushTimeout
	defer func() {
		mu.Lock()
		flushHandlers = originalHandlers
		flushTimeout = originalTimeout
		mu.Unlock()
	}()

	mu.Lock()
	flushHandlers = nil
	mu.Unlock()

	SetFlushTimeout(100 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	RegisterFlushHandler(func() {
		<-release
	})

	if handleFlush() {
		t.Error("expected false when handlers exceed timeout")
	}
}

// TestDeregisterFlushHandler verifies flush handler deregistration.
func TestDeregisterFlushHandler(t *testing.T) {
	originalHandlers := flushHandlers
	defer func() {
		mu.Lock()
		flushHandlers = originalHandlers
		mu.Unlock()
	}()

	mu.Lock()
	flushHandlers = nil
	mu.Unlock()

	called := false
	id := RegisterFlushHandler(func() { called = true })

	DeregisterFlushHandler(id)

	mu.RLock()
	count := len(flushHandlers)
	mu.RUnlock()

	if count != 0 {
		t.Errorf("expected 0 handlers after deregistration, got %d", count)
	}

	handleFlush()

	if called {
		t.Error("deregistered handler should not have been called")
	}
}

// TestFlushHandlers_PanicRecovery verifies panic recovery in flush handlers.
func TestFlushHandlers_PanicRecovery(t *testing.T) {
	originalHandlers := flushHandlers
	defer func() {
		mu.Lock()
		flushHandlers = originalHandlers
		mu.Unlock()
	}()

	mu.Lock()
	flushHandlers = nil
	mu.Unlock()

	calledAfterPanic := false

	RegisterFlushHandler(func() {
		panic("test panic in flush handler")
	})
	RegisterFlushHandler(func() {
		calledAfterPanic = true
	})

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	result := handleFlush()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	b := make([]byte, 1024)
	n, _ := r.Read(b)
	buf.Write(b[:n])

	if !result {
		t.Error("expected true even with panicking handler (others completed)")
	}
	if !calledAfterPanic {
		t.Error("handler after panicking handler was not called")
	}
	if buf.Len() == 0 {
		t.Error("expected panic to be logged to stderr")
	}
}

// =============================================================================
// SetFlushTimeout Tests
// =============================================================================

// TestSetFlushTimeout_Positive verifies setting a positive timeout.
func TestSetFlushTimeout_Positive(t *testing.T) {
	originalTimeout := flushTimeout
	defer func() {
		mu.Lock()
		flushTimeout = originalTimeout
		mu.Unlock()
	}()

	SetFlushTimeout(10 * time.Second)

	mu.RLock()
	timeout := flushTimeout
	mu.RUnlock()

	if timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", timeout)
	}
}

// TestSetFlushTimeout_NonPositive verifies zero and negative fall back to the default.
func TestSetFlushTimeout_NonPositive(t *testing.T) {
	originalTimeout := flushTimeout
	defer func() {
		mu.Lock()
		flushTimeout = originalTimeout
		mu.Unlock()
	}()

	for _, d := range []time.Duration{0, -5 * time.Second} {
		SetFlushTimeout(d)

		mu.RLock()
		timeout := flushTimeout
		mu.RUnlock()

		if timeout != defaultFlushTimeout {
			t.Errorf("SetFlushTimeout(%s): expected default %s, got %s", d, defaultFlushTimeout, timeout)
		}
	}
}

// =============================================================================
// Concurrent Registration Tests
// =============================================================================

// TestFlushConcurrentRegistration verifies thread-safe handler registration.
func TestFlushConcurrentRegistration(t *testing.T) {
	originalHandlers := flushHandlers
	defer func() {
		mu.Lock()
		flushHandlers = originalHandlers
		mu.Unlock()
	}()

	mu.Lock()
	flushHandlers = nil
	mu.Unlock()

	var wg sync.WaitGroup
	numGoroutines := 50
	var callCount int64

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RegisterFlushHandler(func() {
				atomic.AddInt64(&callCount, 1)
			})
		}()
	}
	wg.Wait()

	mu.RLock()
	count := len(flushHandlers)
	mu.RUnlock()

	if count != numGoroutines {
		t.Errorf("expected %d handlers, got %d", numGoroutines, count)
	}

	handleFlush()

	if atomic.LoadInt64(&callCount) != int64(numGoroutines) {
		t.Errorf("expected %d handlers called, got %d", numGoroutines, atomic.LoadInt64(&callCount))
	}
}

// =============================================================================
// Integration: flush runs before interrupt handlers
// =============================================================================

// TestFlushRunsBeforeInterrupt verifies that on a shutdown signal, pending
// flush work completes before interrupt handlers start.
func TestFlushRunsBeforeInterrupt(t *testing.T) {
	originalHandlers := flushHandlers
	originalInterrupters := interrupters
	defer func() {
		mu.Lock()
		flushHandlers = originalHandlers
		interrupters = originalInterrupters
		mu.Unlock()
	}()

	mu.Lock()
	flushHandlers = nil
	interrupters = nil
	mu.Unlock()

	var orderMu sync.Mutex
	order := make([]string, 0, 2)

	RegisterFlushHandler(func() {
		orderMu.Lock()
		order = append(order, "flush")
		orderMu.Unlock()
	})
	RegisterInterruptHandler(func() {
		orderMu.Lock()
		order = append(order, "interrupt")
		orderMu.Unlock()
	})

	handleInterrupted()

	orderMu.Lock()
	defer orderMu.Unlock()

	if len(order) != 2 {
		t.Fatalf("expected 2 events, got %d", len(order))
	}
	if order[0] != "flush" {
		t.Errorf("expected flush first, got %s", order[0])
	}
	if order[1] != "interrupt" {
		t.Errorf("expected interrupt second, got %s", order[1])
	}
}
