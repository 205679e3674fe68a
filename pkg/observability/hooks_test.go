package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopHarnessHooks{}
	h.OnRunStart(ctx, "run-1", []string{"DeltaBlue"})
	h.OnWorkloadStart(ctx, "DeltaBlue")
	h.OnWorkloadComplete(ctx, "DeltaBlue", 123.4, 10, time.Second, nil)
	h.OnWorkloadComplete(ctx, "DeltaBlue", 0, 0, 0, errors.New("boom"))
	h.OnRunComplete(ctx, "run-1", time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "baseline")
	c.OnCacheMiss(ctx, "baseline")
	c.OnCacheSet(ctx, "baseline", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Harness().(NoopHarnessHooks); !ok {
		t.Error("Harness() should return NoopHarnessHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customHarness := &testHarnessHooks{}
	SetHarnessHooks(customHarness)
	if Harness() != customHarness {
		t.Error("SetHarnessHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Harness().(NoopHarnessHooks); !ok {
		t.Error("Reset() should restore NoopHarnessHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testHarnessHooks{}
	SetHarnessHooks(custom)
	SetHarnessHooks(nil)

	if Harness() != custom {
		t.Error("SetHarnessHooks(nil) should be ignored")
	}
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	defer Reset()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetCacheHooks(&testCacheHooks{})
		}()
		go func() {
			defer wg.Done()
			Cache().OnCacheHit(context.Background(), "baseline")
		}()
	}
	wg.Wait()
}

type testHarnessHooks struct{ NoopHarnessHooks }
type testCacheHooks struct{ NoopCacheHooks }
