package flight

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetCachesResult(t *testing.T) {
	var calls atomic.Int64
	c := NewCache(func(k string) (string, error) {
		calls.Add(1)
		return "analysis:" + k, nil
	})

	for i := 0; i < 3; i++ {
		v, err := c.Get("script")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "analysis:script" {
			t.Fatalf("got %q", v)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("work ran %d times, want 1", n)
	}
}

func TestGetCoalescesConcurrentCallers(t *testing.T) {
	var calls atomic.Int64
	release := make(chan struct{})
	c := NewCache(func(k int) (int, error) {
		calls.Add(1)
		<-release
		return k * 2, nil
	})

	const workers = 8
	var wg sync.WaitGroup
	results := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Get(21)
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("work ran %d times for one key, want 1", n)
	}
	for i, r := range results {
		if r != 42 {
			t.Errorf("worker %d got %d, want 42", i, r)
		}
	}
}

func TestForceRecomputes(t *testing.T) {
	var calls atomic.Int64
	c := NewCache(func(k string) (int64, error) {
		return calls.Add(1), nil
	})

	first, _ := c.Get("k")
	second, _ := c.Force("k")
	if first == second {
		t.Error("Force reused the cached result")
	}
	third, _ := c.Get("k")
	if third != second {
		t.Errorf("Get returned %d after Force stored %d", third, second)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	var calls atomic.Int64
	c := NewCache(func(k string) (string, error) {
		if calls.Add(1) == 1 {
			return "", errors.New("provider unavailable")
		}
		return "ok", nil
	})

	if _, err := c.Get("k"); err == nil {
		t.Fatal("expected first call to fail")
	}
	v, err := c.Get("k")
	if err != nil || v != "ok" {
		t.Fatalf("retry after error: %q, %v", v, err)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("work ran %d times, want 2", n)
	}
}

func TestExpiry(t *testing.T) {
	var calls atomic.Int64
	c := NewCache(func(k string) (int64, error) {
		return calls.Add(1), nil
	})
	c.Expiry(10 * time.Millisecond)

	first, _ := c.Get("k")
	time.Sleep(25 * time.Millisecond)
	second, _ := c.Get("k")
	if first == second {
		t.Error("expired result was served")
	}
}
