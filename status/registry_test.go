package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMap_GetReturnsCachedPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	a := m.Get(KeyMovements)
	b := m.Get(KeyMovements)
	if a != b {
		t.Fatal("Expected the same pointer for repeated Get")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestMetricMap_RangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("b")
	m.Get("c")
	m.Get("a")

	var keys []string
	m.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})

	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Expected keys %v, got %v", want, keys)
		}
	}
}

func TestMetricMap_ConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get(KeyStep).Add(1)
		}()
	}
	wg.Wait()

	if got := m.Get(KeyStep).Load(); got != 32 {
		t.Errorf("Expected 32 increments, got %d", got)
	}
}

func TestRegistry_Export(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyMovements).Store(42)
	r.Bools.Get(KeyRunning).Store(true)
	r.Floats.Get(KeyFaultRate).Set(0.1)

	out := r.Export()
	if len(out) != 3 {
		t.Fatalf("Expected 3 exported metrics, got %d", len(out))
	}
	if out[KeyMovements] != int64(42) {
		t.Errorf("Expected movements 42, got %v", out[KeyMovements])
	}
	if out[KeyRunning] != true {
		t.Errorf("Expected running true, got %v", out[KeyRunning])
	}
	if out[KeyFaultRate] != 0.1 {
		t.Errorf("Expected fault rate 0.1, got %v", out[KeyFaultRate])
	}
}
