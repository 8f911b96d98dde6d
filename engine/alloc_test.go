package engine

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestAllocatorSequence(t *testing.T) {
	var a Allocator
	for want := Label(1); want <= 3; want++ {
		got, err := a.Next()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("Next() = %v, want %v", got, want)
		}
	}
	if a.Allocated() != 3 {
		t.Fatalf("Allocated() = %d, want 3", a.Allocated())
	}
}

func TestAllocatorConcurrentUnique(t *testing.T) {
	var a Allocator

	const goroutines = 32
	const perGoroutine = 64

	var wg sync.WaitGroup
	ids := make(chan Label, goroutines*perGoroutine)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				id, err := a.Next()
				if err != nil {
					t.Error(err)
					return
				}
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[Label]bool)
	for id := range ids {
		if !id.IsCluster() {
			t.Fatalf("allocated non-cluster label %v", id)
		}
		if seen[id] {
			t.Fatalf("identity %v allocated twice", id)
		}
		seen[id] = true
	}
	if len(seen) != goroutines*perGoroutine {
		t.Fatalf("allocated %d unique identities, want %d", len(seen), goroutines*perGoroutine)
	}
}

func TestAllocatorExhaustion(t *testing.T) {
	var a Allocator
	a.last.Store(math.MaxInt64 - 1)

	id, err := a.Next()
	if err != nil || id != Label(math.MaxInt64) {
		t.Fatalf("Next() = (%v, %v), want last valid identity", id, err)
	}

	if _, err := a.Next(); !errors.Is(err, ErrIdentityExhausted) {
		t.Fatalf("expected ErrIdentityExhausted, got %v", err)
	}
}
