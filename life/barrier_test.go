package life

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestBarrierReleasesAllAcrossRounds(t *testing.T) {
	const n = 8
	const rounds = 200

	b := NewBarrier(n)
	var arrived int64

	var wg sync.WaitGroup
	for g := 0; g < n; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				atomic.AddInt64(&arrived, 1)
				b.Wait()
				// Everyone from this round must have arrived by now.
				if got := atomic.LoadInt64(&arrived); got < int64((r+1)*n) {
					t.Errorf("round %d: released with only %d arrivals", r, got)
				}
			}
		}()
	}
	wg.Wait()

	if arrived != n*rounds {
		t.Fatalf("total arrivals %d, want %d", arrived, n*rounds)
	}
}

func TestBarrierRunsHookOncePerTrip(t *testing.T) {
	const n = 4
	const rounds = 50

	trips := 0
	b := NewBarrierFunc(n, func() { trips++ })

	var wg sync.WaitGroup
	for g := 0; g < n; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				b.Wait()
			}
		}()
	}
	wg.Wait()

	if trips != rounds {
		t.Fatalf("hook ran %d times, want %d", trips, rounds)
	}
}

func TestBarrierSizeOneNeverBlocks(t *testing.T) {
	b := NewBarrier(1)
	for i := 0; i < 10; i++ {
		b.Wait()
	}
}

func TestBarrierRejectsNonPositiveSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewBarrier(0) did not panic")
		}
	}()
	NewBarrier(0)
}
