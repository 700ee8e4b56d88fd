package syncs

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(2)
	var running, peak atomic.Int64
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem.Do(func() {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				running.Add(-1)
			})
		}()
	}
	wg.Wait()
	if peak.Load() > 2 {
		t.Fatalf("got %d", peak.Load())
	}
}

func TestSemaphoreMinimum(t *testing.T) {
	sem := NewSemaphore(0)
	if cap(sem) != 1 {
		t.Fatalf("got %d", cap(sem))
	}
}
