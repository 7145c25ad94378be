package backend

import (
	"sync"
	"testing"
)

func TestRegistryTakeOnce(t *testing.T) {
	r := newRegistry[string]()
	h := r.put("a")
	if h == 0 {
		t.Fatal("put returned the zero Handle")
	}
	if v, ok := r.get(h); !ok || v != "a" {
		t.Fatalf("get(%d) = %q, %v", h, v, ok)
	}
	if _, ok := r.take(h); !ok {
		t.Fatal("first take missed")
	}
	if _, ok := r.take(h); ok {
		t.Fatal("second take of the same Handle reported ok")
	}
	if _, ok := r.get(h); ok {
		t.Fatal("get after take reported ok")
	}
}

func TestRegistryHandlesAreNotReused(t *testing.T) {
	r := newRegistry[int]()
	a := r.put(1)
	r.take(a)
	b := r.put(2)
	if a == b {
		t.Fatalf("Handle %d reused after take", a)
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := newRegistry[int]()
	const n = 64
	handles := make([]Handle, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handles[i] = r.put(i)
		}()
	}
	wg.Wait()
	if r.len() != n {
		t.Fatalf("len = %d, want %d", r.len(), n)
	}

	seen := map[Handle]bool{}
	for _, h := range handles {
		if seen[h] {
			t.Fatalf("Handle %d issued twice", h)
		}
		seen[h] = true
	}

	var freed sync.WaitGroup
	var mu sync.Mutex
	taken := 0
	for _, h := range handles {
		for range 2 {
			freed.Add(1)
			go func() {
				defer freed.Done()
				if _, ok := r.take(h); ok {
					mu.Lock()
					taken++
					mu.Unlock()
				}
			}()
		}
	}
	freed.Wait()
	if taken != n {
		t.Fatalf("successful takes = %d, want %d", taken, n)
	}
	if r.len() != 0 {
		t.Fatalf("len after take = %d", r.len())
	}
}
