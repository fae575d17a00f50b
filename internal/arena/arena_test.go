package arena

import "testing"

func TestPoolStableAddresses(t *testing.T) {
	p := NewPool[int](2)
	ptrs := make([]*int, 0, 10)
	for i := 0; i < 10; i++ {
		ptrs = append(ptrs, p.New(i))
	}
	for i, ptr := range ptrs {
		if *ptr != i {
			t.Fatalf("pointer %d: expected %d, got %d (pointer invalidated by later allocation)", i, i, *ptr)
		}
	}
	if got := p.Stats().Allocations; got != 10 {
		t.Errorf("expected 10 allocations, got %d", got)
	}
	if got := p.Stats().Blocks; got != 5 {
		t.Errorf("expected 5 blocks of size 2, got %d", got)
	}
}

func TestPoolDefaultBlockSize(t *testing.T) {
	p := NewPool[string](0)
	if p.blockSize != defaultBlockSize {
		t.Errorf("expected default block size %d, got %d", defaultBlockSize, p.blockSize)
	}
}
