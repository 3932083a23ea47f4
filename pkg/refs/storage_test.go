package refs

import "testing"

func TestStorage_ZeroValueEmpty(t *testing.T) {
	var s storage[int]
	if s.capacity() != 0 {
		t.Errorf("expected zero capacity, got %d", s.capacity())
	}

	s.ensureAllocated(0)
	if s.capacity() != 0 {
		t.Error("ensuring zero slots must not allocate")
	}
}

func TestStorage_GrowthDoublesFromBaseline(t *testing.T) {
	tests := []struct {
		min  int
		want int
	}{
		{1, 8},
		{8, 8},
		{9, 16},
		{17, 32},
		{100, 128},
	}

	for _, tt := range tests {
		var s storage[int]
		s.ensureAllocated(tt.min)
		if s.capacity() != tt.want {
			t.Errorf("ensureAllocated(%d): expected capacity %d, got %d", tt.min, tt.want, s.capacity())
		}
	}
}

func TestStorage_GrowPreservesContents(t *testing.T) {
	var s storage[int]
	s.ensureAllocated(4)
	for i := 0; i < 4; i++ {
		s.slots[i] = i + 1
	}

	s.ensureAllocated(50)

	if s.capacity() != 64 {
		t.Fatalf("expected capacity 64, got %d", s.capacity())
	}
	for i := 0; i < 4; i++ {
		if s.slots[i] != i+1 {
			t.Errorf("slot %d: expected %d, got %d", i, i+1, s.slots[i])
		}
	}
}

func TestStorage_EnsureIsIdempotent(t *testing.T) {
	var s storage[int]
	s.ensureAllocated(10)
	capacity := s.capacity()

	s.ensureAllocated(5)
	s.ensureAllocated(capacity)

	if s.capacity() != capacity {
		t.Errorf("smaller requests must not reallocate, had %d now %d", capacity, s.capacity())
	}
}

func TestStorage_ShrinkHonorsSlack(t *testing.T) {
	var s storage[int]
	s.ensureAllocated(64)

	// Within the slack margin: no reallocation.
	s.shrinkToNoMoreThan(60)
	if s.capacity() != 64 {
		t.Errorf("shrink inside the slack margin should keep capacity 64, got %d", s.capacity())
	}

	// Beyond the margin: reallocates to exactly the request.
	s.shrinkToNoMoreThan(10)
	if s.capacity() != 10 {
		t.Errorf("expected capacity exactly 10, got %d", s.capacity())
	}
}

func TestStorage_ShrinkToZeroReleases(t *testing.T) {
	var s storage[int]
	s.ensureAllocated(16)

	s.shrinkToNoMoreThan(0)

	if s.capacity() != 0 || s.slots != nil {
		t.Errorf("expected the block released, capacity=%d", s.capacity())
	}
}

func TestStorage_ShrinkPreservesContents(t *testing.T) {
	var s storage[int]
	s.ensureAllocated(64)
	for i := 0; i < 5; i++ {
		s.slots[i] = i + 1
	}

	s.shrinkToNoMoreThan(5)

	for i := 0; i < 5; i++ {
		if s.slots[i] != i+1 {
			t.Errorf("slot %d: expected %d, got %d", i, i+1, s.slots[i])
		}
	}
}

func TestStorage_SwapWith(t *testing.T) {
	var a, b storage[int]
	a.ensureAllocated(8)
	a.slots[0] = 1
	b.ensureAllocated(16)
	b.slots[0] = 2

	a.swapWith(&b)

	if a.capacity() != 16 || a.slots[0] != 2 {
		t.Errorf("a should hold b's block, capacity=%d slots[0]=%d", a.capacity(), a.slots[0])
	}
	if b.capacity() != 8 || b.slots[0] != 1 {
		t.Errorf("b should hold a's block, capacity=%d slots[0]=%d", b.capacity(), b.slots[0])
	}
}
