package engine

import (
	"slices"
	"testing"
)

func TestStoreKeepsInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	for e := Entity(1); e <= 5; e++ {
		s.Set(e, int(e)*10)
	}
	s.Set(3, 99)
	s.Remove(2)
	s.Remove(42)

	if got, want := s.Entities(), []Entity{1, 3, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if v, ok := s.Get(3); !ok || v != 99 {
		t.Errorf("Expected updated value 99, got %d (ok=%v)", v, ok)
	}
	if s.Has(2) {
		t.Error("Removed entity still present")
	}
	if s.Count() != 4 {
		t.Errorf("Expected count 4, got %d", s.Count())
	}

	s.Clear()
	if s.Count() != 0 || s.Has(1) || len(s.Entities()) != 0 {
		t.Errorf("Expected empty store after Clear, got %v", s.Entities())
	}
	s.Set(7, 1)
	if got := s.Entities(); !slices.Equal(got, []Entity{7}) {
		t.Errorf("Expected [7] after reuse, got %v", got)
	}
}
