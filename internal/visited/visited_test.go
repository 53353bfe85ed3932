package visited

import "testing"

func TestTestAndSet(t *testing.T) {
	s := New()
	if s.TestAndSet(42) {
		t.Fatalf("first TestAndSet(42) should report unseen")
	}
	if !s.TestAndSet(42) {
		t.Fatalf("second TestAndSet(42) should report seen")
	}
	if s.TestAndSet(7) {
		t.Fatalf("TestAndSet(7) should report unseen")
	}
}

func TestClearResets(t *testing.T) {
	s := New()
	s.TestAndSet(1)
	s.TestAndSet(2)
	s.Clear()
	if s.TestAndSet(1) {
		t.Fatalf("key should be unseen after Clear")
	}
}

func TestManyDistinctKeys(t *testing.T) {
	s := New()
	const n = 1 << 14
	for i := uint64(0); i < n; i++ {
		if s.TestAndSet(i) {
			t.Fatalf("key %d reported seen on first insertion", i)
		}
	}
	for i := uint64(0); i < n; i++ {
		if !s.TestAndSet(i) {
			t.Fatalf("key %d reported unseen on second insertion", i)
		}
	}
}
