package props

import "testing"

func TestMapDefault(t *testing.T) {
	m := New[uint64](42)
	if got := m.Get(7); got != 42 {
		t.Fatalf("Get(unset) = %d; want default 42", got)
	}
	if m.Has(7) {
		t.Fatalf("Has(unset) = true; want false")
	}
}

func TestMapSetGetReset(t *testing.T) {
	m := New(-1)
	m.Set(3, 10)
	m.Set(5, 20)

	if got := m.Get(3); got != 10 {
		t.Fatalf("Get(3) = %d; want 10", got)
	}
	if !m.Has(5) {
		t.Fatalf("Has(5) = false; want true")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", m.Len())
	}

	m.Reset(3)
	if m.Has(3) {
		t.Fatalf("Has(3) after Reset = true; want false")
	}
	if got := m.Get(3); got != -1 {
		t.Fatalf("Get(3) after Reset = %d; want default -1", got)
	}

	m.ResetAll()
	if m.Len() != 0 {
		t.Fatalf("Len() after ResetAll = %d; want 0", m.Len())
	}
}

func TestMapSetDefault(t *testing.T) {
	m := New(0)
	m.SetDefault(99)
	if got := m.Get(1); got != 99 {
		t.Fatalf("Get(unset) after SetDefault = %d; want 99", got)
	}
	if got := m.Default(); got != 99 {
		t.Fatalf("Default() = %d; want 99", got)
	}
}
