package rng

import "testing"

func TestNext_MatchesRecurrence(t *testing.T) {
	r := New(2026919)
	state := int64(2026919)
	for i := 0; i < 50; i++ {
		state = (state*9301 + 49297) % 233280
		want := float64(state) / 233280
		if got := r.Next(); got != want {
			t.Fatalf("draw %d: Next() = %v, want %v", i, got, want)
		}
	}
	if r.Draws() != 50 {
		t.Errorf("Draws() = %d, want 50", r.Draws())
	}
}

func TestNext_InUnitInterval(t *testing.T) {
	for _, seed := range []int64{0, 1, 2024011, 2025115, 20261231, 233279} {
		r := New(seed)
		for i := 0; i < 1000; i++ {
			v := r.Next()
			if v < 0 || v >= 1 {
				t.Fatalf("seed %d draw %d: Next() = %v, want [0,1)", seed, i, v)
			}
		}
	}
}

func TestSameSeedSameStream(t *testing.T) {
	a := New(2026919)
	b := New(2026919)
	for i := 0; i < 200; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs: %v != %v", i, x, y)
		}
	}
}

func TestReset(t *testing.T) {
	r := New(42)
	first := []float64{r.Next(), r.Next(), r.Next()}
	r.Reset()
	if r.Draws() != 0 {
		t.Errorf("Draws() after Reset = %d, want 0", r.Draws())
	}
	for i, want := range first {
		if got := r.Next(); got != want {
			t.Errorf("draw %d after Reset = %v, want %v", i, got, want)
		}
	}
}

func TestIntn(t *testing.T) {
	r := New(7)
	for i := 0; i < 500; i++ {
		n := r.Intn(8)
		if n < 0 || n >= 8 {
			t.Fatalf("Intn(8) = %d, out of range", n)
		}
	}
	if r.Draws() != 500 {
		t.Errorf("Intn consumed %d draws, want 500", r.Draws())
	}

	// Intn(n) must equal floor(Next()*n) on a twin stream.
	a, b := New(99), New(99)
	for i := 0; i < 100; i++ {
		want := int(b.Next() * 3)
		if got := a.Intn(3); got != want {
			t.Fatalf("draw %d: Intn(3) = %d, want %d", i, got, want)
		}
	}
}
