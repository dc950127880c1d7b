package nurbs

import (
	"errors"
	"testing"
)

func TestKnotVectorInvalidInput(t *testing.T) {
	tests := []struct {
		degree, n int
	}{
		{0, 12},
		{4, 0},
		{-1, 0},
		{-3, 5},
		{3, -5},
		{5, 3},
	}
	for _, tt := range tests {
		if _, err := NewKnotVector(tt.degree, tt.n, true); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewKnotVector(%d, %d) returned %v, want ErrInvalidArgument", tt.degree, tt.n, err)
		}
		if _, err := NewKnotVector(tt.degree, tt.n, false); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewKnotVector(%d, %d, false) returned %v, want ErrInvalidArgument", tt.degree, tt.n, err)
		}
	}
}

func TestKnotVectorEvenlySpaced(t *testing.T) {
	kv, err := NewKnotVector(4, 12, true)
	if err != nil {
		t.Fatal(err)
	}
	want := KnotVector{0, 0, 0, 0, 0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1, 1, 1, 1, 1}
	diff(t, want, kv)
}

func TestKnotVectorEvenlySpacedUnclamped(t *testing.T) {
	kv, err := NewKnotVector(3, 5, false)
	if err != nil {
		t.Fatal(err)
	}
	want := KnotVector{0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1}
	diff(t, want, kv)
	if kv.IsClamped(3) {
		t.Error("unclamped knot vector reports being clamped")
	}
}

func TestKnotVectorClampedProperties(t *testing.T) {
	for degree := 1; degree <= 6; degree++ {
		for n := degree + 1; n <= 20; n++ {
			kv, err := NewKnotVector(degree, n, true)
			if err != nil {
				t.Fatalf("NewKnotVector(%d, %d): %v", degree, n, err)
			}
			if len(kv) != n+degree+1 {
				t.Fatalf("NewKnotVector(%d, %d) has %d knots, want %d", degree, n, len(kv), n+degree+1)
			}
			if !kv.IsNonDecreasing() {
				t.Errorf("NewKnotVector(%d, %d) = %v is decreasing", degree, n, kv)
			}
			mults := kv.Multiplicities()
			if mults[0].Mult != degree+1 || mults[len(mults)-1].Mult != degree+1 {
				t.Errorf("NewKnotVector(%d, %d) = %v isn't clamped", degree, n, kv)
			}
			if !kv.AreValid(degree, n) {
				t.Errorf("NewKnotVector(%d, %d) = %v isn't valid", degree, n, kv)
			}
			if start, end := kv.Domain(); start != 0 || end != 1 {
				t.Errorf("NewKnotVector(%d, %d) has domain [%g, %g]", degree, n, start, end)
			}
		}
	}
}

func TestKnotVectorAreValid(t *testing.T) {
	tests := []struct {
		knots     KnotVector
		degree, n int
		want      bool
	}{
		{KnotVector{0, 0, 1, 2, 3, 4, 4}, 4, 12, false},
		{KnotVector{5, 3, 6, 5, 4, 5, 6}, 3, 3, false},
		{KnotVector{0, 0, 0, 0, 0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1, 1, 1, 1, 1}, 4, 12, true},
		{KnotVector{0, 0, 0, 0, 1, 1, 1, 1}, 3, 4, true},
		// Interior knot repeated degree+2 times.
		{KnotVector{0, 0, 0.5, 0.5, 0.5, 1, 1}, 1, 5, false},
		{KnotVector{0, 0, 1, 1}, 0, 3, false},
	}
	for _, tt := range tests {
		if got := tt.knots.AreValid(tt.degree, tt.n); got != tt.want {
			t.Errorf("%v.AreValid(%d, %d) = %t, want %t", tt.knots, tt.degree, tt.n, got, tt.want)
		}
	}
}

func TestKnotVectorNormalize(t *testing.T) {
	kv := KnotVector{-5, -5, -3, -2, 2, 3, 5, 5}
	orig := kv.Clone()
	got := kv.Normalize()
	diff(t, KnotVector{0, 0, 0.2, 0.3, 0.7, 0.8, 1, 1}, got)
	diff(t, orig, kv)

	diff(t, got, got.Normalize())
}

func TestKnotVectorNormalizeDegenerate(t *testing.T) {
	for _, kv := range []KnotVector{nil, {}, {3}, {2, 2, 2}} {
		got := kv.Normalize()
		if len(got) != len(kv) {
			t.Errorf("%v.Normalize() = %v", kv, got)
		}
		for i := range got {
			if got[i] != kv[i] {
				t.Errorf("%v.Normalize() = %v", kv, got)
			}
		}
	}
}

func TestKnotVectorMultiplicities(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()

	kv := KnotVector{0, 0, 0, 0.5, 0.5, 0.75, 1, 1, 1}
	want := []KnotMultiplicity{{0, 3}, {0.5, 2}, {0.75, 1}, {1, 3}}
	diff(t, want, kv.Multiplicities())
	if m := kv.Multiplicity(0.5); m != 2 {
		t.Errorf("multiplicity of 0.5 is %d, want 2", m)
	}
	if m := kv.Multiplicity(0.6); m != 0 {
		t.Errorf("multiplicity of 0.6 is %d, want 0", m)
	}
}

func TestKnotVectorSpan(t *testing.T) {
	kv := KnotVector{0, 0, 0, 1, 2, 3, 4, 4, 5, 5, 5}
	tests := []struct {
		u    float64
		want int
	}{
		{0, 2},
		{0.5, 2},
		{1, 3},
		{2.5, 4},
		{4, 7},
		{4.5, 7},
		{5, 7},
	}
	for _, tt := range tests {
		if got := kv.Span(2, tt.u); got != tt.want {
			t.Errorf("Span(2, %g) = %d, want %d", tt.u, got, tt.want)
		}
	}
}

func TestKnotVectorReversed(t *testing.T) {
	kv := KnotVector{0, 0, 0, 0.25, 1, 1, 1}
	diff(t, KnotVector{0, 0, 0, 0.75, 1, 1, 1}, kv.Reversed())
	diff(t, kv, kv.Reversed().Reversed())
}

func TestKnotVectorClone(t *testing.T) {
	kv := KnotVector{0, 0, 1, 1}
	cl := kv.Clone()
	cl[0] = 42
	if kv[0] != 0 {
		t.Error("clone shares memory with the original")
	}
}
