package recommend

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestMean_OrderInvariant(t *testing.T) {
	a := Vector{1, 0, 3}
	b := Vector{0, 2, 1}

	ab := Mean([]Vector{a, b})
	ba := Mean([]Vector{b, a})

	if len(ab) != 3 || len(ba) != 3 {
		t.Fatalf("unexpected dims: %d, %d", len(ab), len(ba))
	}
	for i := range ab {
		if ab[i] != ba[i] {
			t.Fatalf("mean not order invariant at %d: %v vs %v", i, ab[i], ba[i])
		}
	}
	if !almostEqual(float64(ab[0]), 0.5) || !almostEqual(float64(ab[1]), 1) || !almostEqual(float64(ab[2]), 2) {
		t.Fatalf("unexpected mean: %v", ab)
	}
}

func TestMean_Degenerate(t *testing.T) {
	if Mean(nil) != nil {
		t.Fatalf("expected nil mean for empty input")
	}
	if Mean([]Vector{{1, 2}, {1}}) != nil {
		t.Fatalf("expected nil mean for mismatched dims")
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(Vector{3, 4})
	if !almostEqual(Norm(v), 1) {
		t.Fatalf("expected unit length, got %v", Norm(v))
	}

	zero := Vector{0, 0}
	if got := Normalize(zero); !almostEqual(Norm(got), 0) {
		t.Fatalf("zero vector should stay zero, got %v", got)
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{"identical", Vector{1, 2}, Vector{1, 2}, 1},
		{"orthogonal", Vector{1, 0}, Vector{0, 1}, 0},
		{"opposite", Vector{1, 0}, Vector{-1, 0}, -1},
		{"zero vector", Vector{0, 0}, Vector{1, 0}, 0},
		{"dim mismatch", Vector{1}, Vector{1, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Fatalf("Cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
