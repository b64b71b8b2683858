package services

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   []float32
		expect float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, expect: 1},
		{name: "scaled", a: []float32{1, 2, 3}, b: []float32{2, 4, 6}, expect: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, expect: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, expect: -1},
		{name: "length mismatch", a: []float32{1, 2}, b: []float32{1, 2, 3}, expect: 0},
		{name: "empty", a: nil, b: nil, expect: 0},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CosineSimilarity(tt.a, tt.b); math.Abs(got-tt.expect) > 1e-9 {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestSimilarityPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cosine float64
		expect float64
	}{
		{cosine: 1, expect: 100},
		{cosine: 0.5, expect: 50},
		{cosine: 0, expect: 0},
		{cosine: -0.3, expect: 0},
		{cosine: 1.0000001, expect: 100},
		{cosine: math.NaN(), expect: 0},
	}

	for _, tt := range tests {
		if got := SimilarityPercentage(tt.cosine); math.Abs(got-tt.expect) > 1e-9 {
			t.Fatalf("cosine %v: expected %v, got %v", tt.cosine, tt.expect, got)
		}
	}
}
