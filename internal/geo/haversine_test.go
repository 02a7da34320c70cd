package geo

import (
	"math"
	"testing"
)

func TestHaversineZeroForIdenticalPoints(t *testing.T) {
	if d := Haversine(12.9352, 77.6245, 12.9352, 77.6245); d != 0 {
		t.Errorf("distance between identical points = %v, want 0", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{12.9352, 77.6245, 13.0358, 77.5970},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{0, 0, 0, 180},
	}
	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Haversine not symmetric for %v: %v vs %v", p, ab, ba)
		}
	}
}

// Koramangala to Yeshwanthpur, roughly 12 km across Bangalore.
func TestHaversineKnownDistance(t *testing.T) {
	d := Haversine(12.9352, 77.6245, 13.0358, 77.5970)
	if math.Abs(d-11.98) > 0.05 {
		t.Errorf("distance = %v km, want 11.98 +/- 0.05", d)
	}
}

func TestHaversineNeverNegative(t *testing.T) {
	coords := [][4]float64{
		{90, 0, -90, 0},
		{45.0, -120.0, 45.0, -120.0001},
		{-12.5, 130.8, -12.4, 130.9},
	}
	for _, p := range coords {
		if d := Haversine(p[0], p[1], p[2], p[3]); d < 0 || math.IsInf(d, 0) || math.IsNaN(d) {
			t.Errorf("Haversine(%v) = %v, want finite non-negative", p, d)
		}
	}
}
