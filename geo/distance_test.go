package geo

import (
	"math"
	"testing"
)

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{12.9716, 77.5946, 13.0827, 80.2707},
		{51.5074, -0.1278, 40.7128, -74.0060},
		{-33.8688, 151.2093, 35.6762, 139.6503},
		{0.1, 0.1, -0.1, -0.1},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1], p[2], p[3])
		ba := Distance(p[2], p[3], p[0], p[1])

		if diff := math.Abs(ab - ba); diff > 1e-9*math.Max(ab, 1) {
			t.Errorf("Distance not symmetric: %f vs %f for %v", ab, ba, p)
		}
	}
}

func TestDistanceBengaluruChennai(t *testing.T) {
	// Bengaluru city center to Chennai city center
	d := Distance(12.9716, 77.5946, 13.0827, 80.2707)

	if d < 288.3 || d > 292.3 {
		t.Errorf("Expected ~290.3km, got %f", d)
	}
}

func TestDistanceZeroForSamePoint(t *testing.T) {
	if d := Distance(12.9716, 77.5946, 12.9716, 77.5946); d != 0 {
		t.Errorf("Expected 0 for identical points, got %f", d)
	}
}

func TestFormatDistance(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	nan := math.NaN()

	tests := []struct {
		km   *float64
		want string
	}{
		{f(0.5), "500m"},
		{f(1.0), "1.0km"},
		{f(999), "Unknown"},
		{f(1500), "Unknown"},
		{f(0.0234), "23m"},
		{f(2.55), "2.5km"},
		{nil, "Unknown"},
		{&nan, "Unknown"},
	}

	for _, tt := range tests {
		if got := FormatDistance(tt.km); got != tt.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tt.km, got, tt.want)
		}
	}
}

func TestIsValidCoordinate(t *testing.T) {
	tests := []struct {
		lat, lng float64
		want     bool
	}{
		{12.9716, 77.5946, true},
		{-90, 180, true},
		{90.0001, 0, false},
		{0, -180.0001, false},
		{0, 0, false},
		{math.NaN(), 77, false},
	}

	for _, tt := range tests {
		if got := IsValidCoordinate(tt.lat, tt.lng); got != tt.want {
			t.Errorf("IsValidCoordinate(%f, %f) = %v, want %v", tt.lat, tt.lng, got, tt.want)
		}
	}
}
