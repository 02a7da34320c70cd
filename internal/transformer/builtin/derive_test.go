package builtin

import (
	"math"
	"testing"

	"orderclean/pkg/records"
)

func tripRecord() records.Record {
	return records.Record{
		"restaurant_lat": 12.9352,
		"restaurant_lng": 77.6245,
		"delivery_lat":   13.0358,
		"delivery_lng":   77.5970,
		"delivery_time":  25,
		"order_hour":     13,
	}
}

func TestDeriveDistance(t *testing.T) {
	r := tripRecord()
	Derive{}.Apply([]records.Record{r})

	d, ok := r["distance_km"].(float64)
	if !ok {
		t.Fatalf("distance_km = %#v, want float64", r["distance_km"])
	}
	if math.Abs(d-11.98) > 0.05 {
		t.Errorf("distance_km = %v, want 11.98 +/- 0.05", d)
	}
	// Rounded to 2 decimal places.
	if d != math.Round(d*100)/100 {
		t.Errorf("distance_km = %v not rounded to 2 dp", d)
	}
}

func TestDeriveDistanceMissingCoordinates(t *testing.T) {
	r := tripRecord()
	r["delivery_lat"] = nil
	Derive{}.Apply([]records.Record{r})
	if r["distance_km"] != nil {
		t.Errorf("distance_km = %#v, want nil", r["distance_km"])
	}
	if r["efficiency_min_per_km"] != nil {
		t.Errorf("efficiency = %#v, want nil", r["efficiency_min_per_km"])
	}
}

func TestDeriveEfficiency(t *testing.T) {
	r := tripRecord()
	Derive{}.Apply([]records.Record{r})
	e, ok := r["efficiency_min_per_km"].(float64)
	if !ok {
		t.Fatalf("efficiency = %#v, want float64", r["efficiency_min_per_km"])
	}
	d := r["distance_km"].(float64)
	if math.Abs(e-25.0/d) > 1e-9 {
		t.Errorf("efficiency = %v, want %v", e, 25.0/d)
	}
}

// Zero distance (identical points) must yield a missing efficiency, never
// +Inf.
func TestDeriveEfficiencyZeroDistance(t *testing.T) {
	r := tripRecord()
	r["delivery_lat"] = 12.9352
	r["delivery_lng"] = 77.6245
	Derive{}.Apply([]records.Record{r})
	if r["distance_km"] != 0.0 {
		t.Errorf("distance_km = %#v, want 0", r["distance_km"])
	}
	if r["efficiency_min_per_km"] != nil {
		t.Errorf("efficiency = %#v, want nil", r["efficiency_min_per_km"])
	}
}

/*
TestTimePeriodBoundaries pins the half-open bucket boundaries exactly;
off-by-one at a boundary hour is a correctness bug.
*/
func TestTimePeriodBoundaries(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "Late_Night"},
		{6, "Morning"},
		{10, "Morning"},
		{11, "Lunch"},
		{13, "Lunch"},
		{14, "Afternoon"},
		{16, "Afternoon"},
		{17, "Dinner"},
		{20, "Dinner"},
		{21, "Late_Night"},
		{23, "Late_Night"},
		{0, "Late_Night"},
	}
	for _, tt := range tests {
		if got := TimePeriod(tt.hour); got != tt.want {
			t.Errorf("TimePeriod(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestDeriveTimePeriodMissingHour(t *testing.T) {
	r := tripRecord()
	r["order_hour"] = nil
	Derive{}.Apply([]records.Record{r})
	if r["time_period"] != "Unknown" {
		t.Errorf("time_period = %#v, want Unknown", r["time_period"])
	}
}
