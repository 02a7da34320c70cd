package builtin

import (
	"math"

	"orderclean/internal/geo"
	"orderclean/pkg/records"
)

// Derive computes the three derived columns from each record:
//
//	distance_km           - haversine distance restaurant -> delivery, 2 dp
//	efficiency_min_per_km - delivery_time / distance_km
//	time_period           - time-of-day bucket from order_hour
//
// All three degrade to the missing marker when their inputs are missing;
// efficiency is also missing when the distance is zero, never infinite.
type Derive struct{}

func (Derive) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		distance, haveDistance := distanceKm(r)
		if haveDistance {
			r["distance_km"] = distance
		} else {
			r["distance_km"] = nil
		}

		minutes, haveMinutes := r.Float("delivery_time")
		if haveMinutes && haveDistance && distance > 0 {
			r["efficiency_min_per_km"] = minutes / distance
		} else {
			r["efficiency_min_per_km"] = nil
		}

		if hour, ok := r.Int("order_hour"); ok {
			r["time_period"] = TimePeriod(hour)
		} else {
			r["time_period"] = "Unknown"
		}
	}
	return in
}

// distanceKm computes the rounded trip distance, or ok=false when any of the
// four coordinates is missing.
func distanceKm(r records.Record) (float64, bool) {
	rlat, ok1 := r.Float("restaurant_lat")
	rlng, ok2 := r.Float("restaurant_lng")
	dlat, ok3 := r.Float("delivery_lat")
	dlng, ok4 := r.Float("delivery_lng")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return 0, false
	}
	km := geo.Haversine(rlat, rlng, dlat, dlng)
	return math.Round(km*100) / 100, true
}

// TimePeriod buckets an hour of day into the five named periods. Boundaries
// are half-open: Morning [6,11), Lunch [11,14), Afternoon [14,17),
// Dinner [17,21), Late_Night otherwise.
func TimePeriod(hour int) string {
	switch {
	case hour >= 6 && hour < 11:
		return "Morning"
	case hour >= 11 && hour < 14:
		return "Lunch"
	case hour >= 14 && hour < 17:
		return "Afternoon"
	case hour >= 17 && hour < 21:
		return "Dinner"
	default:
		return "Late_Night"
	}
}
