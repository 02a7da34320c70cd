package builtin

import (
	"strings"

	"orderclean/pkg/records"
)

// Resolution reports how a categorical value was produced. Making the
// pass-through case explicit keeps the open-lookup behavior visible to tests
// instead of silently returning raw strings.
type Resolution int

const (
	// ResolvedCanonical means the cleaned token matched the canonical table.
	ResolvedCanonical Resolution = iota
	// ResolvedPassThrough means the token was unseen and kept verbatim.
	ResolvedPassThrough
	// ResolvedDefault means the input was missing and the field default applied.
	ResolvedDefault
)

// Lookup is a closed categorical vocabulary with an open fallback: known
// tokens map to their canonical spelling, unseen tokens pass through
// unchanged, and missing input maps to Default.
type Lookup struct {
	// Noise lists substrings stripped from the raw token before lookup,
	// e.g. the "conditions" prefix on the weather column.
	Noise []string
	// Canonical maps cleaned tokens to canonical values.
	Canonical map[string]string
	// Default is the value for missing/empty input.
	Default string
}

// Resolve normalizes one raw value. v may be nil (missing) or a string.
func (l Lookup) Resolve(v any) (string, Resolution) {
	s, ok := v.(string)
	if !ok || s == "" {
		return l.Default, ResolvedDefault
	}
	for _, n := range l.Noise {
		s = strings.ReplaceAll(s, n, "")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return l.Default, ResolvedDefault
	}
	if canonical, ok := l.Canonical[s]; ok {
		return canonical, ResolvedCanonical
	}
	return s, ResolvedPassThrough
}

// Canonical vocabularies for the five categorical columns. The tables fix the
// raw dataset's known spellings: the "conditions" prefix on weather, the
// "Jam" traffic level, the "Metropolitian" typo, and lowercase vehicle names.
var (
	WeatherLookup = Lookup{
		Noise: []string{"conditions"},
		Canonical: map[string]string{
			"Sunny":      "Sunny",
			"Stormy":     "Stormy",
			"Cloudy":     "Cloudy",
			"Fog":        "Foggy",
			"Sandstorms": "Sandstorm",
			"Windy":      "Windy",
		},
		Default: "Unknown",
	}

	TrafficLookup = Lookup{
		Canonical: map[string]string{
			"Low":    "Low",
			"Medium": "Medium",
			"High":   "High",
			"Jam":    "Heavy",
		},
		Default: "Unknown",
	}

	CityLookup = Lookup{
		Canonical: map[string]string{
			"Urban":         "Urban",
			"Metropolitian": "Metropolitan",
			"Metropolitan":  "Metropolitan",
			"Semi-Urban":    "Semi-Urban",
		},
		Default: "Unknown",
	}

	OrderTypeLookup = Lookup{
		Canonical: map[string]string{
			"Meal":   "Meal",
			"Snack":  "Snack",
			"Drinks": "Drinks",
			"Buffet": "Buffet",
		},
		Default: "Other",
	}

	VehicleLookup = Lookup{
		Canonical: map[string]string{
			"motorcycle":       "Motorcycle",
			"scooter":          "Scooter",
			"electric_scooter": "Electric_Scooter",
			"bicycle":          "Bicycle",
		},
		Default: "Other",
	}
)

// Categories applies a Lookup per configured field, in place.
type Categories struct {
	Fields map[string]Lookup
}

// StandardCategories wires the five delivery-order vocabularies.
func StandardCategories() Categories {
	return Categories{Fields: map[string]Lookup{
		"weather":         WeatherLookup,
		"traffic_density": TrafficLookup,
		"city_type":       CityLookup,
		"order_type":      OrderTypeLookup,
		"vehicle_type":    VehicleLookup,
	}}
}

func (c Categories) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		for field, lookup := range c.Fields {
			v, _ := r[field]
			value, _ := lookup.Resolve(v)
			r[field] = value
		}
	}
	return in
}
