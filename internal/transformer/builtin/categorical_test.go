package builtin

import (
	"testing"

	"orderclean/pkg/records"
)

/*
TestLookupResolve pins the three-way resolution semantics: canonical match,
verbatim pass-through for unseen tokens, and the per-field default for
missing input.
*/
func TestLookupResolve(t *testing.T) {
	tests := []struct {
		name     string
		lookup   Lookup
		in       any
		want     string
		wantKind Resolution
	}{
		{"weather_noise_strip", WeatherLookup, "conditions Sunny", "Sunny", ResolvedCanonical},
		{"weather_fog_rename", WeatherLookup, "conditions Fog", "Foggy", ResolvedCanonical},
		{"weather_sandstorms", WeatherLookup, "conditions Sandstorms", "Sandstorm", ResolvedCanonical},
		{"weather_missing", WeatherLookup, nil, "Unknown", ResolvedDefault},
		{"weather_noise_only", WeatherLookup, "conditions", "Unknown", ResolvedDefault},
		{"traffic_jam", TrafficLookup, "Jam", "Heavy", ResolvedCanonical},
		{"traffic_passthrough", TrafficLookup, "Gridlock", "Gridlock", ResolvedPassThrough},
		{"city_typo_fix", CityLookup, "Metropolitian", "Metropolitan", ResolvedCanonical},
		{"city_semi_urban", CityLookup, "Semi-Urban", "Semi-Urban", ResolvedCanonical},
		{"order_default", OrderTypeLookup, nil, "Other", ResolvedDefault},
		{"vehicle_lowercase", VehicleLookup, "electric_scooter", "Electric_Scooter", ResolvedCanonical},
		{"vehicle_passthrough", VehicleLookup, "truck", "truck", ResolvedPassThrough},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind := tt.lookup.Resolve(tt.in)
			if got != tt.want || kind != tt.wantKind {
				t.Errorf("Resolve(%v) = (%q, %v), want (%q, %v)", tt.in, got, kind, tt.want, tt.wantKind)
			}
		})
	}
}

func TestCategoriesApply(t *testing.T) {
	r := records.Record{
		"weather":         "conditions Sunny",
		"traffic_density": "Jam",
		"city_type":       "Metropolitian",
		"order_type":      nil,
		"vehicle_type":    "scooter",
	}
	StandardCategories().Apply([]records.Record{r})

	want := map[string]string{
		"weather":         "Sunny",
		"traffic_density": "Heavy",
		"city_type":       "Metropolitan",
		"order_type":      "Other",
		"vehicle_type":    "Scooter",
	}
	for field, expect := range want {
		if r[field] != expect {
			t.Errorf("%s = %#v, want %q", field, r[field], expect)
		}
	}
}

// After normalization no categorical field may hold the literal "nan" or an
// empty string, regardless of raw input spelling.
func TestCategoriesNeverLeakMissingSpellings(t *testing.T) {
	raws := []any{nil, ""}
	for _, raw := range raws {
		for field, lookup := range StandardCategories().Fields {
			got, _ := lookup.Resolve(raw)
			if got == "" || got == "nan" {
				t.Errorf("%s: Resolve(%#v) leaked %q", field, raw, got)
			}
		}
	}
}
