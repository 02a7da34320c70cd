package builtin

import (
	"reflect"
	"testing"

	"orderclean/pkg/records"
)

/*
TestScrubApply verifies the string normalization semantics:

  - surrounding whitespace is trimmed,
  - NBSP is replaced with a plain space (then trimmed at the edges),
  - empty strings and any spelling of "nan" collapse to nil,
  - non-string values are untouched.
*/
func TestScrubApply(t *testing.T) {
	tests := []struct {
		name string
		in   records.Record
		want records.Record
	}{
		{
			name: "trim",
			in:   records.Record{"a": "  Sunny ", "b": "\tJam\n"},
			want: records.Record{"a": "Sunny", "b": "Jam"},
		},
		{
			name: "null_spellings",
			in:   records.Record{"a": "NaN", "b": "nan", "c": "NaN ", "d": ""},
			want: records.Record{"a": nil, "b": nil, "c": nil, "d": nil},
		},
		{
			name: "nbsp",
			in:   records.Record{"a": nbspace + "Urban" + nbspace},
			want: records.Record{"a": "Urban"},
		},
		{
			name: "non_strings_untouched",
			in:   records.Record{"a": 3, "b": nil, "c": 1.5},
			want: records.Record{"a": 3, "b": nil, "c": 1.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scrub{}.Apply([]records.Record{tt.in})
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("got %#v, want %#v", got[0], tt.want)
			}
		})
	}
}
