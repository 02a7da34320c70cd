package ints

import (
	"strings"
	"testing"
)

func TestExtractInts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []int
	}{
		{
			name: "empty string yields nil slice",
			in:   "",
			want: nil,
		},
		{
			name: "no digits yields nil slice",
			in:   "conditions Sunny",
			want: nil,
		},
		{
			name: "duration cell",
			in:   "(min) 24",
			want: []int{24},
		},
		{
			name: "multiple runs separated by text",
			in:   "a12b34c 56",
			want: []int{12, 34, 56},
		},
		{
			name: "leading and trailing digits",
			in:   "123abc456",
			want: []int{123, 456},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractInts(tt.in)
			if err != nil {
				t.Fatalf("ExtractInts(%q) error = %v, want nil", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractInts(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ExtractInts(%q) = %#v, want %#v", tt.in, got, tt.want)
				}
			}
		})
	}
}

// A run that overflows int must not surface an error; the whole cell is
// treated as unusable instead.
func TestExtractIntsOverflowFailsSoft(t *testing.T) {
	t.Parallel()

	in := "prefix " + strings.Repeat("9", 40) + " suffix"
	got, err := ExtractInts(in)
	if err != nil {
		t.Fatalf("ExtractInts(%q) error = %v, want nil", in, err)
	}
	if got != nil {
		t.Fatalf("ExtractInts(%q) = %#v, want nil", in, got)
	}
}

func TestFirst(t *testing.T) {
	t.Parallel()

	if n, ok := First("(min) 24"); !ok || n != 24 {
		t.Errorf("First((min) 24) = %d, %v", n, ok)
	}
	if n, ok := First("25 minutes"); !ok || n != 25 {
		t.Errorf("First(25 minutes) = %d, %v", n, ok)
	}
	if _, ok := First("NaN"); ok {
		t.Error("First(NaN) should not find a number")
	}
	if _, ok := First(""); ok {
		t.Error("First(empty) should not find a number")
	}
}
