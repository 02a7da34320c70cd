// Package ints extracts integers embedded in free-form text. The raw delivery
// export wraps several numeric cells in text, e.g. "(min) 24" in the duration
// column, and these helpers pull the digits back out.
package ints

import (
	"strconv"
	"unicode"
)

// ExtractInts scans s and returns every contiguous digit run as an integer.
// Non-digit characters separate runs. When s contains no digits the result is
// nil, and a run that overflows int yields (nil, nil) rather than an error so
// callers can treat the whole cell as unusable without per-call error
// handling.
func ExtractInts(s string) ([]int, error) {
	var out []int
	var current []rune

	for _, r := range s {
		if unicode.IsDigit(r) {
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			n, err := strconv.Atoi(string(current))
			if err != nil {
				return nil, nil
			}
			out = append(out, n)
			current = nil
		}
	}
	if len(current) > 0 {
		n, err := strconv.Atoi(string(current))
		if err != nil {
			return nil, nil
		}
		out = append(out, n)
	}
	return out, nil
}

// First returns the first digit run in s, or ok=false when s contains no
// parseable number. This is the common case for the duration column, where
// only the leading number matters.
func First(s string) (int, bool) {
	ns, _ := ExtractInts(s)
	if len(ns) == 0 {
		return 0, false
	}
	return ns[0], true
}
