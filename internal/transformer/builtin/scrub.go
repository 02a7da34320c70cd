// Package builtin contains the reusable cleaning stages of the pipeline.
package builtin

import (
	"strings"

	"orderclean/pkg/records"
)

// nbspace is U+00A0 NO-BREAK SPACE, which shows up in hand-edited exports.
const nbspace = "\u00a0"

// Scrub normalizes every string field in place: NBSP becomes a plain space,
// surrounding whitespace is trimmed, and known null spellings ("nan", "NaN",
// padded variants) collapse to the nil missing marker. Empty strings also
// become nil so later stages only ever test one missing representation.
type Scrub struct{}

func (Scrub) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		for k, v := range r {
			s, ok := v.(string)
			if !ok {
				continue
			}
			s = strings.TrimSpace(strings.ReplaceAll(s, nbspace, " "))
			if s == "" || strings.EqualFold(s, "nan") {
				r[k] = nil
				continue
			}
			r[k] = s
		}
	}
	return in
}
