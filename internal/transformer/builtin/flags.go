package builtin

import (
	"strings"

	"orderclean/pkg/records"
)

// Festival derives the 0/1 festival flag from the raw Yes/No text. Missing
// input and anything that is not a case-insensitive "yes" become 0, so the
// flag is never missing in the output.
type Festival struct {
	Field string
}

func (f Festival) Apply(in []records.Record) []records.Record {
	field := f.Field
	if field == "" {
		field = "is_festival"
	}
	for _, r := range in {
		v, ok := r[field]
		if !ok || v == nil {
			r[field] = 0
			continue
		}
		s, isStr := v.(string)
		if isStr && strings.EqualFold(strings.TrimSpace(s), "yes") {
			r[field] = 1
		} else {
			r[field] = 0
		}
	}
	return in
}
