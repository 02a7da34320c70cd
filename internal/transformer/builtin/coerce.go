package builtin

import (
	"strconv"
	"strings"

	"orderclean/internal/parser/ints"
	"orderclean/pkg/records"
)

// Coerce converts raw string fields to typed values according to Types.
// Supported kinds:
//
//	"minutes" - first run of decimal digits in the text, parsed as int.
//	            Handles values like "(min) 25" or "25 minutes".
//	"int"     - integer parse, accepting integral decimals ("1.0" -> 1).
//	"float"   - decimal parse.
//
// Coercion is lenient: any parse failure replaces the value with nil rather
// than failing the record. Data-quality decisions belong to the range gate,
// not here.
type Coerce struct {
	Types map[string]string
}

func (c Coerce) Apply(in []records.Record) []records.Record {
	if len(c.Types) == 0 {
		return in
	}
	for _, r := range in {
		for field, kind := range c.Types {
			v, ok := r[field]
			if !ok || v == nil {
				continue
			}
			s, isStr := v.(string)
			if !isStr {
				continue
			}
			switch kind {
			case "minutes":
				if n, ok := ints.First(s); ok {
					r[field] = n
				} else {
					r[field] = nil
				}
			case "int":
				if n, err := strconv.Atoi(s); err == nil {
					r[field] = n
				} else if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
					r[field] = int(f)
				} else {
					r[field] = nil
				}
			case "float":
				if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
					r[field] = f
				} else {
					r[field] = nil
				}
			}
		}
	}
	return in
}
