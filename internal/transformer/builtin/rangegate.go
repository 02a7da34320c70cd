package builtin

import (
	"fmt"

	"orderclean/internal/schema"
	"orderclean/pkg/records"
)

// RejectedRow describes a record dropped by the range gate, for optional
// reporting.
type RejectedRow struct {
	Raw records.Record
	// Field names the first contract field that failed.
	Field  string
	Reason string
}

// RangeGate is the single data-quality gate of the pipeline. A record is
// retained only if every contract field is present and inside its [Min,Max]
// domain; a missing value disqualifies the record rather than defaulting.
// Dropped records are counted and optionally handed to Reject.
type RangeGate struct {
	Contract schema.Contract
	Reject   func(RejectedRow)

	// Dropped accumulates across Apply calls.
	Dropped int
}

func (g *RangeGate) Apply(in []records.Record) []records.Record {
	out := in[:0]
	for _, rec := range in {
		if field, reason := g.check(rec); reason == "" {
			out = append(out, rec)
		} else {
			g.Dropped++
			if g.Reject != nil {
				g.Reject(RejectedRow{Raw: rec, Field: field, Reason: reason})
			}
		}
	}
	return out
}

// check returns empty strings when the record passes, or the first failing
// field and its reason otherwise.
func (g *RangeGate) check(r records.Record) (string, string) {
	for _, f := range g.Contract.Fields {
		v, ok := r.Float(f.Name)
		if !ok {
			if f.Required {
				return f.Name, fmt.Sprintf("field %q missing", f.Name)
			}
			continue
		}
		if f.HasRange && (v < f.Min || v > f.Max) {
			return f.Name, fmt.Sprintf("field %q = %v outside [%v,%v]", f.Name, v, f.Min, f.Max)
		}
	}
	return "", ""
}
