// Package transformer defines the transformation stage contract and the
// ordered chain that composes the cleaning pipeline.
package transformer

import "orderclean/pkg/records"

// Transformer is a single batch transformation over records. Implementations
// may mutate records in place and may return a shorter slice (filters).
type Transformer interface {
	Apply([]records.Record) []records.Record
}

// Chain is an ordered list of transformers applied left to right.
type Chain []Transformer

func (c Chain) Apply(in []records.Record) []records.Record {
	out := in
	for _, t := range c {
		out = t.Apply(out)
	}
	return out
}
