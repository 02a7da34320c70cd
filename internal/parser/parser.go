// Package parser defines the contract for turning raw source bytes into
// records. Concrete formats live in subpackages.
package parser

import (
	"io"

	"orderclean/pkg/records"
)

// Parser consumes an input stream and returns the parsed records along with
// the number of rows skipped as unparseable.
type Parser interface {
	Parse(r io.Reader) ([]records.Record, int, error)
}
