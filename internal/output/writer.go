// Package output writes the cleaned delivery table to CSV in the canonical
// column order, plus the optional data-dictionary side file.
//
// Two encodings are supported, matching the two consumers of the table:
//
//   - the analysis variant writes a UTF-8 BOM so spreadsheet tools detect the
//     encoding, and leaves missing values empty;
//   - the load variant skips the BOM and writes an explicit null literal
//     ("NULL") that LOAD DATA INFILE understands.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"orderclean/internal/schema"
	"orderclean/pkg/records"
)

// Options controls the CSV encoding.
type Options struct {
	// BOM prepends a UTF-8 byte-order marker.
	BOM bool
	// Null is the literal written for missing values. Empty leaves the field
	// blank.
	Null string
}

// Write renders the records to w as CSV in schema.Columns order. Fields a
// record lacks are treated as missing. Returns the number of data rows
// written.
func Write(w io.Writer, recs []records.Record, opts Options) (int, error) {
	if opts.BOM {
		// The BOM variant of the x/text UTF-8 encoder emits the marker once
		// at the start of the stream.
		w = transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	}
	cw := csv.NewWriter(w)

	if err := cw.Write(schema.Columns); err != nil {
		return 0, fmt.Errorf("output: write header: %w", err)
	}

	row := make([]string, len(schema.Columns))
	for i, rec := range recs {
		for j, col := range schema.Columns {
			row[j] = formatValue(col, rec[col], opts.Null)
		}
		if err := cw.Write(row); err != nil {
			return i, fmt.Errorf("output: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return len(recs), fmt.Errorf("output: flush: %w", err)
	}
	return len(recs), nil
}

// WriteFile writes the cleaned table to path, creating or truncating it.
func WriteFile(path string, recs []records.Record, opts Options) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("output: create %s: %w", path, err)
	}
	n, werr := Write(f, recs, opts)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return n, werr
}

// fixedDecimals lists columns rendered with a fixed number of decimal places
// so the file round-trips byte-identically.
var fixedDecimals = map[string]int{
	"distance_km": 2,
}

// formatValue renders one cell. nil (missing) becomes the null literal.
func formatValue(col string, v any, null string) string {
	if v == nil {
		return null
	}
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return null
		}
		if d, ok := fixedDecimals[col]; ok {
			return strconv.FormatFloat(x, 'f', d, 64)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
