package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"orderclean/internal/schema"
)

// WriteDictionary renders the field dictionary as a two-column CSV in
// canonical column order.
func WriteDictionary(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"column", "description"}); err != nil {
		return fmt.Errorf("output: write dictionary header: %w", err)
	}
	for _, col := range schema.Columns {
		if err := cw.Write([]string{col, schema.Dictionary[col]}); err != nil {
			return fmt.Errorf("output: write dictionary row %s: %w", col, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDictionaryFile writes the dictionary to path.
func WriteDictionaryFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	werr := WriteDictionary(f)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}
