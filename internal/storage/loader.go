// This file implements a generic, batched loader that feeds an in-memory row
// slice to a Repository in fixed-size batches. Backends implement InsertRows
// with their most efficient primitive (multi-row INSERT, COPY, transactional
// prepared statements).
package storage

import (
	"context"
	"fmt"
	"log"
	"time"
)

// DefaultBatchSize is used when the pipeline config does not set one.
const DefaultBatchSize = 500

// LoadRows inserts rows into repo in batches of batchSize and returns the
// total number of rows reported inserted. A batch failure aborts the load and
// returns the running total with the error; there is no retry.
func LoadRows(ctx context.Context, repo Repository, columns []string, rows [][]any, batchSize int) (int64, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("storage: columns must not be empty")
	}

	var (
		total   int64
		batches int
		start   = time.Now()
	)
	for off := 0; off < len(rows); off += batchSize {
		end := off + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		n, err := repo.InsertRows(ctx, columns, rows[off:end])
		total += n
		if err != nil {
			return total, fmt.Errorf("storage: batch %d failed after %d rows: %w", batches+1, total, err)
		}
		batches++
	}
	if batches > 0 {
		log.Printf("loader: inserted=%d batches=%d elapsed=%s",
			total, batches, time.Since(start).Truncate(time.Millisecond))
	}
	return total, nil
}
