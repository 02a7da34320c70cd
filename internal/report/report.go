// Package report summarizes a cleaning run: how many rows survived each
// stage, summary statistics for the key numeric columns, and value counts for
// the categorical ones. The summary is what an operator reads to judge
// whether a run looked healthy before handing the file downstream.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-gota/gota/series"

	"orderclean/pkg/records"
)

// numericColumns are summarized with mean/min/max.
var numericColumns = []string{
	"delivery_time",
	"rider_age",
	"rider_rating",
	"distance_km",
}

// categoricalColumns get value counts.
var categoricalColumns = []string{
	"weather",
	"traffic_density",
	"order_type",
	"vehicle_type",
	"city_type",
	"time_period",
}

// Stat holds the summary for one numeric column.
type Stat struct {
	Column  string
	Count   int
	Missing int
	Mean    float64
	Min     float64
	Max     float64
}

// Summary is the full run report.
type Summary struct {
	// RowsParsed is the record count coming out of the parser.
	RowsParsed int
	// RowsSkipped counts malformed CSV lines the parser dropped.
	RowsSkipped int
	// RowsDropped counts records removed by the range gate.
	RowsDropped int
	// RowsOut is the final cleaned row count.
	RowsOut int

	// DropsByField counts gate drops by the first failing field.
	DropsByField map[string]int

	Stats  []Stat
	Counts map[string]map[string]int
}

// Build computes the summary over the cleaned records. The stage counters and
// drop breakdown are supplied by the caller since they are known only to the
// pipeline.
func Build(recs []records.Record, parsed, skipped, dropped int, dropsByField map[string]int) Summary {
	s := Summary{
		RowsParsed:   parsed,
		RowsSkipped:  skipped,
		RowsDropped:  dropped,
		RowsOut:      len(recs),
		DropsByField: dropsByField,
		Counts:       make(map[string]map[string]int),
	}

	for _, col := range numericColumns {
		s.Stats = append(s.Stats, columnStat(col, recs))
	}
	for _, col := range categoricalColumns {
		counts := make(map[string]int)
		for _, rec := range recs {
			if v, ok := rec.String(col); ok {
				counts[v]++
			}
		}
		s.Counts[col] = counts
	}
	return s
}

// columnStat summarizes one numeric column using a gota series, skipping
// missing values.
func columnStat(col string, recs []records.Record) Stat {
	vals := make([]float64, 0, len(recs))
	missing := 0
	for _, rec := range recs {
		f, ok := rec.Float(col)
		if !ok {
			missing++
			continue
		}
		vals = append(vals, f)
	}
	st := Stat{Column: col, Count: len(vals), Missing: missing}
	if len(vals) == 0 {
		return st
	}
	sr := series.New(vals, series.Float, col)
	st.Mean = sr.Mean()
	st.Min = sr.Min()
	st.Max = sr.Max()
	return st
}

// Render writes the summary in a fixed, human-readable layout. Categorical
// values print in sorted order so the output is stable across runs.
func (s Summary) Render(w io.Writer) {
	fmt.Fprintf(w, "rows: parsed=%d skipped=%d dropped=%d out=%d\n",
		s.RowsParsed, s.RowsSkipped, s.RowsDropped, s.RowsOut)
	if len(s.DropsByField) > 0 {
		fields := make([]string, 0, len(s.DropsByField))
		for f := range s.DropsByField {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		fmt.Fprintf(w, "dropped by:")
		for _, f := range fields {
			fmt.Fprintf(w, " %s=%d", f, s.DropsByField[f])
		}
		fmt.Fprintln(w)
	}
	for _, st := range s.Stats {
		fmt.Fprintf(w, "%-14s count=%d missing=%d mean=%.2f min=%.2f max=%.2f\n",
			st.Column, st.Count, st.Missing, st.Mean, st.Min, st.Max)
	}
	for _, col := range categoricalColumns {
		counts := s.Counts[col]
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(w, "%s:", col)
		for _, k := range keys {
			fmt.Fprintf(w, " %s=%d", k, counts[k])
		}
		fmt.Fprintln(w)
	}
}
