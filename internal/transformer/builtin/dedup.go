package builtin

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"

	"orderclean/pkg/records"
)

// DeDup collapses intra-batch duplicates by a configured key. It is off by
// default in the shipped pipelines: order_id uniqueness is not a guarantee of
// this dataset, so de-duplication is an opt-in convenience for re-ingested
// exports.
//
// Policy selects the winner among duplicates: "keep-first" (default) or
// "keep-last". Records missing any key field are not part of the de-dup
// domain and pass through in their original position relative to winners.
type DeDup struct {
	Keys   []string
	Policy string
}

func (d DeDup) Apply(in []records.Record) []records.Record {
	if len(in) == 0 || len(d.Keys) == 0 {
		return in
	}
	keepLast := strings.EqualFold(strings.TrimSpace(d.Policy), "keep-last")

	type slot struct {
		rec   records.Record
		index int
	}
	winners := make(map[uint64]slot, len(in))
	var passthrough []slot

	for i, r := range in {
		key, ok := d.keyOf(r)
		if !ok {
			passthrough = append(passthrough, slot{rec: r, index: i})
			continue
		}
		prev, seen := winners[key]
		if !seen || keepLast {
			winners[key] = slot{rec: r, index: i}
		} else {
			_ = prev
		}
	}

	// Rebuild in original order: a record survives if it is the winning
	// occurrence of its key or was never keyed.
	keep := make(map[int]records.Record, len(winners)+len(passthrough))
	for _, s := range winners {
		keep[s.index] = s.rec
	}
	for _, s := range passthrough {
		keep[s.index] = s.rec
	}
	out := make([]records.Record, 0, len(keep))
	for i := range in {
		if r, ok := keep[i]; ok {
			out = append(out, r)
		}
	}
	return out
}

// keyOf hashes the concatenated key fields. ok is false when any key field is
// absent from the record.
func (d DeDup) keyOf(r records.Record) (uint64, bool) {
	var b strings.Builder
	for _, k := range d.Keys {
		v, ok := r[k]
		if !ok {
			return 0, false
		}
		if b.Len() > 0 {
			b.WriteByte('\x1f')
		}
		switch t := v.(type) {
		case nil:
			b.WriteByte('\x00')
		case string:
			b.WriteString(t)
		default:
			fmt.Fprint(&b, t)
		}
	}
	return xxh3.HashString(b.String()), true
}
