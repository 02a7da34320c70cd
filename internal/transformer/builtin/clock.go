package builtin

import (
	"time"

	"orderclean/pkg/records"
)

const (
	rawDateLayout       = "02-01-2006"
	canonicalDateLayout = "2006-01-02"
	timeLayout          = "15:04:05"
)

// Clock parses and reformats the temporal columns: order_date moves from
// day-month-year to year-month-day, and the hour component of each HH:MM:SS
// time field is extracted into its companion hour column.
//
// Parse failures yield the missing marker, never the raw string: the
// order_date column is documented as YYYY-MM-DD and must not leak unparsed
// text. The original time strings are left untouched.
type Clock struct {
	// DateField is reformatted in place. Defaults to "order_date".
	DateField string
	// HourFields maps a time-of-day column to the hour column derived from
	// it, e.g. "order_time" -> "order_hour".
	HourFields map[string]string
}

// StandardClock covers the delivery-order temporal columns.
func StandardClock() Clock {
	return Clock{
		DateField: "order_date",
		HourFields: map[string]string{
			"order_time":  "order_hour",
			"pickup_time": "pickup_hour",
		},
	}
}

func (c Clock) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		if c.DateField != "" {
			if s, ok := r[c.DateField].(string); ok {
				if t, err := time.Parse(rawDateLayout, s); err == nil {
					r[c.DateField] = t.Format(canonicalDateLayout)
				} else {
					r[c.DateField] = nil
				}
			}
		}
		for timeField, hourField := range c.HourFields {
			s, ok := r[timeField].(string)
			if !ok {
				r[hourField] = nil
				continue
			}
			if t, err := time.Parse(timeLayout, s); err == nil {
				r[hourField] = t.Hour()
			} else {
				r[hourField] = nil
			}
		}
	}
	return in
}
