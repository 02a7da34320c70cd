// Package records defines the row representation shared by every pipeline
// stage: a Record is a map from canonical field name to value. A missing
// value is represented by nil (or an absent key); stages never substitute
// defaults for missing values unless their contract says so explicitly.
package records

import "strconv"

// Record is a single row keyed by canonical field name. Values are raw
// strings until coercion and typed (int, float64, string, nil) afterwards.
type Record map[string]any

// Missing reports whether the field is absent, nil, or an empty string.
func (r Record) Missing(field string) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return true
	}
	s, isStr := v.(string)
	return isStr && s == ""
}

// String returns the string value for field. ok is false when the field is
// missing or not a string.
func (r Record) String(field string) (string, bool) {
	v, exists := r[field]
	if !exists || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Float returns the field as float64, accepting int, int64, float64, and
// numeric strings. ok is false when the field is missing or not numeric.
func (r Record) Float(field string) (float64, bool) {
	v, exists := r[field]
	if !exists || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	}
	return 0, false
}

// Int returns the field as int, accepting int, int64, and float64 values
// that are exactly integral. ok is false otherwise.
func (r Record) Int(field string) (int, bool) {
	v, exists := r[field]
	if !exists || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t == float64(int(t)) {
			return int(t), true
		}
	}
	return 0, false
}

// Clone returns a shallow copy of the record. Values are shared; this is
// sufficient because pipeline values are immutable scalars.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
