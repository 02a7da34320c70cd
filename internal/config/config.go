// Package config defines the canonical, JSON-serializable configuration model
// for the order-cleaning pipeline. It is intentionally small, explicit, and
// dependency-free so that pipeline files can be loaded from disk and passed
// through the program without additional glue code.
//
// Design goals:
//
//  1. Stability: changes to this package should be additive and backwards-
//     compatible whenever possible.
//  2. Clarity: field names in Go mirror the JSON structure used in the files
//     under configs/pipelines/*.json.
//  3. Minimalism: no third-party config libraries; decoding is performed by
//     the standard library, with a light Options helper for typed access.
//
// Example (trimmed):
//
//	{
//	  "job":      "clean_en",
//	  "source":   { "kind": "file", "file": { "path": "train.csv" } },
//	  "parser":   { "kind": "csv", "options": { "has_header": true } },
//	  "transform":[ { "kind": "dedup", "options": { "keys": ["order_id"] } } ],
//	  "output":   { "path": "clean_delivery_data_en.csv", "bom": true }
//	}
package config

import "encoding/json"

// Pipeline describes one cleaning run. It is the top-level object decoded
// from a pipeline file.
type Pipeline struct {
	// Job names the run for logs and metrics labels.
	Job string `json:"job"`

	// Source describes where input data comes from (local file).
	Source Source `json:"source"`

	// Parser configures how raw bytes are turned into records (CSV).
	Parser Parser `json:"parser"`

	// Transform lists extra transformations appended to the standard cleaning
	// chain. Each transform has a kind and an options bag whose shape is
	// defined by the transform implementation. The standard chain (scrub,
	// coerce, categories, festival, clock, gate, derive) always runs and does
	// not need to be listed.
	Transform []Transform `json:"transform"`

	// Output configures the cleaned CSV and its side files.
	Output Output `json:"output"`

	// Storage optionally configures a relational sink for the cleaned table.
	Storage Storage `json:"storage"`

	// Runtime controls batching for the relational load.
	Runtime Runtime `json:"runtime"`
}

// Source identifies the data source.
type Source struct {
	// Kind selects the source implementation. Current value: "file".
	Kind string `json:"kind"`

	// File carries options for the "file" source kind.
	File SourceFile `json:"file"`
}

// SourceFile holds configuration for the "file" source kind.
type SourceFile struct {
	Path string `json:"path"`
}

// Parser selects how to parse the raw source into records.
type Parser struct {
	// Kind selects the parser implementation. Current value: "csv".
	Kind string `json:"kind"`

	// Options is a free-form map interpreted by the parser implementation.
	// For CSV the keys are: has_header (bool), comma (string),
	// trim_space (bool).
	Options Options `json:"options"`
}

// Transform defines one optional transformation step.
type Transform struct {
	// Kind selects the transform implementation. Current value: "dedup".
	Kind string `json:"kind"`

	// Options is a free-form map interpreted by the selected transform.
	Options Options `json:"options"`
}

// Output configures the cleaned-table CSV writer.
type Output struct {
	// Path is the destination CSV file.
	Path string `json:"path"`

	// BOM prepends a UTF-8 byte-order marker (the general analysis variant).
	BOM bool `json:"bom"`

	// Null is the literal written for missing values. Empty string means the
	// field is left empty; the MySQL variant uses "NULL".
	Null string `json:"null"`

	// DictionaryPath, when set, writes the field dictionary as a second CSV.
	DictionaryPath string `json:"dictionary_path"`

	// DDLPath, when set, writes the MySQL CREATE TABLE statement to a file.
	DDLPath string `json:"ddl_path"`
}

// Storage selects the optional relational sink.
type Storage struct {
	// Kind selects the backend: "mysql", "sqlite", "postgres", or empty to
	// skip the relational load.
	Kind string `json:"kind"`

	// DB configures the selected backend.
	DB DBConfig `json:"db"`
}

// DBConfig configures a relational sink.
type DBConfig struct {
	// DSN is the driver connection string.
	DSN string `json:"dsn"`

	// Table is the destination table name.
	Table string `json:"table"`

	// AutoCreateTable creates the destination table from the generated DDL
	// before loading.
	AutoCreateTable bool `json:"auto_create_table"`
}

// Runtime controls batching for the relational load.
type Runtime struct {
	// BatchSize is the number of rows per INSERT batch. Zero means the
	// default of 500.
	BatchSize int `json:"batch_size"`
}

// Options is a small helper to fetch typed values from arbitrary JSON maps
// without introducing third-party configuration libraries. It performs only
// minimal type coercion and returns the provided default when a key is absent
// or of an unexpected type.
type Options map[string]any

// String returns the string value for key or def if key is missing or not a string.
func (o Options) String(key, def string) string {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Bool returns the bool value for key or def if key is missing or not a bool.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Int returns the int value for key or def. JSON numbers decode as float64,
// so this method accepts float64 and casts to int.
func (o Options) Int(key string, def int) int {
	if v, ok := o[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return def
}

// Rune returns the first rune of a string value for key, or def if key is
// missing or empty. Used for the CSV delimiter.
func (o Options) Rune(key string, def rune) rune {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok && len(s) > 0 {
			return []rune(s)[0]
		}
	}
	return def
}

// StringSlice returns a []string for key when the value is an array of
// strings (or interface values containing strings). Returns nil otherwise.
func (o Options) StringSlice(key string) []string {
	if v, ok := o[key]; ok {
		switch vv := v.(type) {
		case []any:
			out := make([]string, 0, len(vv))
			for _, x := range vv {
				if s, ok := x.(string); ok {
					out = append(out, s)
				}
			}
			return out
		case []string:
			return vv
		}
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler so that a missing or null
// "options" object decodes to a non-nil, empty Options map. This removes the
// need to nil-check Options at call sites.
func (o *Options) UnmarshalJSON(b []byte) error {
	var tmp map[string]any
	if len(b) == 0 || string(b) == "null" {
		*o = Options{}
		return nil
	}
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}
	*o = Options(tmp)
	return nil
}
