// Package config provides configuration models and helpers for cleaning
// pipelines.
//
// This file adds a lightweight linter for Pipeline values. It performs static
// checks over a decoded Pipeline and returns a list of issues (errors and
// warnings) that callers can surface in the CLI or tests.
package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates an error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a finding that is surfaced to users but does
	// not block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding for a Pipeline.
//
// Path is a dotted path into the config (e.g. "storage.kind",
// "transform[0].options.keys"). Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error where needed.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// storageKinds are the accepted relational sinks. The empty kind skips the
// relational load entirely.
var storageKinds = map[string]bool{"": true, "mysql": true, "sqlite": true, "postgres": true}

// transformKinds are the accepted optional transforms.
var transformKinds = map[string]bool{"dedup": true}

// ValidatePipeline performs static validation of a Pipeline. It does not
// mutate the pipeline; it returns a slice of Issue values. Callers decide
// whether warnings are fatal.
func ValidatePipeline(p Pipeline) []Issue {
	var issues []Issue

	if strings.TrimSpace(p.Job) == "" {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "job",
			Message:  "job is empty; logs and metrics will use the default run name",
		})
	}

	if p.Source.Kind != "file" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.kind",
			Message:  fmt.Sprintf("unknown source kind %q (want \"file\")", p.Source.Kind),
		})
	}
	if strings.TrimSpace(p.Source.File.Path) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.file.path",
			Message:  "input path must not be empty",
		})
	}

	if p.Parser.Kind != "csv" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "parser.kind",
			Message:  fmt.Sprintf("unknown parser kind %q (want \"csv\")", p.Parser.Kind),
		})
	}

	for i, tr := range p.Transform {
		path := fmt.Sprintf("transform[%d]", i)
		if !transformKinds[tr.Kind] {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path + ".kind",
				Message:  fmt.Sprintf("unknown transform kind %q", tr.Kind),
			})
			continue
		}
		if tr.Kind == "dedup" && len(tr.Options.StringSlice("keys")) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path + ".options.keys",
				Message:  "dedup requires at least one key field",
			})
		}
	}

	if strings.TrimSpace(p.Output.Path) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "output.path",
			Message:  "output path must not be empty",
		})
	}

	if !storageKinds[p.Storage.Kind] {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.kind",
			Message:  fmt.Sprintf("unknown storage kind %q", p.Storage.Kind),
		})
	}
	if p.Storage.Kind != "" {
		if strings.TrimSpace(p.Storage.DB.DSN) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.db.dsn",
				Message:  "dsn is required when a storage kind is set",
			})
		}
		if strings.TrimSpace(p.Storage.DB.Table) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.db.table",
				Message:  "table is required when a storage kind is set",
			})
		}
	}

	if p.Runtime.BatchSize < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "runtime.batch_size",
			Message:  "batch_size must not be negative",
		})
	}

	return issues
}
