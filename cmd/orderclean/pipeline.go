package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"orderclean/internal/config"
	"orderclean/internal/metrics"
	"orderclean/internal/output"
	csvparser "orderclean/internal/parser/csv"
	"orderclean/internal/report"
	"orderclean/internal/schema"
	"orderclean/internal/storage"
	mysqlddl "orderclean/internal/storage/mysql/ddl"
	"orderclean/internal/transformer"
	"orderclean/internal/transformer/builtin"
	"orderclean/pkg/records"
)

// standardTypes maps canonical fields to the coercion applied after the
// scrub. Everything else stays a string until the derive stage.
var standardTypes = map[string]string{
	"delivery_time":     "minutes",
	"rider_age":         "float",
	"rider_rating":      "float",
	"restaurant_lat":    "float",
	"restaurant_lng":    "float",
	"delivery_lat":      "float",
	"delivery_lng":      "float",
	"multi_delivery":    "int",
	"vehicle_condition": "int",
}

// defaultTable names the relational destination when no storage block sets
// one, used for the standalone DDL side file.
const defaultTable = "delivery_data"

// run executes one cleaning pipeline end to end: parse, clean, gate, derive,
// write the CSV and side files, and optionally load the relational sink.
// The run report is rendered to reportW.
func run(ctx context.Context, p config.Pipeline, reportW io.Writer) error {
	job := p.Job
	if job == "" {
		job = "orderclean"
	}

	// Parse.
	parseStart := time.Now()
	recs, skipped, err := parseSource(p)
	metrics.RecordStage(job, "parse", err, time.Since(parseStart))
	if err != nil {
		return err
	}
	parsed := len(recs)
	metrics.RecordRows(job, "parsed", int64(parsed))
	metrics.RecordRows(job, "skipped", int64(skipped))

	// Clean: the standard chain always runs, then any configured extras,
	// then the gate and the derive stage.
	cleanStart := time.Now()
	chain := transformer.Chain{
		builtin.Scrub{},
		builtin.Coerce{Types: standardTypes},
		builtin.StandardCategories(),
		builtin.Festival{},
		builtin.StandardClock(),
	}
	extras, err := configuredTransforms(p.Transform)
	if err != nil {
		metrics.RecordStage(job, "clean", err, time.Since(cleanStart))
		return err
	}
	chain = append(chain, extras...)
	recs = chain.Apply(recs)
	deduped := parsed - len(recs)
	metrics.RecordRows(job, "deduped", int64(deduped))
	metrics.RecordStage(job, "clean", nil, time.Since(cleanStart))

	// Gate and derive.
	dropsByField := make(map[string]int)
	gate := &builtin.RangeGate{
		Contract: schema.GateContract(),
		Reject:   func(r builtin.RejectedRow) { dropsByField[r.Field]++ },
	}
	recs = transformer.Chain{gate, builtin.Derive{}}.Apply(recs)
	metrics.RecordRows(job, "dropped", int64(gate.Dropped))

	// Write the cleaned CSV and its side files.
	writeStart := time.Now()
	n, err := output.WriteFile(p.Output.Path, recs, output.Options{
		BOM:  p.Output.BOM,
		Null: p.Output.Null,
	})
	metrics.RecordStage(job, "write", err, time.Since(writeStart))
	if err != nil {
		return err
	}
	metrics.RecordRows(job, "written", int64(n))
	log.Printf("wrote %d rows to %s", n, p.Output.Path)

	if p.Output.DictionaryPath != "" {
		if err := output.WriteDictionaryFile(p.Output.DictionaryPath); err != nil {
			return err
		}
		log.Printf("wrote dictionary to %s", p.Output.DictionaryPath)
	}
	if p.Output.DDLPath != "" {
		if err := writeDDLFile(p); err != nil {
			return err
		}
		log.Printf("wrote DDL to %s", p.Output.DDLPath)
	}

	// Optional relational load.
	if p.Storage.Kind != "" {
		loadStart := time.Now()
		loaded, err := loadStorage(ctx, p, recs)
		metrics.RecordStage(job, "load", err, time.Since(loadStart))
		if err != nil {
			return err
		}
		metrics.RecordRows(job, "loaded", loaded)
		log.Printf("loaded %d rows into %s table %s", loaded, p.Storage.Kind, p.Storage.DB.Table)
	}

	report.Build(recs, parsed, skipped, gate.Dropped, dropsByField).Render(reportW)
	return nil
}

// parseSource opens the configured file source and parses it into records.
func parseSource(p config.Pipeline) ([]records.Record, int, error) {
	f, err := os.Open(p.Source.File.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	parser := csvparser.NewParser(csvparser.Options{
		HasHeader: p.Parser.Options.Bool("has_header", true),
		Comma:     p.Parser.Options.Rune("comma", ','),
		TrimSpace: p.Parser.Options.Bool("trim_space", true),
		HeaderMap: schema.RenameMap,
	})
	recs, skipped, err := parser.Parse(f)
	if err != nil {
		return nil, 0, fmt.Errorf("parse source: %w", err)
	}
	return recs, skipped, nil
}

// configuredTransforms builds the optional transforms listed in the config.
func configuredTransforms(trs []config.Transform) ([]transformer.Transformer, error) {
	var out []transformer.Transformer
	for i, tr := range trs {
		switch tr.Kind {
		case "dedup":
			out = append(out, builtin.DeDup{
				Keys:   tr.Options.StringSlice("keys"),
				Policy: tr.Options.String("policy", "keep-first"),
			})
		default:
			return nil, fmt.Errorf("transform[%d]: unknown kind %q", i, tr.Kind)
		}
	}
	return out, nil
}

// writeDDLFile renders the MySQL CREATE TABLE statement to the configured
// path. The table name comes from the storage block when set.
func writeDDLFile(p config.Pipeline) error {
	table := p.Storage.DB.Table
	if table == "" {
		table = defaultTable
	}
	sql, err := mysqlddl.CreateTableSQL(table)
	if err != nil {
		return fmt.Errorf("build ddl: %w", err)
	}
	if err := os.WriteFile(p.Output.DDLPath, []byte(sql+"\n"), 0o644); err != nil {
		return fmt.Errorf("write ddl: %w", err)
	}
	return nil
}

// loadStorage opens the configured sink, optionally bootstraps the table, and
// loads the cleaned rows in batches.
func loadStorage(ctx context.Context, p config.Pipeline, recs []records.Record) (int64, error) {
	repo, err := storage.New(ctx, storage.Config{
		Kind:  p.Storage.Kind,
		DSN:   p.Storage.DB.DSN,
		Table: p.Storage.DB.Table,
	})
	if err != nil {
		return 0, err
	}
	defer repo.Close()

	if p.Storage.DB.AutoCreateTable {
		// The generated DDL is MySQL dialect; other backends must be
		// provisioned out of band.
		if p.Storage.Kind != "mysql" {
			return 0, fmt.Errorf("auto_create_table is only supported for mysql, not %q", p.Storage.Kind)
		}
		sql, err := mysqlddl.CreateTableSQL(p.Storage.DB.Table)
		if err != nil {
			return 0, fmt.Errorf("build ddl: %w", err)
		}
		if err := repo.Exec(ctx, sql); err != nil {
			return 0, fmt.Errorf("create table: %w", err)
		}
	}

	rows := make([][]any, len(recs))
	for i, rec := range recs {
		row := make([]any, len(schema.Columns))
		for j, col := range schema.Columns {
			row[j] = rec[col]
		}
		rows[i] = row
	}

	batchSize := p.Runtime.BatchSize
	if batchSize <= 0 {
		batchSize = storage.DefaultBatchSize
	}
	loaded, err := storage.LoadRows(ctx, repo, schema.Columns, rows, batchSize)
	if err != nil {
		return loaded, err
	}
	job := p.Job
	if job == "" {
		job = "orderclean"
	}
	metrics.RecordBatches(job, int64((len(rows)+batchSize-1)/batchSize))
	return loaded, nil
}
