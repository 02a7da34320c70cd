// Package ddl defines a small, backend-agnostic model for SQL DDL and a
// helper to render CREATE TABLE statements from that model.
//
// The package stays generic: it does not assume a SQL dialect, does not quote
// identifiers, and emits TableDef.Options verbatim after the column list.
// Backend-specific packages (e.g. internal/storage/mysql/ddl) adapt this
// model to their dialect.
package ddl

import (
	"fmt"
	"strings"
)

// ColumnDef describes a single column in a table definition.
type ColumnDef struct {
	// Name is the logical column name, emitted as-is.
	Name string
	// SQLType is the target SQL type (e.g. VARCHAR(50), INT, DECIMAL(10,6)).
	SQLType string
	// NotNull adds a NOT NULL constraint.
	NotNull bool
}

// TableDef holds a table name, an ordered list of columns, and an optional
// dialect-specific trailer (e.g. a character-set clause) emitted after the
// closing parenthesis.
type TableDef struct {
	Name    string
	Columns []ColumnDef
	Options string
}

// BuildCreateTableSQL renders a CREATE TABLE statement from a TableDef.
// Each column renders as "<Name> <SQLType> [NOT NULL]"; the statement ends
// with TableDef.Options (when set) and a semicolon.
func BuildCreateTableSQL(t TableDef) (string, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return "", fmt.Errorf("ddl: table name must not be empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("ddl: at least one column is required")
	}

	cols := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		colName := strings.TrimSpace(c.Name)
		if colName == "" {
			return "", fmt.Errorf("ddl: column with empty name in table %s", name)
		}
		typ := strings.TrimSpace(c.SQLType)
		if typ == "" {
			return "", fmt.Errorf("ddl: column %s missing SQLType", colName)
		}
		def := colName + " " + typ
		if c.NotNull {
			def += " NOT NULL"
		}
		cols = append(cols, def)
	}

	stmt := fmt.Sprintf("CREATE TABLE %s (\n    %s\n)", name, strings.Join(cols, ",\n    "))
	if opts := strings.TrimSpace(t.Options); opts != "" {
		stmt += " " + opts
	}
	return stmt + ";", nil
}
