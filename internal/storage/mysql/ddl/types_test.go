package ddl

import (
	"strings"
	"testing"

	"orderclean/internal/schema"
)

func TestTableForCoversAllColumns(t *testing.T) {
	td, err := TableFor("delivery_data")
	if err != nil {
		t.Fatalf("TableFor: %v", err)
	}
	if len(td.Columns) != len(schema.Columns) {
		t.Fatalf("got %d columns, want %d", len(td.Columns), len(schema.Columns))
	}
	for i, c := range td.Columns {
		if c.Name != schema.Columns[i] {
			t.Errorf("column %d = %q, want %q", i, c.Name, schema.Columns[i])
		}
	}
}

func TestCreateTableSQL(t *testing.T) {
	sql, err := CreateTableSQL("delivery_data")
	if err != nil {
		t.Fatalf("CreateTableSQL: %v", err)
	}
	for _, want := range []string{
		"CREATE TABLE delivery_data (",
		"order_id VARCHAR(50)",
		"rider_rating DECIMAL(3,2)",
		"restaurant_lat DECIMAL(10,6)",
		"order_date DATE",
		"is_festival TINYINT",
		"distance_km DECIMAL(8,2)",
		"CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci;",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("statement missing %q", want)
		}
	}
}
