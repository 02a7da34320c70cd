// Package ddl generates the MySQL CREATE TABLE statement for the cleaned
// delivery-order table: explicit column types per canonical field and the
// utf8mb4 character set expected by the loader.
package ddl

import (
	"fmt"

	"orderclean/internal/ddl"
	"orderclean/internal/schema"
)

// TableOptions is the charset/collation trailer applied to the destination
// table.
const TableOptions = "CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci"

// sqlTypes maps canonical columns to their MySQL types. Identifier widths and
// decimal precisions follow the destination-table contract: ratings fit in
// DECIMAL(3,2), coordinates in DECIMAL(10,6), the festival flag in TINYINT.
var sqlTypes = map[string]string{
	"order_id":              "VARCHAR(50)",
	"rider_id":              "VARCHAR(50)",
	"rider_age":             "INT",
	"rider_rating":          "DECIMAL(3,2)",
	"restaurant_lat":        "DECIMAL(10,6)",
	"restaurant_lng":        "DECIMAL(10,6)",
	"delivery_lat":          "DECIMAL(10,6)",
	"delivery_lng":          "DECIMAL(10,6)",
	"order_date":            "DATE",
	"order_time":            "VARCHAR(20)",
	"pickup_time":           "VARCHAR(20)",
	"weather":               "VARCHAR(20)",
	"traffic_density":       "VARCHAR(20)",
	"vehicle_condition":     "INT",
	"order_type":            "VARCHAR(20)",
	"vehicle_type":          "VARCHAR(30)",
	"multi_delivery":        "INT",
	"city_type":             "VARCHAR(20)",
	"delivery_time":         "INT",
	"is_festival":           "TINYINT",
	"order_hour":            "INT",
	"pickup_hour":           "INT",
	"distance_km":           "DECIMAL(8,2)",
	"efficiency_min_per_km": "DECIMAL(10,4)",
	"time_period":           "VARCHAR(20)",
}

// TableFor builds the TableDef for the cleaned table under the given name,
// with columns in canonical schema order.
func TableFor(table string) (ddl.TableDef, error) {
	cols := make([]ddl.ColumnDef, 0, len(schema.Columns))
	for _, name := range schema.Columns {
		typ, ok := sqlTypes[name]
		if !ok {
			return ddl.TableDef{}, fmt.Errorf("mysql ddl: no type mapping for column %q", name)
		}
		cols = append(cols, ddl.ColumnDef{Name: name, SQLType: typ})
	}
	return ddl.TableDef{Name: table, Columns: cols, Options: TableOptions}, nil
}

// CreateTableSQL renders the full CREATE TABLE statement for table.
func CreateTableSQL(table string) (string, error) {
	td, err := TableFor(table)
	if err != nil {
		return "", err
	}
	return ddl.BuildCreateTableSQL(td)
}
