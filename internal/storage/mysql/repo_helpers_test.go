package mysql

import (
	"context"
	"strings"
	"testing"
)

func TestNewRepositoryRejectsEmptyDSN(t *testing.T) {
	if _, _, err := NewRepository(context.Background(), Config{Table: "t"}); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}

func TestInsertRowsValidation(t *testing.T) {
	r := &Repository{cfg: Config{Table: "delivery_data"}}

	if _, err := r.InsertRows(context.Background(), nil, [][]any{{1}}); err == nil {
		t.Error("expected error for empty columns")
	}
	// Empty row set is a no-op, not an error, even without a connection.
	if n, err := r.InsertRows(context.Background(), []string{"a"}, nil); err != nil || n != 0 {
		t.Errorf("empty rows: n=%d err=%v", n, err)
	}
	if _, err := r.InsertRows(context.Background(), []string{"a", "b"}, [][]any{{1}}); err == nil {
		t.Error("expected error for width mismatch")
	}
	if err := func() error {
		_, err := r.InsertRows(context.Background(), []string{"a"}, [][]any{{1}, {2, 3}})
		return err
	}(); err == nil || !strings.Contains(err.Error(), "row 1") {
		t.Errorf("width mismatch should name the row: %v", err)
	}
}
