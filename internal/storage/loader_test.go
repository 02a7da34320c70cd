package storage

import (
	"context"
	"fmt"
	"testing"
)

// fakeRepo records batch sizes and can fail on a chosen batch.
type fakeRepo struct {
	batches []int
	failOn  int // 1-based batch index; 0 = never
}

func (f *fakeRepo) InsertRows(_ context.Context, _ []string, rows [][]any) (int64, error) {
	f.batches = append(f.batches, len(rows))
	if f.failOn > 0 && len(f.batches) == f.failOn {
		return 0, fmt.Errorf("boom")
	}
	return int64(len(rows)), nil
}

func (f *fakeRepo) Exec(context.Context, string, ...any) error { return nil }
func (f *fakeRepo) Close()                                     {}

func makeRows(n int) [][]any {
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = []any{i}
	}
	return rows
}

func TestLoadRowsBatches(t *testing.T) {
	repo := &fakeRepo{}
	total, err := LoadRows(context.Background(), repo, []string{"n"}, makeRows(1050), 500)
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if total != 1050 {
		t.Errorf("total = %d, want 1050", total)
	}
	want := []int{500, 500, 50}
	if len(repo.batches) != len(want) {
		t.Fatalf("batches = %v, want %v", repo.batches, want)
	}
	for i, n := range want {
		if repo.batches[i] != n {
			t.Errorf("batch %d = %d, want %d", i, repo.batches[i], n)
		}
	}
}

func TestLoadRowsStopsOnError(t *testing.T) {
	repo := &fakeRepo{failOn: 2}
	total, err := LoadRows(context.Background(), repo, []string{"n"}, makeRows(1000), 400)
	if err == nil {
		t.Fatal("expected error")
	}
	if total != 400 {
		t.Errorf("total = %d, want 400 (first batch only)", total)
	}
	if len(repo.batches) != 2 {
		t.Errorf("attempted %d batches, want 2", len(repo.batches))
	}
}

func TestLoadRowsDefaultBatchSize(t *testing.T) {
	repo := &fakeRepo{}
	if _, err := LoadRows(context.Background(), repo, []string{"n"}, makeRows(10), 0); err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if len(repo.batches) != 1 || repo.batches[0] != 10 {
		t.Errorf("batches = %v", repo.batches)
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(context.Background(), Config{Kind: "orbital"}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
