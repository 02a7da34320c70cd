package metrics

import (
	"errors"
	"testing"
	"time"
)

// captureBackend records calls for assertions.
type captureBackend struct {
	counters  map[string]float64
	durations map[string]float64
	labels    map[string]Labels
	flushed   int
}

func newCapture() *captureBackend {
	return &captureBackend{
		counters:  make(map[string]float64),
		durations: make(map[string]float64),
		labels:    make(map[string]Labels),
	}
}

func (c *captureBackend) IncCounter(name string, delta float64, labels Labels) {
	c.counters[name] += delta
	c.labels[name] = labels
}

func (c *captureBackend) ObserveDuration(name string, value float64, labels Labels) {
	c.durations[name] = value
	c.labels[name] = labels
}

func (c *captureBackend) Flush() error {
	c.flushed++
	return nil
}

// restore resets the global backend after a test.
func restore(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { backend = nopBackend{} })
}

func TestNopBackendIsSafe(t *testing.T) {
	restore(t)
	RecordStage("job", "parse", nil, time.Second)
	RecordRows("job", "parsed", 10)
	if err := Flush(); err != nil {
		t.Errorf("Flush on nop backend: %v", err)
	}
}

func TestSetBackendNilKeepsExisting(t *testing.T) {
	restore(t)
	cap := newCapture()
	SetBackend(cap)
	SetBackend(nil)
	RecordRows("job", "parsed", 1)
	if cap.counters["clean_rows_total"] != 1 {
		t.Error("nil SetBackend should not replace the installed backend")
	}
}

func TestRecordStage(t *testing.T) {
	restore(t)
	cap := newCapture()
	SetBackend(cap)

	RecordStage("clean_en", "gate", errors.New("boom"), 2*time.Second)

	if cap.counters["clean_stage_total"] != 1 {
		t.Errorf("stage counter = %v", cap.counters)
	}
	if got := cap.labels["clean_stage_total"]["status"]; got != "failure" {
		t.Errorf("status = %q, want failure", got)
	}
	if cap.durations["clean_stage_duration_seconds"] != 2 {
		t.Errorf("duration = %v", cap.durations)
	}
}

func TestRecordRowsIgnoresNonPositive(t *testing.T) {
	restore(t)
	cap := newCapture()
	SetBackend(cap)

	RecordRows("job", "dropped", 0)
	RecordRows("job", "dropped", -5)
	if len(cap.counters) != 0 {
		t.Errorf("non-positive deltas should be ignored: %v", cap.counters)
	}
	RecordRows("job", "dropped", 3)
	if cap.counters["clean_rows_total"] != 3 {
		t.Errorf("counters = %v", cap.counters)
	}
}
