package metrics

import (
	"testing"
	"time"
)

func TestCollectorCounts(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(500, 20*time.Millisecond)
	c.Record(429, 5*time.Millisecond)
	c.RecordSettlement()
	c.RecordSettlement()

	snap := c.Snapshot()
	if snap["requestsTotal"].(uint64) != 3 {
		t.Fatalf("requestsTotal = %v", snap["requestsTotal"])
	}
	if snap["errorsTotal"].(uint64) != 1 {
		t.Fatalf("errorsTotal = %v", snap["errorsTotal"])
	}
	if snap["rateLimitedTotal"].(uint64) != 1 {
		t.Fatalf("rateLimitedTotal = %v", snap["rateLimitedTotal"])
	}
	if snap["settlementsTotal"].(uint64) != 2 {
		t.Fatalf("settlementsTotal = %v", snap["settlementsTotal"])
	}
}

func TestSnapshotAverageOnEmptyCollector(t *testing.T) {
	snap := New().Snapshot()
	if snap["avgDurationMs"].(float64) != 0 {
		t.Fatalf("avgDurationMs = %v, want 0", snap["avgDurationMs"])
	}
}
