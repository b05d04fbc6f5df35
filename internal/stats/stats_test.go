package stats

import "testing"

func TestCounterAccumulates(t *testing.T) {
	a := New()
	a.ReportCounter("rays traced", 10)
	a.ReportCounter("rays traced", 5)
	if a.counters["rays traced"] != 15 {
		t.Fatalf("expected 15, got %d", a.counters["rays traced"])
	}
}

func TestIntDistributionTracksRange(t *testing.T) {
	a := New()
	a.ReportIntDistribution("bvh leaf size", 10, 2, 3, 7)
	a.ReportIntDistribution("bvh leaf size", 4, 1, 1, 4)
	d := a.intDistributions["bvh leaf size"]
	if d.sum != 14 || d.count != 3 || d.min != 1 || d.max != 7 {
		t.Fatalf("unexpected distribution: %+v", d)
	}
}

func TestMergeCombinesWorkerAccumulators(t *testing.T) {
	a, b := New(), New()
	a.ReportCounter("samples", 100)
	b.ReportCounter("samples", 50)
	a.Merge(b)
	if a.counters["samples"] != 150 {
		t.Fatalf("expected 150, got %d", a.counters["samples"])
	}
}

func TestReportSkipsZeroValues(t *testing.T) {
	a := New()
	a.ReportCounter("zero", 0)
	a.ReportCounter("nonzero", 3)
	report := a.Report()
	if !contains(report, "nonzero") || contains(report, "\nzero ") {
		t.Fatalf("report did not filter zero stats: %s", report)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
