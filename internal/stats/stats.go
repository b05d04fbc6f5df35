// Package stats accumulates the counters, memory counters, integer
// distributions, percentages and ratios a render pass wants to report
// once finished (rays traced, BVH nodes visited, bytes of acceleration
// structure, shadow-ray hit rate, and so on). Each caller owns an
// explicit *Accumulator rather than reporting into a global singleton.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

type intDist struct {
	sum, count, min, max uint64
}

type fraction struct {
	num, denom uint64
}

// Accumulator collects every stat reported during one render pass.
// Safe for concurrent use. render.Render reports its totals into one
// Accumulator after all workers finish; Merge folds one Accumulator
// into another.
type Accumulator struct {
	mu               sync.Mutex
	counters         map[string]uint64
	memoryCounters   map[string]uint64
	intDistributions map[string]intDist
	percentages      map[string]fraction
	ratios           map[string]fraction
}

func New() *Accumulator {
	return &Accumulator{
		counters:         map[string]uint64{},
		memoryCounters:   map[string]uint64{},
		intDistributions: map[string]intDist{},
		percentages:      map[string]fraction{},
		ratios:           map[string]fraction{},
	}
}

func (a *Accumulator) ReportCounter(name string, value uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counters[name] += value
}

func (a *Accumulator) ReportMemoryCounter(name string, bytes uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.memoryCounters[name] += bytes
}

func (a *Accumulator) ReportIntDistribution(name string, sum, count, min, max uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	d, ok := a.intDistributions[name]
	if !ok {
		d = intDist{min: min, max: max}
	}
	d.sum += sum
	d.count += count
	if min < d.min {
		d.min = min
	}
	if max > d.max {
		d.max = max
	}
	a.intDistributions[name] = d
}

func (a *Accumulator) ReportPercentage(name string, num, denom uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	f := a.percentages[name]
	f.num += num
	f.denom += denom
	a.percentages[name] = f
}

func (a *Accumulator) ReportRatio(name string, num, denom uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	f := a.ratios[name]
	f.num += num
	f.denom += denom
	a.ratios[name] = f
}

// Merge folds other's counters into a, for combining per-worker
// accumulators into a single report at the end of a render.
func (a *Accumulator) Merge(other *Accumulator) {
	other.mu.Lock()
	defer other.mu.Unlock()
	for k, v := range other.counters {
		a.ReportCounter(k, v)
	}
	for k, v := range other.memoryCounters {
		a.ReportMemoryCounter(k, v)
	}
	for k, d := range other.intDistributions {
		a.ReportIntDistribution(k, d.sum, d.count, d.min, d.max)
	}
	for k, f := range other.percentages {
		a.ReportPercentage(k, f.num, f.denom)
	}
	for k, f := range other.ratios {
		a.ReportRatio(k, f.num, f.denom)
	}
}

// Report formats every nonzero stat as a human-readable multi-line
// string, sorted by name, grouped by category, printed once at the end
// of a render.
func (a *Accumulator) Report() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	var lines []string
	for name, v := range a.counters {
		if v == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-40s %12d", name, v))
	}
	for name, v := range a.memoryCounters {
		if v == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-40s %9.2f MiB", name, float64(v)/(1024*1024)))
	}
	for name, d := range a.intDistributions {
		if d.count == 0 {
			continue
		}
		avg := float64(d.sum) / float64(d.count)
		lines = append(lines, fmt.Sprintf("%-40s %.3f avg [range %d - %d]", name, avg, d.min, d.max))
	}
	for name, f := range a.percentages {
		if f.denom == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-40s %d / %d (%.2f%%)", name, f.num, f.denom, 100*float64(f.num)/float64(f.denom)))
	}
	for name, f := range a.ratios {
		if f.denom == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-40s %d:%d (%.2fx)", name, f.num, f.denom, float64(f.num)/float64(f.denom)))
	}
	sort.Strings(lines)
	return "Statistics:\n" + strings.Join(lines, "\n")
}
