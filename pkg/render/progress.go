package render

import "tracer/internal/rlog"

// ProgressSink receives a progress update each time a tile finishes.
// Implementations decide how (or whether) to surface it; Render never
// depends on a concrete one.
type ProgressSink interface {
	Report(done, total int)
}

// LogSink reports progress through internal/rlog at info level.
type LogSink struct{}

func (LogSink) Report(done, total int) {
	rlog.Component("progress").Info("tiles complete", "done", done, "total", total)
}

// ProgressReporter decouples tile completion from progress reporting:
// workers push completed-tile counts onto a buffered channel and a
// single goroutine drains it into the Sink, so a slow or blocking Sink
// (a network call, a terminal redraw) never stalls a render worker.
type ProgressReporter struct {
	Sink ProgressSink

	events chan int
	done   chan struct{}
}

// NewProgressReporter starts the reporter's consumer goroutine. Call
// Close once the render pass finishes to drain remaining events and
// stop the goroutine.
func NewProgressReporter(sink ProgressSink, total int) *ProgressReporter {
	r := &ProgressReporter{
		Sink:   sink,
		events: make(chan int, 64),
		done:   make(chan struct{}),
	}
	go r.run(total)
	return r
}

func (r *ProgressReporter) run(total int) {
	defer close(r.done)
	for done := range r.events {
		r.Sink.Report(done, total)
	}
}

// TileComplete records that `done` of the render's total tiles have
// now finished. Safe for concurrent callers; never blocks the caller
// once the channel has spare capacity.
func (r *ProgressReporter) TileComplete(done int) {
	r.events <- done
}

// Close stops accepting events, waits for the consumer goroutine to
// drain the channel, and returns once every queued Report call has
// been made.
func (r *ProgressReporter) Close() {
	close(r.events)
	<-r.done
}
