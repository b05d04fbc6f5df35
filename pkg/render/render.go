package render

import (
	"runtime"
	"sync"

	"tracer/internal/rlog"
	"tracer/internal/stats"
	"tracer/pkg/film"
	"tracer/pkg/integrator"
	"tracer/pkg/sampler"
	"tracer/pkg/scene"
)

// Options configures one render pass; zero values are replaced with
// sensible defaults by Render.
type Options struct {
	NumWorkers      int
	TileSize        int
	SamplesPerPixel int

	// Stats, if non-nil, receives the detailed per-category counters
	// the render pass collects (rays traced, NaN-guarded samples);
	// nil skips the bookkeeping entirely.
	Stats *stats.Accumulator

	// Progress, if non-nil, is notified once per completed tile; nil
	// skips progress reporting entirely.
	Progress *ProgressReporter
}

func (o Options) withDefaults() Options {
	if o.NumWorkers <= 0 {
		o.NumWorkers = runtime.NumCPU()
	}
	if o.TileSize <= 0 {
		o.TileSize = 16
	}
	if o.SamplesPerPixel <= 0 {
		o.SamplesPerPixel = 16
	}
	return o
}

// Stats reports counters collected across every worker during a render
// pass.
type Stats struct {
	TilesRendered int
	SamplesTaken  int64
	NaNGuarded    int64
}

// Render dispatches every tile of f across Options.NumWorkers workers,
// each cloning samplerProto for its own decorrelated stream, sampling
// every pixel spp times through the integrator and depositing the
// result into a tile-local film merged back into f once the tile
// completes.
func Render(sc *scene.Scene, f *film.Film, integ integrator.Integrator, samplerProto sampler.Sampler, opts Options) Stats {
	opts = opts.withDefaults()
	integ.Preprocess(sc, samplerProto)

	queue := NewTileQueue(f.Width, f.Height, opts.TileSize)
	log := rlog.Component("render")
	log.Info("starting render", "tiles", queue.NumTiles, "workers", opts.NumWorkers, "spp", opts.SamplesPerPixel)

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		totalStats Stats
	)

	for w := 0; w < opts.NumWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			s := samplerProto.Clone(int64(workerID))
			workerLog := rlog.Worker(workerID)
			var local Stats

			for {
				tile, ok := queue.Next()
				if !ok {
					break
				}
				tf := film.NewTileFilm(tile.Bounds, f.Width, f.Height, f.Filter())
				for _, p := range tile.Pixels() {
					s.StartPixel(p)
					for {
						cs := s.GetCameraSample(p)
						ray, weight := sc.Camera.GenerateRay(cs)
						l := integ.Li(ray, sc, s, 0)
						local.SamplesTaken++
						if l.HasNaN() || l.R < 0 || l.G < 0 || l.B < 0 {
							local.NaNGuarded++
						} else if weight > 0 {
							tf.AddSample(cs.PFilm, l.Mul(weight))
						}
						if !s.StartNextSample() {
							break
						}
					}
				}
				f.Merge(tf)
				local.TilesRendered++
				done := queue.Done()
				workerLog.Debug("tile complete", "done", done, "total", queue.NumTiles)
				if opts.Progress != nil {
					opts.Progress.TileComplete(done)
				}
			}

			if local.NaNGuarded > 0 {
				workerLog.Error("discarded invalid radiance samples", "count", local.NaNGuarded)
			}

			mu.Lock()
			totalStats.TilesRendered += local.TilesRendered
			totalStats.SamplesTaken += local.SamplesTaken
			totalStats.NaNGuarded += local.NaNGuarded
			mu.Unlock()
		}(w)
	}

	wg.Wait()
	log.Info("render complete", "tiles", totalStats.TilesRendered, "samples", totalStats.SamplesTaken)

	if opts.Stats != nil {
		opts.Stats.ReportCounter("integrator/samples traced", uint64(totalStats.SamplesTaken))
		opts.Stats.ReportCounter("integrator/tiles rendered", uint64(totalStats.TilesRendered))
		opts.Stats.ReportPercentage("integrator/NaN-guarded samples", uint64(totalStats.NaNGuarded), uint64(totalStats.SamplesTaken))
	}

	return totalStats
}
