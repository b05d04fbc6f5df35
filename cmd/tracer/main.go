// Command tracer renders a scene and writes the result to a PNG file.
// Scene description parsing is out of scope; this entry point
// assembles a small built-in demo scene (optionally loading a mesh from
// disk via internal/meshio) so the render pipeline has something to
// drive end to end, with an optional internal/display live-preview
// window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"strings"
	"time"

	"tracer/config"
	"tracer/internal/display"
	"tracer/internal/meshio"
	"tracer/internal/rlog"
	"tracer/internal/stats"
	"tracer/pkg/camera"
	"tracer/pkg/film"
	"tracer/pkg/geom"
	"tracer/pkg/integrator"
	"tracer/pkg/light"
	"tracer/pkg/material"
	"tracer/pkg/render"
	"tracer/pkg/sampler"
	"tracer/pkg/scene"
	"tracer/pkg/shape"
	"tracer/pkg/spectrum"
	"tracer/pkg/texture"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML render configuration file")
	output := flag.String("o", "", "output PNG path (overrides config)")
	width := flag.Int("width", 512, "image width in pixels")
	height := flag.Int("height", 512, "image height in pixels")
	spp := flag.Int("spp", 0, "samples per pixel (overrides config)")
	threads := flag.Int("threads", 0, "worker count, 0 = runtime.NumCPU()")
	quiet := flag.Bool("quiet", false, "only log warnings and errors")
	verbose := flag.Bool("verbose", false, "log debug detail")
	meshPath := flag.String("mesh", "", "optional .obj/.gltf/.glb mesh to place in the demo scene")
	preview := flag.Bool("preview", false, "open a live preview window while rendering")
	flag.Parse()

	switch {
	case *verbose:
		rlog.SetLevel(slog.LevelDebug)
	case *quiet:
		rlog.SetLevel(slog.LevelWarn)
	}
	log := rlog.Component("cmd")

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *output != "" {
		cfg.OutputPath = *output
	}
	if *spp > 0 {
		cfg.SamplesPerPixel = *spp
	}
	if *threads > 0 {
		cfg.Threads = *threads
	}

	sc, err := demoScene(*width, *height, *meshPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building scene: %v\n", err)
		os.Exit(1)
	}
	f := film.NewFilm(*width, *height, film.NewBoxFilter())
	integ := buildIntegrator(cfg)
	samplerProto := sampler.NewZeroTwoSequence(cfg.SamplesPerPixel, 1)
	acc := stats.New()

	numTiles := render.NewTileQueue(*width, *height, cfg.TileSize).NumTiles
	progress := render.NewProgressReporter(render.LogSink{}, numTiles)
	defer progress.Close()

	opts := render.Options{
		NumWorkers:      cfg.Threads,
		TileSize:        cfg.TileSize,
		SamplesPerPixel: cfg.SamplesPerPixel,
		Stats:           acc,
		Progress:        progress,
	}

	var r render.Stats
	if *preview {
		r = renderWithPreview(sc, f, integ, samplerProto, opts, *width, *height, log)
	} else {
		r = render.Render(sc, f, integ, samplerProto, opts)
	}
	log.Info("render finished", "tiles", r.TilesRendered, "samples", r.SamplesTaken)
	log.Debug(acc.Report())

	if err := writePNG(cfg.OutputPath, *width, *height, f.ToRGB()); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", cfg.OutputPath, err)
		os.Exit(1)
	}
}

// renderWithPreview runs the render pass on a background goroutine and
// drives an internal/display window on the calling goroutine, since the
// GL context must stay current on the thread that created it. It polls
// the film's current RGB buffer at a fixed cadence until the render
// finishes or the window is closed.
func renderWithPreview(sc *scene.Scene, f *film.Film, integ integrator.Integrator, samplerProto sampler.Sampler, opts render.Options, width, height int, log *slog.Logger) render.Stats {
	win, err := display.NewWindow("tracer preview", width, height)
	if err != nil {
		log.Warn("preview window unavailable, rendering headless", "error", err)
		return render.Render(sc, f, integ, samplerProto, opts)
	}
	defer win.Destroy()

	done := make(chan render.Stats, 1)
	go func() {
		done <- render.Render(sc, f, integ, samplerProto, opts)
	}()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case r := <-done:
			win.Blit(f.ToRGB())
			return r
		case <-ticker.C:
			if win.ShouldClose() {
				return <-done
			}
			win.Blit(f.ToRGB())
			win.PollEvents()
		}
	}
}

func buildIntegrator(cfg config.RenderConfig) integrator.Integrator {
	switch cfg.Integrator.Name {
	case "directlighting":
		strategy := integrator.UniformSampleOne
		if cfg.Integrator.LightStrategy == "uniformall" {
			strategy = integrator.UniformSampleAll
		}
		return integrator.NewDirectLighting(strategy, cfg.Integrator.MaxDepth)
	case "whitted":
		return integrator.NewWhitted(cfg.Integrator.MaxDepth)
	case "normal":
		return integrator.NewNormal()
	default:
		return integrator.NewPath(cfg.Integrator.MaxDepth, cfg.Integrator.RRThreshold)
	}
}

// demoScene assembles a matte sphere over a matte floor, lit by one
// point light, as a minimal end-to-end exercise of the render pipeline
// in the absence of an external scene-description parser. When
// meshPath is non-empty it's loaded via internal/meshio (.obj through
// LoadOBJ, .gltf/.glb through LoadGLTF) and replaces the sphere, placed
// with the same translation (y=1).
func demoScene(width, height int, meshPath string) (*scene.Scene, error) {
	cameraToWorld := geom.LookAt(
		geom.Vec3{X: 0, Y: 2, Z: -8},
		geom.Vec3{X: 0, Y: 0, Z: 0},
		geom.Vec3{Y: 1},
	).Inverse()
	cam := camera.NewPerspective(cameraToWorld, width, height, 40, 0, 1)

	b := scene.NewBuilder(cam)

	if meshPath != "" {
		meshes, err := loadMeshes(meshPath)
		if err != nil {
			return nil, err
		}
		meshMat := material.NewMatte(texture.ConstantSpectrum(spectrum.RGB(0.7, 0.2, 0.2)), nil, nil)
		for _, m := range meshes {
			tm := shape.NewTriangleMesh(geom.Translate(geom.Vec3{Y: 1}), m.P, m.N, m.UV, m.Indices)
			b.AddShape(shape.Triangles(tm, false), meshMat, nil, false)
		}
	} else {
		sph := shape.NewSphere(geom.Translate(geom.Vec3{Y: 1}), false, 1)
		sphereMat := material.NewMatte(texture.ConstantSpectrum(spectrum.RGB(0.7, 0.2, 0.2)), nil, nil)
		b.AddShape([]shape.Shape{sph}, sphereMat, nil, false)
	}

	floor := shape.NewDisk(geom.Identity(), false, 0, 20, 0, 360)
	floorMat := material.NewMatte(texture.ConstantSpectrum(spectrum.Gray(0.4)), nil, nil)
	b.AddShape([]shape.Shape{floor}, floorMat, nil, false)

	b.AddLight(light.NewPointLight(geom.Point3{X: 2, Y: 5, Z: -3}, spectrum.Gray(80)))

	return b.Build(), nil
}

// loadMeshes dispatches to meshio.LoadOBJ or meshio.LoadGLTF by file
// extension.
func loadMeshes(path string) ([]*meshio.Mesh, error) {
	if strings.HasSuffix(path, ".gltf") || strings.HasSuffix(path, ".glb") {
		return meshio.LoadGLTF(path)
	}
	return meshio.LoadOBJ(path)
}

func writePNG(path string, width, height int, pixels []spectrum.Spectrum) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixels[y*width+x].ToSRGB8()
			img.Set(x, y, color.RGBA{R: c[0], G: c[1], B: c[2], A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
