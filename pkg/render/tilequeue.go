// Package render drives the tile-parallel rendering pipeline: an
// atomic-counter work queue hands out scanline-ordered tiles to a fixed
// worker pool, each worker samples its pixels through the scene's
// integrator and accumulates into a tile-local film merged into the
// shared Film once done.
package render

import (
	"sync/atomic"

	"tracer/pkg/geom"
)

// Tile is one square region of the film, iterated in scanline order.
type Tile struct {
	Bounds geom.Bounds2i
}

// Pixels returns every pixel coordinate in the tile, in scanline order.
func (t Tile) Pixels() []geom.Point2i {
	w := t.Bounds.Max.X - t.Bounds.Min.X
	h := t.Bounds.Max.Y - t.Bounds.Min.Y
	out := make([]geom.Point2i, 0, w*h)
	for y := t.Bounds.Min.Y; y < t.Bounds.Max.Y; y++ {
		for x := t.Bounds.Min.X; x < t.Bounds.Max.X; x++ {
			out = append(out, geom.Point2i{X: x, Y: y})
		}
	}
	return out
}

// TileQueue splits a width x height image into tileSize x tileSize
// tiles (the final row/column of tiles may be smaller) and hands them
// out one at a time via Next, safe for concurrent callers.
type TileQueue struct {
	width, height, tileSize int
	numTilesX               int
	NumTiles                int
	counter                 int64
}

func NewTileQueue(width, height, tileSize int) *TileQueue {
	numTilesX := (width + tileSize - 1) / tileSize
	numTilesY := (height + tileSize - 1) / tileSize
	return &TileQueue{
		width: width, height: height, tileSize: tileSize,
		numTilesX: numTilesX,
		NumTiles:  numTilesX * numTilesY,
	}
}

// Next atomically claims the next tile, or reports done when every tile
// has been handed out.
func (q *TileQueue) Next() (Tile, bool) {
	c := atomic.AddInt64(&q.counter, 1) - 1
	if int(c) >= q.NumTiles {
		return Tile{}, false
	}
	tx := int(c) % q.numTilesX
	ty := int(c) / q.numTilesX
	x0 := tx * q.tileSize
	y0 := ty * q.tileSize
	x1 := x0 + q.tileSize
	y1 := y0 + q.tileSize
	if x1 > q.width {
		x1 = q.width
	}
	if y1 > q.height {
		y1 = q.height
	}
	return Tile{Bounds: geom.Bounds2i{Min: geom.Point2i{X: x0, Y: y0}, Max: geom.Point2i{X: x1, Y: y1}}}, true
}

// Done reports how many tiles have been claimed so far, for progress
// reporting.
func (q *TileQueue) Done() int {
	c := int(atomic.LoadInt64(&q.counter))
	if c > q.NumTiles {
		c = q.NumTiles
	}
	return c
}
