// seehuhn.de/go/burn - scan conversion of vector geometry to raster grids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package burn

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// SpanFunc receives an inclusive run of pixels [xMin, xMax] on row y.
// The row is always inside the raster, but the column range may extend
// beyond the left or right raster edge; the receiver clips in x.
type SpanFunc func(y, xMin, xMax int, value float64)

// PixelFunc receives a single pixel. The pixel is always inside the raster.
type PixelFunc func(y, x int, value float64)

// Rasterizer converts geometries in pixel-grid coordinates into pixels
// and pixel spans on a Width×Height raster. Pixel (x, y) covers the unit
// square [x, x+1) × [y, y+1).
//
// A Rasterizer only holds configuration. All working buffers are local to
// a single call, so one Rasterizer may be used from several goroutines as
// long as its fields are not modified concurrently. Callbacks are invoked
// synchronously; callers writing into a shared buffer must serialize calls.
type Rasterizer struct {
	// Width and Height give the raster size in pixels. Both must be positive.
	Width, Height int

	// AllTouched selects the all-touched line rasterizer in Burn, and adds
	// an all-touched outline pass when burning polygons.
	AllTouched bool

	// CTM maps path coordinates to pixel-grid coordinates in FlattenPath.
	// Must be non-singular.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in FlattenPath, in
	// pixels. Values which are not positive select the default.
	Flatness float64
}

// NewRasterizer returns a Rasterizer for a width×height raster with an
// identity CTM and default flatness.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		Width:    width,
		Height:   height,
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

// Reset restores all fields to their defaults for a width×height raster.
func (r *Rasterizer) Reset(width, height int) {
	*r = Rasterizer{
		Width:    width,
		Height:   height,
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

// Bounds returns the raster rectangle [0, Width] × [0, Height].
func (r *Rasterizer) Bounds() rect.Rect {
	return rect.Rect{URx: float64(r.Width), URy: float64(r.Height)}
}

// check validates the raster size and the geometry before any callback is
// issued.
func (r *Rasterizer) check(g *Geometry) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyRaster, r.Width, r.Height)
	}
	return g.Validate()
}

// outside reports whether the bounding box of g misses the raster
// entirely, so that no pixel can be produced.
func (r *Rasterizer) outside(g *Geometry) bool {
	if len(g.X) == 0 {
		return true
	}
	b := g.Bounds()
	raster := r.Bounds()
	return b.URx < raster.LLx || b.URy < raster.LLy ||
		b.LLx >= raster.URx || b.LLy >= raster.URy
}

// Default values for rasterizer parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in pixels.
	defaultFlatness = 0.25
)

// Numerical tolerances.
const (
	// minAxisStep is the smallest y step taken by the all-touched walk
	// when moving to the next row. It keeps the walk moving when the
	// current position sits exactly on a row boundary.
	minAxisStep = 1e-9

	// lineMargin is the distance in pixels beyond the raster edge from
	// which Line clips segments before stepping.
	lineMargin = 2.0
)
