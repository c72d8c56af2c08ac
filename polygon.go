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
	"log/slog"
	"math"
	"slices"
)

// FillPolygon fills the multi-ring polygon g using the even-odd rule,
// sampling at pixel centers. Rings do not need to be closed explicitly.
//
// Spans are emitted in increasing row order. Within a row, runs along
// horizontal edges come first, followed by the interior spans in
// increasing column order. The row of every span is inside the raster;
// the columns may reach past the left or right edge. The value passed to
// emit is the first variant value of g, or 0 if g has none.
func (r *Rasterizer) FillPolygon(g *Geometry, emit SpanFunc) error {
	if err := r.check(g); err != nil {
		return err
	}
	if len(g.PartSizes) == 0 || r.outside(g) {
		return nil
	}

	n := g.NumVertices()
	value := g.variantAt(0)

	b := g.Bounds()
	yMin := int(max(math.Floor(b.LLy), 0))
	yMax := int(min(math.Floor(b.URy), float64(r.Height-1)))
	xMax := r.Width - 1

	// Columns are clamped to [-1, Width] before conversion to int. This
	// keeps every span the same after clipping to the raster.
	xLo, xHi := -1.0, float64(r.Width)

	if debugEnabled() {
		Logger().Debug("fill polygon",
			slog.Int("parts", len(g.PartSizes)),
			slog.Int("vertices", n),
			slog.Int("yMin", yMin),
			slog.Int("yMax", yMax))
	}

	// Every edge contributes at most one intersection per row, so n
	// entries are always enough.
	ints := make([]int, 0, n)

	for y := yMin; y <= yMax; y++ {
		dy := float64(y) + 0.5 // center of the scanline
		ints = ints[:0]

		start := 0
		for _, size := range g.PartSizes {
			for j := range size {
				// edge from the previous vertex to vertex j, where vertex 0
				// connects back to the last vertex of the ring
				ind1 := start + (j+size-1)%size
				ind2 := start + j

				dy1 := g.Y[ind1]
				dy2 := g.Y[ind2]
				if (dy1 < dy && dy2 < dy) || (dy1 > dy && dy2 > dy) {
					continue
				}

				var dx1, dx2 float64
				if dy1 < dy2 {
					dx1 = g.X[ind1]
					dx2 = g.X[ind2]
				} else if dy1 > dy2 {
					dy1, dy2 = dy2, dy1
					dx1 = g.X[ind2]
					dx2 = g.X[ind1]
				} else {
					// Horizontal edge on the scanline. Bottom edges are
					// filled here; top edges are covered by the spans of
					// the neighbouring edges.
					if g.X[ind1] > g.X[ind2] {
						hx1 := clampFloor(g.X[ind2]+0.5, xLo, xHi)
						hx2 := clampFloor(g.X[ind1]+0.5, xLo, xHi)
						if hx1 > xMax || hx2 <= 0 {
							continue
						}
						emit(y, hx1, hx2-1, value)
					}
					continue
				}

				if dy < dy2 && dy >= dy1 {
					x := (dy-dy1)*(dx2-dx1)/(dy2-dy1) + dx1
					ints = append(ints, clampFloor(x+0.5, xLo, xHi))
				}
			}
			start += size
		}

		slices.Sort(ints)
		emitSpans(y, ints, xMax, value, emit)
	}

	return nil
}

// emitSpans pairs up the sorted intersections of scanline y and emits the
// spans between them. Spans entirely left of the raster or starting right
// of xMax are skipped. An unpaired trailing intersection is dropped.
func emitSpans(y int, ints []int, xMax int, value float64, emit SpanFunc) {
	if len(ints)%2 != 0 {
		Logger().Warn("odd number of scanline intersections",
			slog.Int("y", y),
			slog.Int("count", len(ints)))
	}
	for i := 0; i+1 < len(ints); i += 2 {
		if ints[i] <= xMax && ints[i+1] > 0 {
			emit(y, ints[i], ints[i+1]-1, value)
		}
	}
}

// clampFloor returns floor(x) limited to the range [lo, hi], as an int.
func clampFloor(x, lo, hi float64) int {
	return int(max(lo, min(math.Floor(x), hi)))
}
