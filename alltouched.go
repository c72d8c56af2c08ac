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

import "math"

// LineAllTouched burns every part of g as a polyline, visiting every pixel
// which a segment passes through.
//
// The result usually contains the pixels that Line emits for the same
// geometry, for example when all vertices lie at pixel centers. This is
// not guaranteed in general: Line steps between the pixels containing the
// end points and can pick a pixel the segment does not enter.
//
// Segments are traversed from left to right, so for a segment running
// right-to-left the pixels (and interpolated values) come out in reverse
// order.
func (r *Rasterizer) LineAllTouched(g *Geometry, emit PixelFunc) error {
	if err := r.check(g); err != nil {
		return err
	}
	if r.outside(g) {
		return nil
	}

	interpolate := g.Variant != nil

	start := 0
	for _, size := range g.PartSizes {
		for j := start + 1; j < start+size; j++ {
			s := segment{
				x0: g.X[j-1], y0: g.Y[j-1], v0: g.variantAt(j - 1),
				x1: g.X[j], y1: g.Y[j], v1: g.variantAt(j),
			}
			r.touchSegment(s, interpolate, emit)
		}
		start += size
	}
	return nil
}

// segment is a line segment in pixel coordinates, with burn values at
// both ends.
type segment struct {
	x0, y0, v0 float64
	x1, y1, v1 float64
}

// touchSegment emits all pixels touched by a single segment.
func (r *Rasterizer) touchSegment(s segment, interpolate bool, emit PixelFunc) {
	w := float64(r.Width)
	h := float64(r.Height)

	// skip segments which are off the raster
	if (s.y0 < 0 && s.y1 < 0) || (s.y0 >= h && s.y1 >= h) ||
		(s.x0 < 0 && s.x1 < 0) || (s.x0 >= w && s.x1 >= w) {
		return
	}

	// proceed left to right
	if s.x0 > s.x1 {
		s.x0, s.x1 = s.x1, s.x0
		s.y0, s.y1 = s.y1, s.y0
		s.v0, s.v1 = s.v1, s.v0
	}

	switch {
	case math.Floor(s.x0) == math.Floor(s.x1):
		r.touchColumn(s, interpolate, emit)
	case math.Floor(s.y0) == math.Floor(s.y1):
		r.touchRow(s, interpolate, emit)
	default:
		r.touchSloped(s, interpolate, emit)
	}
}

// touchColumn handles a segment which stays inside one pixel column.
func (r *Rasterizer) touchColumn(s segment, interpolate bool, emit PixelFunc) {
	if s.y1 < s.y0 {
		s.y0, s.y1 = s.y1, s.y0
		s.v0, s.v1 = s.v1, s.v0
	}

	if s.x0 < 0 || s.x0 >= float64(r.Width) {
		return
	}
	x := int(math.Floor(s.x0))

	// value change per unit step in y
	var dv float64
	if s.y1-s.y0 > 0 {
		dv = (s.v1 - s.v0) / (s.y1 - s.y0)
	}

	v := s.v0
	if s.y0 < 0 {
		v += dv * (0 - s.y0)
	}
	y := int(max(math.Floor(s.y0), 0))
	yEnd := int(min(math.Floor(s.y1), float64(r.Height-1)))

	for ; y <= yEnd; y++ {
		if interpolate {
			emit(y, x, v)
			v += dv
		} else {
			emit(y, x, 0)
		}
	}
}

// touchRow handles a segment which stays inside one pixel row.
// The caller guarantees s.x0 < s.x1.
func (r *Rasterizer) touchRow(s segment, interpolate bool, emit PixelFunc) {
	if s.y0 < 0 || s.y0 >= float64(r.Height) {
		return
	}
	y := int(math.Floor(s.y0))

	// value change per unit step in x
	dv := (s.v1 - s.v0) / (s.x1 - s.x0)

	v := s.v0
	if s.x0 < 0 {
		v += dv * (0 - s.x0)
	}
	x := int(max(math.Floor(s.x0), 0))
	xEnd := int(min(math.Floor(s.x1), float64(r.Width-1)))

	for ; x <= xEnd; x++ {
		if interpolate {
			emit(y, x, v)
			v += dv
		} else {
			emit(y, x, 0)
		}
	}
}

// touchSloped handles the general case of a segment which crosses both
// column and row boundaries. The caller guarantees s.x0 < s.x1 and
// s.y0 != s.y1.
func (r *Rasterizer) touchSloped(s segment, interpolate bool, emit PixelFunc) {
	w := float64(r.Width)
	h := float64(r.Height)

	x, y, v := s.x0, s.y0, s.v0
	xEnd, yEnd := s.x1, s.y1

	slope := (yEnd - y) / (xEnd - x)
	dv := (s.v1 - s.v0) / (xEnd - x) // per unit step in x

	// clip in x
	if xEnd > w {
		yEnd -= (xEnd - w) * slope
		xEnd = w
	}
	if x < 0 {
		y += (0 - x) * slope
		v += dv * (0 - x)
		x = 0
	}

	// clip in y
	if yEnd > y {
		if y < 0 {
			diffX := (0 - y) / slope
			x += diffX
			v += dv * diffX
			y = 0
		}
		if yEnd >= h {
			xEnd -= (yEnd - h) / slope
			yEnd = h
		}
	} else {
		if y >= h {
			diffX := (h - y) / slope
			x += diffX
			v += dv * diffX
			y = h
		}
		if yEnd < 0 {
			xEnd -= (yEnd - 0) / slope
			yEnd = 0
		}
	}

	for x >= 0 && x < xEnd {
		ix := int(math.Floor(x))
		iy := int(math.Floor(y))

		// Clipping is not exact after many small steps, so check the row
		// again before emitting.
		if iy >= 0 && iy < r.Height && ix < r.Width {
			if interpolate {
				emit(iy, ix, v)
			} else {
				emit(iy, ix, 0)
			}
		}

		stepX := math.Floor(x+1) - x
		stepY := stepX * slope

		if int(math.Floor(y+stepY)) == iy {
			// next column, same row
		} else if slope < 0 {
			stepY = float64(iy) - y
			if stepY > -minAxisStep {
				stepY = -minAxisStep
			}
			stepX = stepY / slope
		} else {
			stepY = float64(iy+1) - y
			if stepY < minAxisStep {
				stepY = minAxisStep
			}
			stepX = stepY / slope
		}
		x += stepX
		y += stepY
		v += dv * stepX
	}
}
