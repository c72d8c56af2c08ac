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

// Points burns one pixel per part of g: the pixel containing vertex i is
// emitted for i = 0, ..., len(g.PartSizes)-1. This matches the vertices
// when every part holds a single point, as produced by FromPoints and by
// FlattenPath with KindPoint. Indices without a vertex and points outside
// the raster are skipped.
func (r *Rasterizer) Points(g *Geometry, emit PixelFunc) error {
	if err := r.check(g); err != nil {
		return err
	}
	w, h := float64(r.Width), float64(r.Height)
	for i := range min(len(g.PartSizes), len(g.X)) {
		x := math.Floor(g.X[i])
		y := math.Floor(g.Y[i])
		if 0 <= x && x < w && 0 <= y && y < h {
			emit(int(y), int(x), g.variantAt(i))
		}
	}
	return nil
}

// Line burns every part of g as a polyline, one pixel per step along the
// major axis of each segment (Bresenham). Both end pixels of a segment are
// included, so shared vertices are emitted twice.
//
// This only visits the stepped path between the pixels containing the
// segment end points. Use LineAllTouched to get every pixel the segment
// passes through. Segments reaching more than lineMargin pixels beyond
// the raster are first clipped, which can shift the stepped path by one
// pixel near the raster edge.
func (r *Rasterizer) Line(g *Geometry, emit PixelFunc) error {
	if err := r.check(g); err != nil {
		return err
	}
	if r.outside(g) {
		return nil
	}

	start := 0
	for _, size := range g.PartSizes {
		for j := start + 1; j < start+size; j++ {
			s := segment{
				x0: g.X[j-1], y0: g.Y[j-1], v0: g.variantAt(j - 1),
				x1: g.X[j], y1: g.Y[j], v1: g.variantAt(j),
			}
			if !r.clipLine(&s) {
				continue
			}
			r.bresenham(
				int(math.Floor(s.x0)), int(math.Floor(s.y0)),
				int(math.Floor(s.x1)), int(math.Floor(s.y1)),
				s.v0, s.v1,
				emit)
		}
		start += size
	}
	return nil
}

// clipLine cuts s to the raster rectangle grown by lineMargin pixels on
// every side, interpolating the values at the new end points. Segments
// which already lie inside that rectangle are left unchanged. The result
// is false if nothing of s is left.
func (r *Rasterizer) clipLine(s *segment) bool {
	xMin, yMin := -lineMargin, -lineMargin
	xMax := float64(r.Width) + lineMargin
	yMax := float64(r.Height) + lineMargin

	inside := func(x, y float64) bool {
		return x >= xMin && x <= xMax && y >= yMin && y <= yMax
	}
	if inside(s.x0, s.y0) && inside(s.x1, s.y1) {
		return true
	}

	// Liang-Barsky: s(t) = s0 + t*(s1-s0) for t in [t0, t1]
	dx := s.x1 - s.x0
	dy := s.y1 - s.y0
	t0, t1 := 0.0, 1.0
	for _, c := range [4][2]float64{
		{-dx, s.x0 - xMin},
		{dx, xMax - s.x0},
		{-dy, s.y0 - yMin},
		{dy, yMax - s.y0},
	} {
		p, q := c[0], c[1]
		if p == 0 {
			if q < 0 {
				return false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
	}

	x0, y0, v0 := s.x0, s.y0, s.v0
	dv := s.v1 - s.v0
	if t1 < 1 {
		s.x1 = x0 + t1*dx
		s.y1 = y0 + t1*dy
		s.v1 = v0 + t1*dv
	}
	if t0 > 0 {
		s.x0 = x0 + t0*dx
		s.y0 = y0 + t0*dy
		s.v0 = v0 + t0*dv
	}
	return true
}

// bresenham steps from pixel (x, y) to pixel (x1, y1), interpolating the
// value from v to v1.
func (r *Rasterizer) bresenham(x, y, x1, y1 int, v, v1 float64, emit PixelFunc) {
	dx := abs(x1 - x)
	dy := abs(y1 - y)

	xStep, yStep := 1, 1
	if x > x1 {
		xStep = -1
	}
	if y > y1 {
		yStep = -1
	}

	// Walk along the major axis, with (minor, major) pointing into x or y.
	major, minor := dx, dy
	pMajor, pMinor := &x, &y
	sMajor, sMinor := xStep, yStep
	if dx < dy {
		major, minor = dy, dx
		pMajor, pMinor = &y, &x
		sMajor, sMinor = yStep, xStep
	}

	minorErr := minor << 1
	majorErr := minorErr - major<<1
	e := minorErr - major

	var dv float64
	if major != 0 {
		dv = (v1 - v) / float64(major)
	}

	for range major + 1 {
		if 0 <= x && x < r.Width && 0 <= y && y < r.Height {
			emit(y, x, v)
		}
		v += dv
		*pMajor += sMajor
		if e > 0 {
			*pMinor += sMinor
			e += majorErr
		} else {
			e += minorErr
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
