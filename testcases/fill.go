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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

// fillCases avoid placing pixel centers exactly on polygon edges, so that
// the expected result can be computed by a point-in-polygon test.
var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "ring",
		Path:   ringShape(32, 32, 22, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "clipped",
		Path:   rectangle(-20, 5.25, 80, 40.75),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "diamond",
		Path:   diamond(32.2, 31.9, 28.3, 25.1),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "circle",
		Path:   circle(32.3, 31.7, 20.2),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "annulus",
		Path:   Annulus(32.1, 31.8, 27.3, 13.4),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "overlapping",
		Path:   overlappingRectangles(8.2, 8.3, 40.1, 30.4, 24.6, 20.7, 56.3, 52.9),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "grid",
		Path:   rectangleGrid(4, 4, 64, 64, 2.25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "above",
		Path:   rectangle(5, -30, 50, -2),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	var pts [5]struct{ x, y float64 }
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i].x = cx + r*math.Cos(angle)
		pts[i].y = cy + r*math.Sin(angle)
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	p := (&path.Data{}).MoveTo(pt(pts[0].x, pts[0].y))
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pt(pts[i].x, pts[i].y))
	}
	return p.Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// ringShape builds a square with a square hole.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx-outerSize, cy-outerSize)).
		LineTo(pt(cx+outerSize, cy-outerSize)).
		LineTo(pt(cx+outerSize, cy+outerSize)).
		LineTo(pt(cx-outerSize, cy+outerSize)).
		Close().
		MoveTo(pt(cx-innerSize, cy-innerSize)).
		LineTo(pt(cx-innerSize, cy+innerSize)).
		LineTo(pt(cx+innerSize, cy+innerSize)).
		LineTo(pt(cx+innerSize, cy-innerSize)).
		Close()
}

// diamond builds a rhombus with the given half diagonals.
func diamond(cx, cy, rx, ry float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-ry)).
		LineTo(pt(cx+rx, cy)).
		LineTo(pt(cx, cy+ry)).
		LineTo(pt(cx-rx, cy)).
		Close()
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	return addCircle(&path.Data{}, cx, cy, r)
}

// Annulus builds a ring between two concentric circles, as two subpaths.
// Filled with the even-odd rule, the inner disk is left empty.
func Annulus(cx, cy, outerR, innerR float64) *path.Data {
	p := addCircle(&path.Data{}, cx, cy, outerR)
	return addCircle(p, cx, cy, innerR)
}

// addCircle appends a circle as a closed subpath to p.
func addCircle(p *path.Data, cx, cy, r float64) *path.Data {
	k := r * kappa

	return p.
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}

// overlappingRectangles builds two overlapping rectangles as separate
// rings. Under the even-odd rule the overlap is left empty.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1a, y1a)).
		LineTo(pt(x2a, y1a)).
		LineTo(pt(x2a, y2a)).
		LineTo(pt(x1a, y2a)).
		Close().
		MoveTo(pt(x1b, y1b)).
		LineTo(pt(x2b, y1b)).
		LineTo(pt(x2b, y2b)).
		LineTo(pt(x1b, y2b)).
		Close()
}

// rectangleGrid builds a grid of rectangles, one ring each.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}
	return p
}
