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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FlattenPath converts a path into a Geometry in pixel-grid coordinates.
//
// Coordinates are mapped through r.CTM, and curves are replaced by line
// segments with an error of at most r.Flatness pixels. If r.Flatness is
// not positive, the default tolerance is used. Each MoveTo starts
// a new part. For KindPolygon the rings are left open: a ClosePath, or a
// final vertex which repeats the first vertex of the ring, does not add a
// vertex. For KindLine a ClosePath adds a segment back to the start of
// the subpath. For KindPoint every vertex becomes its own part.
//
// The returned geometry has no variant values.
func (r *Rasterizer) FlattenPath(p *path.Data, kind Kind) *Geometry {
	fl := flattener{r: r, g: &Geometry{}, kind: kind}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			fl.endPart()
			fl.current = p.Coords[coordIdx]
			fl.subpath = fl.current
			fl.addVertex(fl.current)
			coordIdx++

		case path.CmdLineTo:
			fl.lineTo(fl.current, p.Coords[coordIdx])
			fl.current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			r.flattenQuadratic(fl.current, p.Coords[coordIdx], p.Coords[coordIdx+1], fl.lineTo)
			fl.current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			r.flattenCubic(fl.current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], fl.lineTo)
			fl.current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if kind == KindLine && fl.current != fl.subpath {
				fl.lineTo(fl.current, fl.subpath)
			}
			fl.endPart()
			fl.current = fl.subpath

		default:
			Logger().Warn("skipping unknown path command", slog.Int("cmd", int(cmd)))
		}
	}
	fl.endPart()

	return fl.g
}

// flattener collects the parts of a Geometry while a path is walked.
type flattener struct {
	r    *Rasterizer
	g    *Geometry
	kind Kind

	current vec.Vec2 // current point (path space)
	subpath vec.Vec2 // subpath start (path space)

	partStart int  // index of the first vertex of the open part
	open      bool // whether a part is being collected
}

// lineTo is called for every line segment of the path. The start point
// is the end of the previous segment and is only needed when the segment
// starts without a preceding MoveTo.
func (fl *flattener) lineTo(from, to vec.Vec2) {
	if !fl.open && fl.kind != KindPoint {
		fl.addVertex(from)
	}
	fl.addVertex(to)
}

// addVertex appends a vertex, transformed to pixel coordinates.
func (fl *flattener) addVertex(p vec.Vec2) {
	ctm := fl.r.CTM
	x := ctm[0]*p.X + ctm[2]*p.Y + ctm[4]
	y := ctm[1]*p.X + ctm[3]*p.Y + ctm[5]

	g := fl.g
	if fl.kind == KindPoint {
		g.PartSizes = append(g.PartSizes, 1)
		g.X = append(g.X, x)
		g.Y = append(g.Y, y)
		return
	}

	if !fl.open {
		fl.partStart = len(g.X)
		fl.open = true
	}
	g.X = append(g.X, x)
	g.Y = append(g.Y, y)
}

// endPart finishes the current part, if any.
func (fl *flattener) endPart() {
	if !fl.open {
		return
	}
	fl.open = false

	g := fl.g
	if fl.kind == KindPolygon {
		// rings are implicitly closed
		n := len(g.X)
		if n-fl.partStart >= 2 && g.X[n-1] == g.X[fl.partStart] && g.Y[n-1] == g.Y[fl.partStart] {
			g.X = g.X[:n-1]
			g.Y = g.Y[:n-1]
		}
	}
	g.PartSizes = append(g.PartSizes, len(g.X)-fl.partStart)
}

// flatness returns the curve tolerance, falling back to the default when
// r.Flatness is not positive.
func (r *Rasterizer) flatness() float64 {
	if r.Flatness > 0 {
		return r.Flatness
	}
	return defaultFlatness
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4, measured in pixels
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if tol := r.flatness(); errDev > tol {
		n = int(math.Ceil(math.Sqrt(errDev / tol)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)) // P0 - 2*P1 + P2
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * r.flatness()))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
