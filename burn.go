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

// Package burn converts vector geometry into the raster pixels it
// occupies ("burning" the geometry into a grid).
//
// Four scan converters are provided: [Rasterizer.FillPolygon] fills
// polygons by sampling pixel centers, [Rasterizer.Line] draws one pixel
// wide lines, [Rasterizer.LineAllTouched] visits every pixel a line passes
// through, and [Rasterizer.Points] burns single points. Results are
// delivered through callbacks; combining values and storing them is left
// to the caller. Package seehuhn.de/go/burn/grid provides a ready-made
// raster buffer.
package burn

//go:generate go run ./testcases/export

import (
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/path"
)

// Kind identifies how the vertices of a Geometry are interpreted.
type Kind int

const (
	// KindPoint treats every part as a single point.
	KindPoint Kind = iota

	// KindLine treats every part as an open polyline.
	KindLine

	// KindPolygon treats every part as a ring of a polygon.
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sink receives the output of Burn.
type Sink interface {
	// Span receives an inclusive run of pixels on row y. The columns may
	// extend beyond the raster.
	Span(y, xMin, xMax int, value float64)

	// Pixel receives a single pixel inside the raster.
	Pixel(y, x int, value float64)
}

// Burn rasterizes g into sink, choosing the scan converter from kind and
// r.AllTouched.
//
// Polygons are filled by sampling pixel centers. If r.AllTouched is set,
// the rings (including their implied closing edges) are additionally
// traced with LineAllTouched, so that every pixel touched by the polygon
// is burned. Pixels on the boundary may then be reported twice.
func (r *Rasterizer) Burn(g *Geometry, kind Kind, sink Sink) error {
	if debugEnabled() {
		Logger().Debug("burn",
			slog.String("kind", kind.String()),
			slog.Int("parts", len(g.PartSizes)),
			slog.Int("vertices", g.NumVertices()),
			slog.Bool("allTouched", r.AllTouched))
	}

	switch kind {
	case KindPoint:
		return r.Points(g, sink.Pixel)
	case KindLine:
		if r.AllTouched {
			return r.LineAllTouched(g, sink.Pixel)
		}
		return r.Line(g, sink.Pixel)
	case KindPolygon:
		if err := r.FillPolygon(g, sink.Span); err != nil {
			return err
		}
		if r.AllTouched {
			return r.LineAllTouched(g.closedRings(), sink.Pixel)
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// BurnPath flattens p using FlattenPath and burns the result into sink.
// The constant burn value is left to the sink.
func (r *Rasterizer) BurnPath(p *path.Data, kind Kind, sink Sink) error {
	return r.Burn(r.FlattenPath(p, kind), kind, sink)
}
