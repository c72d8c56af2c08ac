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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrInvalidGeometry is returned when the part sizes of a Geometry do not
	// match its coordinate arrays.
	ErrInvalidGeometry = errors.New("burn: invalid geometry")

	// ErrEmptyRaster is returned when the raster has no pixels.
	ErrEmptyRaster = errors.New("burn: empty raster")

	// ErrUnknownKind is returned by Burn for an unsupported geometry kind.
	ErrUnknownKind = errors.New("burn: unknown geometry kind")
)

// Geometry is a multi-part geometry in pixel-grid coordinates, stored as
// flat coordinate arrays.
//
// The vertices of all parts are concatenated in part order. Polygon rings
// are not closed explicitly: the edge from the last vertex of a part back
// to its first vertex is implied.
type Geometry struct {
	// PartSizes holds the number of vertices in each part.
	PartSizes []int

	// X and Y hold the vertex coordinates. Both have length sum(PartSizes).
	X, Y []float64

	// Variant optionally holds one burn value per vertex, which is
	// interpolated along each primitive. Nil means the burn value is a
	// constant supplied by the consumer, and the rasterizers report 0.
	Variant []float64
}

// NumVertices returns the total number of vertices.
func (g *Geometry) NumVertices() int {
	return len(g.X)
}

// Validate checks that the part sizes agree with the coordinate arrays.
// The returned error wraps ErrInvalidGeometry.
func (g *Geometry) Validate() error {
	n := 0
	for i, size := range g.PartSizes {
		if size < 0 {
			return fmt.Errorf("%w: part %d has negative size %d", ErrInvalidGeometry, i, size)
		}
		n += size
	}
	if n != len(g.X) || n != len(g.Y) {
		return fmt.Errorf("%w: part sizes add up to %d, have %d x and %d y values",
			ErrInvalidGeometry, n, len(g.X), len(g.Y))
	}
	if g.Variant != nil && len(g.Variant) != n {
		return fmt.Errorf("%w: %d variant values for %d vertices",
			ErrInvalidGeometry, len(g.Variant), n)
	}
	return nil
}

// Bounds returns the bounding box of all vertices.
// The zero rectangle is returned for a geometry without vertices.
func (g *Geometry) Bounds() rect.Rect {
	if len(g.X) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: g.X[0], LLy: g.Y[0], URx: g.X[0], URy: g.Y[0]}
	for i := 1; i < len(g.X); i++ {
		b.LLx = min(b.LLx, g.X[i])
		b.URx = max(b.URx, g.X[i])
		b.LLy = min(b.LLy, g.Y[i])
		b.URy = max(b.URy, g.Y[i])
	}
	return b
}

// variantAt returns the burn value of vertex i, or 0 if the geometry has
// no per-vertex values.
func (g *Geometry) variantAt(i int) float64 {
	if g.Variant == nil {
		return 0
	}
	return g.Variant[i]
}

// closedRings returns a copy of g in which every part with at least two
// vertices has its first vertex repeated at the end. This turns polygon
// rings into closed polylines for the line rasterizers.
func (g *Geometry) closedRings() *Geometry {
	n := len(g.X) + len(g.PartSizes)
	res := &Geometry{
		PartSizes: make([]int, 0, len(g.PartSizes)),
		X:         make([]float64, 0, n),
		Y:         make([]float64, 0, n),
	}
	if g.Variant != nil {
		res.Variant = make([]float64, 0, n)
	}

	start := 0
	for _, size := range g.PartSizes {
		end := start + size
		res.X = append(res.X, g.X[start:end]...)
		res.Y = append(res.Y, g.Y[start:end]...)
		if g.Variant != nil {
			res.Variant = append(res.Variant, g.Variant[start:end]...)
		}
		if size >= 2 {
			res.X = append(res.X, g.X[start])
			res.Y = append(res.Y, g.Y[start])
			if g.Variant != nil {
				res.Variant = append(res.Variant, g.Variant[start])
			}
			size++
		}
		res.PartSizes = append(res.PartSizes, size)
		start = end
	}
	return res
}

// FromPoints returns a point geometry with one part per point.
// If values is non-nil, it must have the same length as pts and is used as
// the per-point burn value.
func FromPoints(pts []vec.Vec2, values []float64) *Geometry {
	g := &Geometry{
		PartSizes: make([]int, len(pts)),
		X:         make([]float64, len(pts)),
		Y:         make([]float64, len(pts)),
		Variant:   values,
	}
	for i, p := range pts {
		g.PartSizes[i] = 1
		g.X[i] = p.X
		g.Y[i] = p.Y
	}
	return g
}
