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
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/burn/testcases"
	"seehuhn.de/go/geom/path"
)

// oPath returns an "O" shape filling most of a size×size raster.
func oPath(size int) *path.Data {
	center := float64(size) / 2
	return testcases.Annulus(center, center, float64(size)*0.45, float64(size)*0.30)
}

// BenchmarkFillO benchmarks FillPolygon drawing an "O" shape.
func BenchmarkFillO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			g := r.FlattenPath(oPath(size), KindPolygon)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.FillPolygon(g, func(y, xMin, xMax int, _ float64) {
					xMin = max(xMin, 0)
					xMax = min(xMax, size-1)
					row := dst.Pix[y*dst.Stride:]
					for x := xMin; x <= xMax; x++ {
						row[x] = 255
					}
				})
			}
		})
	}
}

// BenchmarkFlattenO benchmarks converting the "O" path into a Geometry.
func BenchmarkFlattenO(b *testing.B) {
	r := NewRasterizer(200, 200)
	p := oPath(200)

	b.ReportAllocs()
	for b.Loop() {
		r.FlattenPath(p, KindPolygon)
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			p := oPath(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addPathToVector(r, p)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addPathToVector replays p on a vector.Rasterizer.
func addPathToVector(r *vector.Rasterizer, p *path.Data) {
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c := p.Coords[coordIdx]
			r.MoveTo(float32(c.X), float32(c.Y))
			coordIdx++
		case path.CmdLineTo:
			c := p.Coords[coordIdx]
			r.LineTo(float32(c.X), float32(c.Y))
			coordIdx++
		case path.CmdQuadTo:
			c := p.Coords[coordIdx : coordIdx+2]
			r.QuadTo(float32(c[0].X), float32(c[0].Y), float32(c[1].X), float32(c[1].Y))
			coordIdx += 2
		case path.CmdCubeTo:
			c := p.Coords[coordIdx : coordIdx+3]
			r.CubeTo(float32(c[0].X), float32(c[0].Y),
				float32(c[1].X), float32(c[1].Y),
				float32(c[2].X), float32(c[2].Y))
			coordIdx += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}
