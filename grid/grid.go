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

// Package grid implements a float64 raster buffer which can be used as
// the target of burn.Rasterizer.Burn.
package grid

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
)

// MergeAlg selects how a burned value is combined with the existing
// pixel value.
type MergeAlg int

const (
	// Replace overwrites the pixel.
	Replace MergeAlg = iota

	// Add adds the burned value to the pixel.
	Add
)

// Grid is a Width×Height raster of float64 values in row-major order.
//
// Grid is not safe for concurrent use.
type Grid struct {
	Width, Height int

	// Pix holds the pixel values, row by row.
	Pix []float64

	// Count holds the number of times each pixel was burned.
	Count []int

	// Merge selects how burned values are combined with Pix.
	Merge MergeAlg

	// BurnValue is added to every value received from the rasterizer.
	// For geometries without variant values this is the value burned.
	BurnValue float64
}

// New allocates a zero-filled width×height grid.
func New(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
		Count:  make([]int, width*height),
	}
}

// Bounds returns the grid rectangle in pixel coordinates.
func (g *Grid) Bounds() rect.Rect {
	return rect.Rect{URx: float64(g.Width), URy: float64(g.Height)}
}

// Span burns the pixels xMin, ..., xMax of row y. Columns outside the
// grid are ignored.
func (g *Grid) Span(y, xMin, xMax int, value float64) {
	if y < 0 || y >= g.Height {
		return
	}
	xMin = max(xMin, 0)
	xMax = min(xMax, g.Width-1)
	row := y * g.Width
	for x := xMin; x <= xMax; x++ {
		g.burn(row+x, value)
	}
}

// Pixel burns a single pixel. Pixels outside the grid are ignored.
func (g *Grid) Pixel(y, x int, value float64) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.burn(y*g.Width+x, value)
}

func (g *Grid) burn(i int, value float64) {
	value += g.BurnValue
	switch g.Merge {
	case Add:
		g.Pix[i] += value
	default:
		g.Pix[i] = value
	}
	g.Count[i]++
}

// At returns the value of pixel (x, y).
func (g *Grid) At(x, y int) float64 {
	return g.Pix[y*g.Width+x]
}

// Touched reports whether pixel (x, y) was burned at least once.
func (g *Grid) Touched(x, y int) bool {
	return g.Count[y*g.Width+x] > 0
}

// Clear resets all pixels and counts to zero.
func (g *Grid) Clear() {
	clear(g.Pix)
	clear(g.Count)
}

// Image renders the grid as a grayscale image, mapping lo to black and hi
// to white. Each pixel becomes a scale×scale block, which helps when
// inspecting small test rasters.
func (g *Grid) Image(lo, hi float64, scale int) *image.Gray {
	src := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	span := hi - lo
	for y := range g.Height {
		for x := range g.Width {
			var c float64
			if span != 0 {
				c = (g.At(x, y) - lo) / span
			}
			c = max(0, min(1, c))
			src.SetGray(x, y, color.Gray{Y: uint8(math.Round(c * 255))})
		}
	}
	if scale <= 1 {
		return src
	}

	dst := image.NewGray(image.Rect(0, 0, g.Width*scale, g.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
