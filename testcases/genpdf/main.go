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

// Command genpdf draws the test cases for visual inspection. For every
// test case it writes a PDF showing the burned pixels with the input path
// drawn on top, and a PNG of the burned pixels alone.
// Run from the module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/burn"
	"seehuhn.de/go/burn/grid"
	"seehuhn.de/go/burn/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

const (
	refDir = "testdata/reference"

	// scale is the size of one raster pixel, in PDF points and in PNG
	// pixels.
	scale = 8
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			g, err := burnCase(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(tc, g, filepath.Join(refDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePNG(g, filepath.Join(refDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// burnCase burns a test case into a grid which counts how often each
// pixel was visited.
func burnCase(tc testcases.TestCase) (*grid.Grid, error) {
	r := burn.NewRasterizer(tc.Width, tc.Height)
	g := grid.New(tc.Width, tc.Height)
	g.Merge = grid.Add
	g.BurnValue = 1

	var kind burn.Kind
	switch op := tc.Op.(type) {
	case testcases.Fill:
		kind = burn.KindPolygon
	case testcases.Line:
		kind = burn.KindLine
		r.AllTouched = op.AllTouched
	case testcases.Points:
		kind = burn.KindPoint
	default:
		return nil, fmt.Errorf("unknown operation %T", tc.Op)
	}

	if err := r.BurnPath(tc.Path, kind, g); err != nil {
		return nil, err
	}
	return g, nil
}

func generatePDF(tc testcases.TestCase, g *grid.Grid, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width * scale),
		URy: float64(tc.Height * scale),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, float64(tc.Height * scale)})

	bbox := g.Bounds()
	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(bbox.LLx, bbox.LLy, bbox.URx-bbox.LLx, bbox.URy-bbox.LLy)
	page.Fill()

	// burned pixels; darker for pixels which were visited more than once
	for y := range g.Height {
		for x := range g.Width {
			switch n := g.Count[y*g.Width+x]; {
			case n == 0:
				continue
			case n == 1:
				page.SetFillColor(color.DeviceGray(0.6))
			default:
				page.SetFillColor(color.DeviceGray(0.3))
			}
			page.Rectangle(float64(x), float64(y), 1, 1)
			page.Fill()
		}
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1.0 / scale)
	page.SetLineCap(graphics.LineCapRound)

	// PDF has no quadratic curves
	for cmd, pts := range tc.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}

func writePNG(g *grid.Grid, pngPath string) error {
	hi := 0.0
	for _, v := range g.Pix {
		hi = max(hi, v)
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, g.Image(0, hi, scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
