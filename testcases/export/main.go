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

// Command export writes the test cases, together with the pixels burned
// for each of them, to testdata/testcases.json.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/burn"
	"seehuhn.de/go/burn/grid"
	"seehuhn.de/go/burn/testcases"
	"seehuhn.de/go/geom/path"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Path       []jsonSegment `json:"path"`
	Op         string        `json:"op"`
	AllTouched bool          `json:"all_touched,omitempty"`

	// Mask has one string per row, with '#' for burned pixels and '.'
	// for the others.
	Mask []string `json:"mask"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path),
	}

	r := burn.NewRasterizer(tc.Width, tc.Height)
	var kind burn.Kind
	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		kind = burn.KindPolygon
	case testcases.Line:
		jtc.Op = "line"
		jtc.AllTouched = op.AllTouched
		r.AllTouched = op.AllTouched
		kind = burn.KindLine
	case testcases.Points:
		jtc.Op = "points"
		kind = burn.KindPoint
	default:
		return jtc, fmt.Errorf("unknown operation %T", tc.Op)
	}

	g := grid.New(tc.Width, tc.Height)
	if err := r.BurnPath(tc.Path, kind, g); err != nil {
		return jtc, err
	}
	jtc.Mask = mask(g)
	return jtc, nil
}

func mask(g *grid.Grid) []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := range g.Height {
		b.Reset()
		for x := range g.Width {
			if g.Touched(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	coordIdx := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		var n int
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for i, pt := range p.Coords[coordIdx : coordIdx+n] {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		coordIdx += n
		segs = append(segs, seg)
	}
	return segs
}
