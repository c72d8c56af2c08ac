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

// Package testcases holds named geometries used by the tests, the
// benchmarks and the export tools.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single burn test.
type TestCase struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	Path   *path.Data // the geometry, in pixel coordinates
	Width  int        // raster width in pixels
	Height int        // raster height in pixels
	Op     Operation  // how to burn the path
}

// Operation is the burn operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill fills the closed subpaths of the path as polygon rings.
type Fill struct{}

func (Fill) isOperation() {}

// Line burns the subpaths as polylines.
type Line struct {
	AllTouched bool // visit every pixel the line passes through
}

func (Line) isOperation() {}

// Points burns every vertex of the path as a separate point.
type Points struct{}

func (Points) isOperation() {}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
