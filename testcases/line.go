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

import "seehuhn.de/go/geom/path"

// lineCases place all vertices at pixel centers and use an odd number of
// steps along the major axis of every segment. For such segments the
// Bresenham path never has to break a tie, and every pixel it visits
// contains a point of the segment.
var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Path:   polyline(1.5, 1.5, 50.5, 1.5),
		Width:  64,
		Height: 64,
		Op:     Line{},
	},
	{
		Name:   "vertical",
		Path:   polyline(7.5, 60.5, 7.5, 3.5),
		Width:  64,
		Height: 64,
		Op:     Line{},
	},
	{
		Name:   "shallow",
		Path:   polyline(2.5, 10.5, 59.5, 30.5),
		Width:  64,
		Height: 64,
		Op:     Line{},
	},
	{
		Name:   "steep_all_touched",
		Path:   polyline(40.5, 60.5, 30.5, 3.5),
		Width:  64,
		Height: 64,
		Op:     Line{AllTouched: true},
	},
	{
		Name:   "zigzag",
		Path:   polyline(4.5, 10.5, 11.5, 31.5, 20.5, 6.5, 41.5, 33.5, 58.5, 8.5),
		Width:  64,
		Height: 64,
		Op:     Line{},
	},
	{
		Name:   "zigzag_all_touched",
		Path:   polyline(4.5, 10.5, 11.5, 31.5, 20.5, 6.5, 41.5, 33.5, 58.5, 8.5),
		Width:  64,
		Height: 64,
		Op:     Line{AllTouched: true},
	},
	{
		Name:   "clipped",
		Path:   polyline(-1.5, -0.5, 65.5, 32.5),
		Width:  64,
		Height: 64,
		Op:     Line{AllTouched: true},
	},
	{
		Name:   "two_parts",
		Path:   twoLines(5.5, 5.5, 30.5, 12.5, 50.5, 60.5, 56.5, 9.5),
		Width:  64,
		Height: 64,
		Op:     Line{},
	},
	{
		Name:   "outside",
		Path:   polyline(70.5, 3.5, 90.5, 50.5),
		Width:  64,
		Height: 64,
		Op:     Line{AllTouched: true},
	},
}

// polyline builds an open path through the given x, y coordinate pairs.
func polyline(coords ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(coords[0], coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		p = p.LineTo(pt(coords[i], coords[i+1]))
	}
	return p
}

// twoLines builds a path with two separate line segments.
func twoLines(x1, y1, x2, y2, x3, y3, x4, y4 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		MoveTo(pt(x3, y3)).
		LineTo(pt(x4, y4))
}
