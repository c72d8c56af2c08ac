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

var pointCases = []TestCase{
	{
		Name:   "scattered",
		Path:   points(0.2, 0.7, 63.9, 63.1, 31.5, 12.25, 12, 40, 40.99, 7.01),
		Width:  64,
		Height: 64,
		Op:     Points{},
	},
	{
		Name:   "partly_outside",
		Path:   points(-0.5, 3, 64, 10, 5.5, 64.25, 20.5, 20.5, 3, -1e-9),
		Width:  64,
		Height: 64,
		Op:     Points{},
	},
}

// points builds a path whose vertices are the given x, y coordinate
// pairs. The vertices are joined into a single subpath; burned as points,
// the connecting segments are ignored.
func points(coords ...float64) *path.Data {
	return polyline(coords...)
}
