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
	"bytes"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestFlattenRectangleCTM(t *testing.T) {
	r := NewRasterizer(20, 20)
	r.CTM = matrix.Matrix{2, 0, 0, 3, 1, -1}

	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(4, 0)).
		LineTo(pt(4, 2)).
		LineTo(pt(0, 2)).
		Close()
	g := r.FlattenPath(p, KindPolygon)

	if !slices.Equal(g.PartSizes, []int{4}) {
		t.Fatalf("part sizes %v, want [4]", g.PartSizes)
	}
	wantX := []float64{1, 9, 9, 1}
	wantY := []float64{-1, -1, 5, 5}
	if !slices.Equal(g.X, wantX) || !slices.Equal(g.Y, wantY) {
		t.Errorf("got X=%v Y=%v, want X=%v Y=%v", g.X, g.Y, wantX, wantY)
	}
	if g.Variant != nil {
		t.Errorf("unexpected variant values %v", g.Variant)
	}
}

func TestFlattenDropsClosingVertex(t *testing.T) {
	r := NewRasterizer(10, 10)
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(4, 0)).
		LineTo(pt(4, 4)).
		LineTo(pt(0, 0)).
		Close()

	g := r.FlattenPath(p, KindPolygon)
	if !slices.Equal(g.PartSizes, []int{3}) {
		t.Errorf("polygon part sizes %v, want [3]", g.PartSizes)
	}

	// as a line the repeated vertex is kept, and Close adds nothing
	g = r.FlattenPath(p, KindLine)
	if !slices.Equal(g.PartSizes, []int{4}) {
		t.Errorf("line part sizes %v, want [4]", g.PartSizes)
	}
}

func TestFlattenClose(t *testing.T) {
	r := NewRasterizer(10, 10)
	p := (&path.Data{}).
		MoveTo(pt(1, 1)).
		LineTo(pt(5, 1)).
		LineTo(pt(5, 5)).
		Close().
		MoveTo(pt(7, 7)).
		LineTo(pt(8, 9))

	cases := []struct {
		kind  Kind
		sizes []int
		x     []float64
	}{
		{KindPolygon, []int{3, 2}, []float64{1, 5, 5, 7, 8}},
		{KindLine, []int{4, 2}, []float64{1, 5, 5, 1, 7, 8}},
		{KindPoint, []int{1, 1, 1, 1, 1}, []float64{1, 5, 5, 7, 8}},
	}
	for _, c := range cases {
		g := r.FlattenPath(p, c.kind)
		if !slices.Equal(g.PartSizes, c.sizes) || !slices.Equal(g.X, c.x) {
			t.Errorf("%s: got sizes %v x %v, want %v %v", c.kind, g.PartSizes, g.X, c.sizes, c.x)
		}
		if err := g.Validate(); err != nil {
			t.Errorf("%s: %v", c.kind, err)
		}
	}
}

func TestFlattenCircle(t *testing.T) {
	const (
		cx, cy = 16.0, 16.0
		radius = 12.0
		k      = 0.5522847498307936 * radius
	)
	p := (&path.Data{}).
		MoveTo(pt(cx+radius, cy)).
		CubeTo(pt(cx+radius, cy-k), pt(cx+k, cy-radius), pt(cx, cy-radius)).
		CubeTo(pt(cx-k, cy-radius), pt(cx-radius, cy-k), pt(cx-radius, cy)).
		CubeTo(pt(cx-radius, cy+k), pt(cx-k, cy+radius), pt(cx, cy+radius)).
		CubeTo(pt(cx+k, cy+radius), pt(cx+radius, cy+k), pt(cx+radius, cy)).
		Close()

	for _, flatness := range []float64{0.25, 0.01} {
		r := NewRasterizer(32, 32)
		r.Flatness = flatness
		g := r.FlattenPath(p, KindPolygon)

		if len(g.PartSizes) != 1 || g.PartSizes[0] <= 8 {
			t.Fatalf("flatness %g: part sizes %v", flatness, g.PartSizes)
		}
		for i := range g.X {
			d := math.Hypot(g.X[i]-cx, g.Y[i]-cy)
			if math.Abs(d-radius) > 0.01 {
				t.Errorf("flatness %g: vertex %d at distance %g from center", flatness, i, d)
			}
		}
	}

	coarse := NewRasterizer(32, 32)
	fine := NewRasterizer(32, 32)
	fine.Flatness = 0.01
	if a, b := coarse.FlattenPath(p, KindPolygon).NumVertices(), fine.FlattenPath(p, KindPolygon).NumVertices(); a >= b {
		t.Errorf("coarse flattening has %d vertices, fine has %d", a, b)
	}
}

func TestFlattenQuadratic(t *testing.T) {
	r := NewRasterizer(32, 32)
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		QuadTo(pt(16, 32), pt(32, 0))
	g := r.FlattenPath(p, KindLine)

	n := g.NumVertices()
	if n <= 3 {
		t.Fatalf("got %d vertices", n)
	}
	if g.X[0] != 0 || g.Y[0] != 0 || g.X[n-1] != 32 || g.Y[n-1] != 0 {
		t.Errorf("end points (%g,%g) and (%g,%g)", g.X[0], g.Y[0], g.X[n-1], g.Y[n-1])
	}
	for i := range n {
		// the curve is y = 2x - x²/16
		want := 2*g.X[i] - g.X[i]*g.X[i]/16
		if math.Abs(g.Y[i]-want) > 1e-9 {
			t.Errorf("vertex %d: (%g,%g) not on the curve", i, g.X[i], g.Y[i])
		}
	}
}

type recorder struct {
	spans  []span
	pixels []pixel
}

func (rec *recorder) Span(y, xMin, xMax int, value float64) {
	rec.spans = append(rec.spans, span{y, xMin, xMax, value})
}

func (rec *recorder) Pixel(y, x int, value float64) {
	rec.pixels = append(rec.pixels, pixel{y, x, value})
}

func TestBurnDispatch(t *testing.T) {
	square := polygon(1, 1, 5, 1, 5, 5, 1, 5)

	type result struct{ spans, pixels bool }
	cases := []struct {
		kind       Kind
		allTouched bool
		want       result
	}{
		{KindPolygon, false, result{spans: true}},
		{KindPolygon, true, result{spans: true, pixels: true}},
		{KindLine, false, result{pixels: true}},
		{KindLine, true, result{pixels: true}},
		{KindPoint, false, result{pixels: true}},
	}
	for _, c := range cases {
		g := square
		if c.kind == KindPoint {
			g = FromPoints([]vec.Vec2{pt(1.5, 1.5), pt(4.5, 2.5)}, nil)
		}

		r := NewRasterizer(8, 8)
		r.AllTouched = c.allTouched
		rec := &recorder{}
		if err := r.Burn(g, c.kind, rec); err != nil {
			t.Fatal(err)
		}
		got := result{spans: len(rec.spans) > 0, pixels: len(rec.pixels) > 0}
		if got != c.want {
			t.Errorf("%s allTouched=%t: got %+v, want %+v", c.kind, c.allTouched, got, c.want)
		}
	}
}

func TestBurnAllTouchedOutline(t *testing.T) {
	r := NewRasterizer(8, 8)
	r.AllTouched = true
	rec := &recorder{}
	if err := r.Burn(polygon(1.5, 1.5, 5.5, 1.5, 5.5, 5.5, 1.5, 5.5), KindPolygon, rec); err != nil {
		t.Fatal(err)
	}

	// the outline includes the implied closing edge along x = 1.5
	var left int
	for _, p := range rec.pixels {
		if p.x == 1 {
			left++
		}
	}
	if left < 5 {
		t.Errorf("closing edge visits %d pixels in column 1, want at least 5", left)
	}
}

func TestBurnPath(t *testing.T) {
	r := NewRasterizer(8, 8)
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(4, 0)).
		LineTo(pt(4, 4)).
		LineTo(pt(0, 4)).
		Close()

	rec := &recorder{}
	if err := r.BurnPath(p, KindPolygon, rec); err != nil {
		t.Fatal(err)
	}
	want := []span{{0, 0, 3, 0}, {1, 0, 3, 0}, {2, 0, 3, 0}, {3, 0, 3, 0}}
	if !slices.Equal(rec.spans, want) {
		t.Errorf("got %v, want %v", rec.spans, want)
	}
}

func TestBurnUnknownKind(t *testing.T) {
	r := NewRasterizer(8, 8)
	err := r.Burn(polygon(1, 1, 2, 2), Kind(7), &recorder{})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got error %v", err)
	}
	if s := Kind(7).String(); s != "Kind(7)" {
		t.Errorf("Kind(7).String() = %q", s)
	}
}

func TestFromPoints(t *testing.T) {
	g := FromPoints([]vec.Vec2{pt(0.5, 0.5), pt(2.5, 1.5), pt(9, 9)}, []float64{1, 2, 3})
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}

	r := NewRasterizer(4, 4)
	var got []pixel
	if err := r.Points(g, collectPixels(&got)); err != nil {
		t.Fatal(err)
	}
	want := []pixel{{0, 0, 1}, {1, 2, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClosedRings(t *testing.T) {
	g := &Geometry{
		PartSizes: []int{3, 1, 0, 2},
		X:         []float64{1, 2, 3, 4, 5, 6},
		Y:         []float64{7, 8, 9, 10, 11, 12},
		Variant:   []float64{0, 1, 2, 3, 4, 5},
	}
	c := g.closedRings()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(c.PartSizes, []int{4, 1, 0, 3}) {
		t.Errorf("part sizes %v", c.PartSizes)
	}
	if !slices.Equal(c.X, []float64{1, 2, 3, 1, 4, 5, 6, 5}) {
		t.Errorf("x %v", c.X)
	}
	if !slices.Equal(c.Variant, []float64{0, 1, 2, 0, 3, 4, 5, 4}) {
		t.Errorf("variant %v", c.Variant)
	}
	if len(g.X) != 6 {
		t.Error("closedRings modified its receiver")
	}
}

func TestLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	if debugEnabled() {
		t.Error("debug logging enabled by default")
	}

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if !debugEnabled() {
		t.Error("debug logging not enabled")
	}

	r := NewRasterizer(8, 8)
	if err := r.FillPolygon(polygon(1, 1, 5, 1, 5, 5), func(int, int, int, float64) {}); err != nil {
		t.Fatal(err)
	}
	emitSpans(0, []int{1, 2, 3}, 7, 0, func(int, int, int, float64) {})

	out := buf.String()
	for _, msg := range []string{"fill polygon", "odd number of scanline intersections"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output is missing %q:\n%s", msg, out)
		}
	}

	SetLogger(nil)
	if Logger() == nil || debugEnabled() {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestFlattenNonPositiveFlatness(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		QuadTo(pt(16, 32), pt(32, 0)).
		CubeTo(pt(40, 10), pt(50, -10), pt(60, 0))

	want := NewRasterizer(64, 64).FlattenPath(p, KindLine).NumVertices()
	for _, flatness := range []float64{0, -1} {
		r := NewRasterizer(64, 64)
		r.Flatness = flatness
		if got := r.FlattenPath(p, KindLine).NumVertices(); got != want {
			t.Errorf("flatness %g: got %d vertices, want %d", flatness, got, want)
		}
	}
	if want <= 3 {
		t.Errorf("curves flattened to %d vertices", want)
	}
}
