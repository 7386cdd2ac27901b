package frame

import (
	"errors"
	"strings"
	"testing"

	"visualterm/visual/glyph"
	"visualterm/visual/scene"
	"visualterm/visual/v3d"
)

func testTable(t *testing.T) *glyph.Table {
	t.Helper()
	s := glyph.StaticSampler{Coverage: map[rune]float64{
		'.': 0.1, ':': 0.2, 'o': 0.4, '#': 0.7, '@': 0.9,
	}}
	tbl, err := glyph.Calibrate(s, []rune("@#o:."))
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	return tbl
}

func newRenderer(t *testing.T, objects scene.Tracer) *Renderer {
	t.Helper()
	r, err := NewRenderer(testTable(t), objects, 10, 20)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func cells(t *testing.T, frame string) [][]rune {
	t.Helper()
	if !strings.HasSuffix(frame, "\n") {
		t.Fatalf("frame does not end with a row terminator: %q", frame)
	}
	var out [][]rune
	for _, line := range strings.Split(strings.TrimSuffix(frame, "\n"), "\n") {
		out = append(out, []rune(line))
	}
	return out
}

func TestNewRendererErrors(t *testing.T) {
	if _, err := NewRenderer(nil, scene.Spheres{}, 10, 20); !errors.Is(err, ErrNoTable) {
		t.Fatalf("expected ErrNoTable, got %v", err)
	}
	if _, err := NewRenderer(testTable(t), scene.Spheres{}, 0, 20); !errors.Is(err, ErrCellSize) {
		t.Fatalf("expected ErrCellSize, got %v", err)
	}
}

func TestRenderUnitSphereHeadOn(t *testing.T) {
	r := newRenderer(t, scene.Spheres{{Center: v3d.V(0, 0, 0), Radius: 1}})
	cam := scene.Camera{Position: v3d.V(5, 0, 0), Direction: v3d.V(-1, 0, 0)}

	g := cells(t, r.RenderCamera(cam, cam.Position, Size{W: 210, H: 220}))
	if len(g) != 11 {
		t.Fatalf("expected 11 rows, got %d", len(g))
	}
	for j, row := range g {
		if len(row) != 21 {
			t.Fatalf("row %d: expected 21 cells, got %d", j, len(row))
		}
	}

	tbl := r.Table()
	brightest := tbl.Glyphs[tbl.Len()-1]
	if got := g[5][10]; got != brightest {
		t.Fatalf("expected brightest glyph %q at center, got %q", brightest, got)
	}
	for _, c := range [][2]int{{0, 0}, {0, 20}, {10, 0}, {10, 20}} {
		if got := g[c[0]][c[1]]; got != Background {
			t.Fatalf("expected background at corner %v, got %q", c, got)
		}
	}
}

func TestRenderOrbitDefault(t *testing.T) {
	r := newRenderer(t, scene.Spheres{{Center: v3d.V(0, 0, 0), Radius: 3}})
	s := DefaultState(v3d.V(-14, 0, 0))

	g := cells(t, r.Render(s, Size{W: 210, H: 220}))
	if got := g[5][10]; got != '@' {
		t.Fatalf("expected brightest glyph at center, got %q", got)
	}
}

func TestRenderShadowUsesDarkestGlyph(t *testing.T) {
	objects := scene.Spheres{
		{Center: v3d.V(0, 0, 0), Radius: 1},
		{Center: v3d.V(2.5, 0, 2), Radius: 0.5},
	}
	r := newRenderer(t, objects)
	cam := scene.Camera{Position: v3d.V(6, 0, 0), Direction: v3d.V(-1, 0, 0)}

	g := cells(t, r.RenderCamera(cam, v3d.V(4, 0, 4), Size{W: 210, H: 220}))
	if got, want := g[5][10], r.Table().Darkest(); got != want {
		t.Fatalf("expected shadow glyph %q at center, got %q", want, got)
	}
	if r.Table().Darkest() == Background {
		t.Fatal("shadow glyph must differ from background")
	}
}

func TestRenderSingleCell(t *testing.T) {
	r := newRenderer(t, scene.Spheres{{Center: v3d.V(0, 0, 0), Radius: 1}})
	cam := scene.Camera{Position: v3d.V(5, 0, 0), Direction: v3d.V(-1, 0, 0)}
	if got := r.RenderCamera(cam, cam.Position, Size{W: 10, H: 20}); got != "@\n" {
		t.Fatalf("expected single bright cell, got %q", got)
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	r := newRenderer(t, scene.Spheres{})
	if got := r.Render(DefaultState(v3d.Vec3{}), Size{W: 9, H: 400}); got != "" {
		t.Fatalf("expected empty frame, got %q", got)
	}
}

func TestGridCachedUntilInvalidate(t *testing.T) {
	r := newRenderer(t, scene.Spheres{})
	if c, rows := r.Grid(Size{W: 100, H: 100}); c != 10 || rows != 5 {
		t.Fatalf("expected 10x5, got %dx%d", c, rows)
	}
	if c, rows := r.Grid(Size{W: 300, H: 300}); c != 10 || rows != 5 {
		t.Fatalf("expected cached 10x5, got %dx%d", c, rows)
	}
	r.Invalidate()
	if c, rows := r.Grid(Size{W: 300, H: 300}); c != 30 || rows != 15 {
		t.Fatalf("expected 30x15 after invalidate, got %dx%d", c, rows)
	}
}

func TestResizeKeepsCameraAndShading(t *testing.T) {
	r := newRenderer(t, scene.Spheres{{Center: v3d.V(0, 0, 0), Radius: 4}})
	s := DefaultState(v3d.V(-10, 5, 5))
	small := Size{W: 210, H: 220}

	before := r.Render(s, small)

	s2, changed := Update(s, Resize{W: 410, H: 420})
	if changed || s2 != s {
		t.Fatal("resize must not touch camera state")
	}
	r.Invalidate()
	big := cells(t, r.Render(s2, Size{W: 410, H: 420}))
	if len(big) != 21 || len(big[0]) != 41 {
		t.Fatalf("expected 41x21 grid, got %dx%d", len(big[0]), len(big))
	}
	// The center ray is the camera direction at every size.
	if got, want := big[10][20], cells(t, before)[5][10]; got != want {
		t.Fatalf("center cell changed across resize: %q -> %q", want, got)
	}

	r.Invalidate()
	if after := r.Render(s2, small); after != before {
		t.Fatal("rendering at the first size changed after a resize round trip")
	}
}
