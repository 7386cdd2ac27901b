package frame

import (
	"errors"
	"strings"

	"visualterm/visual/glyph"
	"visualterm/visual/scene"
	"visualterm/visual/v3d"
)

var (
	ErrCellSize = errors.New("frame: cell size must be positive")
	ErrNoTable  = errors.New("frame: nil glyph table")
)

// Background is drawn where a primary ray misses every sphere.
const Background = ' '

// Size is a surface size in pixels.
type Size struct {
	W, H int
}

// Renderer generates text frames for one surface.
//
// The grid dimensions are derived from the surface size on first use and kept
// until Invalidate is called, so only a resize pays for recomputing them.
type Renderer struct {
	table   *glyph.Table
	objects scene.Tracer
	cellW   int
	cellH   int

	cols  int
	rows  int
	sized bool
}

// NewRenderer returns a renderer drawing objects with glyphs from t on a grid
// of cellW×cellH pixel cells.
func NewRenderer(t *glyph.Table, objects scene.Tracer, cellW, cellH int) (*Renderer, error) {
	if t == nil || t.Len() == 0 {
		return nil, ErrNoTable
	}
	if cellW <= 0 || cellH <= 0 {
		return nil, ErrCellSize
	}
	return &Renderer{table: t, objects: objects, cellW: cellW, cellH: cellH}, nil
}

func (r *Renderer) Table() *glyph.Table { return r.table }

// Invalidate drops the cached grid dimensions.
func (r *Renderer) Invalidate() { r.sized = false }

// Grid returns the cached grid dimensions, computing them from sz if needed.
func (r *Renderer) Grid(sz Size) (cols, rows int) {
	if !r.sized {
		r.cols = max(sz.W/r.cellW, 0)
		r.rows = max(sz.H/r.cellH, 0)
		r.sized = true
	}
	return r.cols, r.rows
}

// Render draws the scene as seen from s.
func (r *Renderer) Render(s State, sz Size) string {
	return r.RenderCamera(s.Camera(), s.Light, sz)
}

// RenderCamera draws the scene from an explicit camera pose.
//
// Each row ends with '\n'. Cell coordinates are scaled by the surface aspect
// ratio relative to its shorter side so spheres stay round.
func (r *Renderer) RenderCamera(cam scene.Camera, light v3d.Vec3, sz Size) string {
	cols, rows := r.Grid(sz)
	if cols == 0 || rows == 0 {
		return ""
	}

	short := float64(min(sz.W, sz.H))
	sx := float64(sz.W) / short
	sy := float64(sz.H) / short

	dir := cam.Direction
	b1 := dir.Cross(Up).Normalize()
	b2 := dir.Cross(b1).Normalize()

	sc := scene.Scene{Objects: r.objects, Light: light}

	var sb strings.Builder
	sb.Grow((cols + 1) * rows)
	for j := 0; j < rows; j++ {
		y := ndc(j, rows) * sy
		for i := 0; i < cols; i++ {
			x := ndc(i, cols) * sx
			ray := scene.Ray{
				Origin: cam.Position,
				Dir:    dir.Add(b1.Scale(x)).Add(b2.Scale(y)).Normalize(),
			}
			sh := sc.Shade(ray)
			if !sh.Hit {
				sb.WriteRune(Background)
				continue
			}
			sb.WriteRune(r.table.Lookup(sh.Value))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ndc maps cell i of n to [-1, 1]. A single cell sits at the center.
func ndc(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return 2*float64(i)/float64(n-1) - 1
}
