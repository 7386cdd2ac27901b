package app

import (
	"errors"
	"fmt"
	"math/rand"

	"visualterm/hal"
	"visualterm/visual/frame"
	"visualterm/visual/glyph"
	"visualterm/visual/scene"
	"visualterm/visual/v3d"
)

var (
	ErrUnknownSampler = errors.New("unknown sampler")
	ErrUnknownScene   = errors.New("unknown scene")
)

const (
	SamplerTinyfont = "tinyfont"
	SamplerTrueType = "truetype"

	SceneRandom = "random"
	SceneFixed  = "fixed"
)

// wheelLine converts wheel lines into the pixel-style deltas frame.Wheel uses.
const wheelLine = 100

type Config struct {
	Charset    string
	Sampler    string
	SampleSize int
	Scene      string
	Spheres    int
	Seed       int64
	// Spin is a wheel delta applied once per tick; 0 disables it.
	Spin float64
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Charset:    glyph.DefaultCharset,
		Sampler:    SamplerTinyfont,
		SampleSize: glyph.DefaultSize,
		Scene:      SceneRandom,
		Spheres:    5,
		Seed:       1,
	}
}

type viewer struct {
	log     hal.Logger
	surface Surface
	r       *frame.Renderer
	state   frame.State
	spin    float64

	resizes <-chan hal.Size
	keys    <-chan hal.KeyEvent
	pointer <-chan hal.PointerEvent
	ticks   <-chan uint64
}

// New calibrates the glyph table, builds the scene and draws the first frame.
// The returned step drains pending input and redraws after every change.
func New(h hal.HAL, surface Surface, cfg Config) (func() error, error) {
	log := h.Logger()

	table, err := calibrate(cfg)
	if err != nil {
		return nil, fmt.Errorf("calibrate glyphs: %w", err)
	}
	logf(log, "calibrate: %s sampler, %d glyphs, ramp %q", cfg.Sampler, table.Len(), table.Ramp())

	objects, light, err := buildScene(cfg)
	if err != nil {
		return nil, err
	}

	cellW, cellH := surface.CellSize()
	r, err := frame.NewRenderer(table, objects, cellW, cellH)
	if err != nil {
		return nil, err
	}

	v := &viewer{
		log:     log,
		surface: surface,
		r:       r,
		state:   frame.DefaultState(light),
		spin:    cfg.Spin,
	}
	if d := h.Display(); d != nil {
		v.resizes = d.Resizes()
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			v.keys = kbd.Events()
		}
		if ptr := in.Pointer(); ptr != nil {
			v.pointer = ptr.Events()
		}
	}
	if t := h.Time(); t != nil {
		v.ticks = t.Ticks()
	}

	w, hh := surface.Size()
	cols, rows := r.Grid(frame.Size{W: w, H: hh})
	logf(log, "visualterm: %d spheres, %dx%d cells of %dx%d px", len(objects), cols, rows, cellW, cellH)

	if err := v.draw(); err != nil {
		return nil, err
	}
	return v.step, nil
}

func calibrate(cfg Config) (*glyph.Table, error) {
	charset, err := glyph.Parse(cfg.Charset)
	if err != nil {
		return nil, err
	}

	var s glyph.Sampler
	switch cfg.Sampler {
	case SamplerTinyfont, "":
		ts := glyph.NewTinyfontSampler(glyph.DefaultFont)
		if cfg.SampleSize > 0 {
			ts.Size = cfg.SampleSize
		}
		s = ts
	case SamplerTrueType:
		ts, err := glyph.NewTrueTypeSampler(nil, cfg.SampleSize)
		if err != nil {
			return nil, err
		}
		s = ts
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSampler, cfg.Sampler)
	}
	return glyph.Calibrate(s, charset)
}

func buildScene(cfg Config) (scene.Spheres, v3d.Vec3, error) {
	switch cfg.Scene {
	case SceneRandom, "":
		return scene.Random(rand.New(rand.NewSource(cfg.Seed)), cfg.Spheres), v3d.Vec3{}, nil
	case SceneFixed:
		objects, light := scene.Fixed()
		return objects, light, nil
	default:
		return nil, v3d.Vec3{}, fmt.Errorf("%w: %q", ErrUnknownScene, cfg.Scene)
	}
}

func (v *viewer) step() (err error) {
	defer recoverFrame(v.log, &err)

	if err := v.handleResizes(); err != nil {
		return err
	}
	if err := v.handleKeys(); err != nil {
		return err
	}
	if err := v.handlePointer(); err != nil {
		return err
	}
	return v.handleTicks()
}

func (v *viewer) handleResizes() error {
	for {
		select {
		case sz := <-v.resizes:
			logf(v.log, "resize: %dx%d", sz.W, sz.H)
			v.r.Invalidate()
			if err := v.draw(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handleKeys() error {
	for {
		select {
		case ev := <-v.keys:
			if !ev.Press {
				continue
			}
			if isQuit(ev) {
				return hal.ErrQuit
			}
			dir, ok := moveFor(ev)
			if !ok {
				continue
			}
			if err := v.apply(frame.Move{Dir: dir}); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handlePointer() error {
	for {
		select {
		case ev := <-v.pointer:
			var fev frame.Event
			switch ev.Kind {
			case hal.PointerWheel:
				fev = frame.Wheel{DeltaY: ev.WheelY * wheelLine, Shift: ev.Shift}
			case hal.PointerMove:
				fev = frame.PointerMove{X: ev.X, Y: ev.Y}
			default:
				continue
			}
			if err := v.apply(fev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handleTicks() error {
	for {
		select {
		case <-v.ticks:
			if v.spin == 0 {
				continue
			}
			if err := v.apply(frame.Wheel{DeltaY: v.spin}); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// apply feeds ev to the controller and redraws if the state changed.
func (v *viewer) apply(ev frame.Event) error {
	s, changed := frame.Update(v.state, ev)
	if !changed {
		return nil
	}
	v.state = s
	return v.draw()
}

func (v *viewer) draw() error {
	w, h := v.surface.Size()
	text := v.r.Render(v.state, frame.Size{W: w, H: h})
	if err := v.surface.SetText(text); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

func isQuit(ev hal.KeyEvent) bool {
	return ev.Code == hal.KeyEscape || ev.Rune == 'q' || ev.Rune == 'Q'
}

func moveFor(ev hal.KeyEvent) (frame.Direction, bool) {
	switch ev.Code {
	case hal.KeyUp:
		return frame.MoveForward, true
	case hal.KeyDown:
		return frame.MoveBack, true
	case hal.KeyLeft:
		return frame.MoveLeft, true
	case hal.KeyRight:
		return frame.MoveRight, true
	}
	switch ev.Rune {
	case 'w', 'W':
		return frame.MoveForward, true
	case 's', 'S':
		return frame.MoveBack, true
	case 'a', 'A':
		return frame.MoveLeft, true
	case 'd', 'D':
		return frame.MoveRight, true
	}
	return 0, false
}

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
