//go:build cgo

package hal

import (
	"errors"

	"visualterm/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig sets the initial window size in pixels.
type WindowConfig struct {
	Width  int
	Height int
}

// RunWindow starts a resizable desktop window that displays the framebuffer
// and forwards keyboard and pointer input. It blocks until the window closes
// or step returns ErrQuit.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	h := newHost(cfg.Width, cfg.Height)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("visualterm (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.Width(), h.fb.Height())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type hostGame struct {
	h     *hostHAL
	pix   []byte
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := fb.Width(), fb.Height()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		g.pix = make([]byte, w*h*4)
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	fb.snapshotRGBA(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout follows the window size one to one, reallocating the framebuffer
// whenever it changes.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.h.disp.resize(outsideWidth, outsideHeight)
	}
	return g.h.fb.Width(), g.h.fb.Height()
}
