package hal

import (
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	disp   *hostDisplay
	kbd    *hostKeyboard
	ptr    *hostPointer
	t      *hostTime
}

// New returns a host HAL implementation with a width×height framebuffer.
// Log lines go to stderr.
func New(width, height int) HAL {
	return newHost(width, height)
}

func newHost(width, height int) *hostHAL {
	fb := newHostFramebuffer(width, height)
	return &hostHAL{
		logger: &hostLogger{w: os.Stderr},
		fb:     fb,
		disp:   &hostDisplay{fb: fb, resizes: make(chan Size, 8)},
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb      *hostFramebuffer
	resizes chan Size
}

func (d *hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d *hostDisplay) Resizes() <-chan Size     { return d.resizes }

// resize reallocates the framebuffer and queues its new, clamped size. A full
// queue keeps the older entries; the app reads the framebuffer size anyway.
func (d *hostDisplay) resize(width, height int) bool {
	if !d.fb.resize(width, height) {
		return false
	}
	select {
	case d.resizes <- Size{W: d.fb.Width(), H: d.fb.Height()}:
	default:
	}
	return true
}

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s)
	l.w.Write([]byte{'\n'})
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
