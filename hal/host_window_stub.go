//go:build !cgo

package hal

import "errors"

// WindowConfig sets the initial window size in pixels.
type WindowConfig struct {
	Width  int
	Height int
}

func RunWindow(_ func(h HAL) (func() error, error), _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
