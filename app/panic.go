package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"visualterm/hal"
)

// PanicError carries a panic recovered while producing a frame.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("frame panic: %v", e.Value)
}

// recoverFrame turns a panic in the current frame into *PanicError, logging
// the value and stack line by line.
func recoverFrame(l hal.Logger, errp *error) {
	v := recover()
	if v == nil {
		return
	}
	pe := &PanicError{Value: v, Stack: debug.Stack()}
	if l != nil {
		l.WriteLineString(fmt.Sprintf("visualterm panic: %v", v))
		for _, line := range strings.Split(string(pe.Stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}
	*errp = pe
}
