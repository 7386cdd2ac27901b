// Package frame turns camera state into text frames.
//
// The package is split along the two things a host does with it:
//
//	Update(state, event) -> state   camera controller, pure
//	Renderer.Render(state, size)    frame generator, one glyph per cell
//
// Hosts call Update for every input event and Render after every change.
// Neither function blocks or keeps references to the host.
package frame
