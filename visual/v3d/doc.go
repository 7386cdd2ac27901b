// Package v3d provides the small immutable 3D vector type used by the ray caster.
//
// Every operation returns a new value; nothing is mutated in place, so vectors
// can be shared freely between the scene, the camera and the frame generator.
//
// Normalize does not guard against zero-length input. Callers keep camera
// directions and light offsets non-degenerate; a zero vector yields NaN
// components which then propagate through the frame.
package v3d
