package frame

import (
	"math"

	"visualterm/visual/scene"
	"visualterm/visual/v3d"
)

// Up is the fixed world axis the orbit rotates around.
var Up = v3d.V(0, 0, 1)

// Orbit places the camera on a circle around the pan center.
type Orbit struct {
	Angle    float64
	Distance float64
}

// Dir returns (cos θ, sin θ, 0).
func (o Orbit) Dir() v3d.Vec3 {
	return v3d.V(math.Cos(o.Angle), math.Sin(o.Angle), 0)
}

// State is the mutable part of the scene, owned by the host loop.
type State struct {
	Orbit Orbit
	Pan   v3d.Vec3
	Light v3d.Vec3
}

// DefaultState looks at the origin from 14 units away along -x.
func DefaultState(light v3d.Vec3) State {
	return State{Orbit: Orbit{Distance: 14}, Light: light}
}

// Camera derives the camera pose from the orbit and pan offset.
func (s State) Camera() scene.Camera {
	dir := s.Orbit.Dir()
	return scene.Camera{
		Position:  s.Pan.Sub(dir.Scale(s.Orbit.Distance)),
		Direction: dir,
	}
}

// Right returns the camera's right axis, direction × up.
func Right(dir v3d.Vec3) v3d.Vec3 {
	return dir.Cross(Up).Normalize()
}
