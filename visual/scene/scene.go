package scene

import (
	"math/rand"

	"visualterm/visual/v3d"
)

// Camera is an explicit camera pose. Direction must be non-zero and must not
// be parallel to the world up axis (0,0,1).
type Camera struct {
	Position  v3d.Vec3
	Direction v3d.Vec3
}

// Scene is the geometry plus the point light.
type Scene struct {
	Objects Tracer
	Light   v3d.Vec3
}

// Shading is the result of evaluating one primary ray.
type Shading struct {
	Hit    bool
	Shadow bool
	Value  float64
}

// Shade traces r and computes the Lambertian term at the nearest hit.
//
// A point whose shadow ray reaches another surface before the light gets
// Value 0. Value may be negative for surfaces facing away from the light.
func (sc *Scene) Shade(r Ray) Shading {
	h, ok := sc.Objects.Trace(r)
	if !ok {
		return Shading{}
	}
	toLight := sc.Light.Sub(h.Point).Normalize()
	if sc.Occluded(h.Point, toLight) {
		return Shading{Hit: true, Shadow: true}
	}
	return Shading{Hit: true, Value: h.Normal.Dot(toLight)}
}

// Occluded reports whether something sits between p and the light.
func (sc *Scene) Occluded(p, toLight v3d.Vec3) bool {
	h, ok := sc.Objects.Trace(Ray{Origin: p, Dir: toLight})
	if !ok {
		return false
	}
	return h.Point.Dist(p) < sc.Light.Dist(p)
}

const (
	randomExtent    = 6
	randomMinRadius = 0.5
	randomRadiusVar = 1.5
)

// Random places n spheres with centers in [-6,6]^3 and radii in [0.5,2).
func Random(rng *rand.Rand, n int) Spheres {
	out := make(Spheres, 0, n)
	for i := 0; i < n; i++ {
		c := v3d.V(
			(2*rng.Float64()-1)*randomExtent,
			(2*rng.Float64()-1)*randomExtent,
			(2*rng.Float64()-1)*randomExtent,
		)
		out = append(out, Sphere{Center: c, Radius: rng.Float64()*randomRadiusVar + randomMinRadius})
	}
	return out
}

// Fixed returns a deterministic arrangement: a large sphere at the origin, one
// resting in front of it and one hovering to the side, lit from above.
func Fixed() (Spheres, v3d.Vec3) {
	return Spheres{
		{Center: v3d.V(0, 0, 0), Radius: 2},
		{Center: v3d.V(-3, 2, -1), Radius: 1},
		{Center: v3d.V(1, -3.5, 1.5), Radius: 0.75},
	}, v3d.V(-6, 4, 8)
}
