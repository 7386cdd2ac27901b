package scene

import (
	"math"

	"visualterm/visual/v3d"
)

// Sphere is immutable once placed in a scene. Radius must be > 0.
type Sphere struct {
	Center v3d.Vec3
	Radius float64
}

// Ray is a half-line; Dir must be unit length.
type Ray struct {
	Origin v3d.Vec3
	Dir    v3d.Vec3
}

// Hit is the nearest intersection of a ray with the scene.
type Hit struct {
	Point  v3d.Vec3
	Sphere Sphere
	Normal v3d.Vec3
}

// Intersect returns the near intersection point of r with s.
//
// Spheres whose center lies behind the ray origin are rejected up front.
func (s Sphere) Intersect(r Ray) (v3d.Vec3, bool) {
	w := s.Center.Sub(r.Origin)
	along := r.Dir.Dot(w)
	if along < 0 {
		return v3d.Vec3{}, false
	}

	proj := r.Dir.Scale(along)
	d := proj.Sub(w).Norm()
	if d > s.Radius {
		return v3d.Vec3{}, false
	}

	back := math.Sqrt(s.Radius*s.Radius - d*d)
	return r.Origin.Add(proj).Sub(r.Dir.Scale(back)), true
}

// NormalAt returns the outward unit normal for a point on the surface.
func (s Sphere) NormalAt(p v3d.Vec3) v3d.Vec3 {
	return p.Sub(s.Center).Scale(1 / s.Radius)
}

// Tracer finds the nearest hit along a ray.
//
// Spheres is a flat linear scan; a spatial index can satisfy the same contract.
type Tracer interface {
	Trace(r Ray) (Hit, bool)
}

// Spheres is the flat sphere list of a scene.
type Spheres []Sphere

// Trace scans every sphere and keeps the closest hit. A later sphere replaces
// the current hit only when it is strictly closer.
func (ss Spheres) Trace(r Ray) (Hit, bool) {
	var (
		best     Hit
		bestDist float64
		found    bool
	)
	for _, s := range ss {
		p, ok := s.Intersect(r)
		if !ok {
			continue
		}
		dist := p.Dist(r.Origin)
		if found && dist >= bestDist {
			continue
		}
		best = Hit{Point: p, Sphere: s}
		bestDist = dist
		found = true
	}
	if !found {
		return Hit{}, false
	}
	best.Normal = best.Sphere.NormalAt(best.Point)
	return best, true
}
