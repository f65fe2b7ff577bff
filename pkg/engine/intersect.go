package engine

import "math"

// Ray represents a ray in 3D space
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectBox computes the entry and exit distances of a ray against an
// axis-aligned box using the slab method. A zero direction component divides
// to +-Inf, which the min/max reduction excludes naturally, so it needs no
// special case. tNear and tFar are written even when the ray misses; hit
// additionally requires the exit to lie ahead of the origin, so a box
// entirely behind the ray never hits. Callers clamp tNear to >= 0 when the
// origin may be inside the box.
func IntersectBox(r Ray, boxMin, boxMax Vector3) (tNear, tFar float64, hit bool) {
	tx1 := (boxMin.X - r.Origin.X) / r.Direction.X
	tx2 := (boxMax.X - r.Origin.X) / r.Direction.X
	ty1 := (boxMin.Y - r.Origin.Y) / r.Direction.Y
	ty2 := (boxMax.Y - r.Origin.Y) / r.Direction.Y
	tz1 := (boxMin.Z - r.Origin.Z) / r.Direction.Z
	tz2 := (boxMax.Z - r.Origin.Z) / r.Direction.Z

	tNear = math.Max(math.Min(tx1, tx2), math.Max(math.Min(ty1, ty2), math.Min(tz1, tz2)))
	tFar = math.Min(math.Max(tx1, tx2), math.Min(math.Max(ty1, ty2), math.Max(tz1, tz2)))

	return tNear, tFar, tFar > tNear && tFar > 0
}
