package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testBoxMin = Vector3{X: -2, Y: -2, Z: -2}
	testBoxMax = Vector3{X: 2, Y: 2, Z: 2}
)

func TestIntersectBoxMiss(t *testing.T) {
	r := Ray{
		Origin:    Vector3{X: 5, Y: 0, Z: 0},
		Direction: Vector3{X: 1, Y: 0, Z: 0}, // pointing away
	}

	// The slabs intersect behind the origin; the distances are still written
	// but a box entirely behind the ray is a miss
	tNear, tFar, hit := IntersectBox(r, testBoxMin, testBoxMax)
	assert.False(t, hit)
	assert.Equal(t, -7.0, tNear)
	assert.Equal(t, -3.0, tFar)
}

func TestIntersectBoxFromInside(t *testing.T) {
	r := Ray{
		Origin:    Vector3{},
		Direction: Vector3{X: 1, Y: 0, Z: 0},
	}

	tNear, tFar, hit := IntersectBox(r, testBoxMin, testBoxMax)
	assert.True(t, hit)
	assert.Equal(t, -2.0, tNear)
	assert.Equal(t, 2.0, tFar)
}

func TestIntersectBoxAxisParallelOutsideSlab(t *testing.T) {
	// Parallel to the x axis but outside the y slab: the zero direction
	// components divide to infinities that must not produce a false hit
	r := Ray{
		Origin:    Vector3{X: -5, Y: 5, Z: 0},
		Direction: Vector3{X: 1, Y: 0, Z: 0},
	}

	_, _, hit := IntersectBox(r, testBoxMin, testBoxMax)
	assert.False(t, hit)
}

func TestIntersectBoxEntryOnFarthestSlab(t *testing.T) {
	// The z slab is entered last, so it must win the three-way reduction
	r := Ray{
		Origin:    Vector3{X: 3, Y: 3, Z: 10},
		Direction: Vector3{X: -1, Y: -1, Z: -4},
	}

	tNear, tFar, hit := IntersectBox(r, testBoxMin, testBoxMax)
	assert.True(t, hit)
	assert.InDelta(t, 2.0, tNear, 1e-12) // z = 2 at t = 2
	assert.InDelta(t, 3.0, tFar, 1e-12)  // z = -2 at t = 3

	entry := r.At(tNear)
	assert.InDelta(t, 2.0, entry.Z, 1e-12)
}

func TestIntersectBoxGrazingRay(t *testing.T) {
	// Diagonal through opposite corners still reports a hit
	r := Ray{
		Origin:    Vector3{X: -5, Y: -5, Z: -5},
		Direction: Vector3{X: 1, Y: 1, Z: 1},
	}

	tNear, tFar, hit := IntersectBox(r, testBoxMin, testBoxMax)
	assert.True(t, hit)
	assert.Less(t, tNear, tFar)
}
