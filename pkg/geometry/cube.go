package geometry

import (
	"math"

	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/material"
)

// Cube represents an axis-aligned cube
type Cube struct {
	Center   core.Vec3         // Center point of the cube
	Size     float64           // Edge length
	Material material.Material // Material for all faces
	bounds   [2]core.Vec3      // Min and max corners
}

// NewCube creates an axis-aligned cube from its center and edge length
func NewCube(center core.Vec3, size float64, mat material.Material) *Cube {
	half := size / 2.0
	halfExtent := core.NewVec3(half, half, half)
	return &Cube{
		Center:   center,
		Size:     size,
		Material: mat,
		bounds:   [2]core.Vec3{center.Subtract(halfExtent), center.Add(halfExtent)},
	}
}

// Hit tests if a ray intersects the cube using the slab method.
// The slab entry is used unless it lies before tMin (not merely before zero), in which case
// the slab exit is tried instead, so a ray leaving a face never re-hits that same face.
func (c *Cube) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	slabMin := math.Inf(-1)
	slabMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		// Zero direction components give ±Inf, which the comparisons below handle
		invDir := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		near, far := c.bounds[0].Axis(axis), c.bounds[1].Axis(axis)
		if invDir < 0 {
			near, far = far, near
		}
		tNear := (near - origin) * invDir
		tFar := (far - origin) * invDir

		if slabMin > tFar || tNear > slabMax {
			return nil, false
		}
		if tNear > slabMin {
			slabMin = tNear
		}
		if tFar < slabMax {
			slabMax = tFar
		}
	}

	// Prefer the entry point, fall back to the exit point for rays starting inside
	t := slabMin
	if t < tMin {
		t = slabMax
		if t < tMin {
			return nil, false
		}
	}
	if t > tMax {
		return nil, false
	}

	point := ray.At(t)
	return &material.HitRecord{
		T:        t,
		Point:    point,
		Normal:   c.normalAt(point),
		Material: c.Material,
	}, true
}

// normalAt approximates the face normal from the dominant axis of the offset to the center.
// Exact for cubes away from edges; an inside hit still gets the outward-facing normal.
func (c *Cube) normalAt(point core.Vec3) core.Vec3 {
	d := point.Subtract(c.Center)
	ax, ay, az := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)

	if ax > ay {
		if ax > az {
			return core.NewVec3(sign(d.X), 0, 0)
		}
		return core.NewVec3(0, 0, sign(d.Z))
	}
	if ay > az {
		return core.NewVec3(0, sign(d.Y), 0)
	}
	return core.NewVec3(0, 0, sign(d.Z))
}

// sign returns 1 for positive values and -1 otherwise
func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}
