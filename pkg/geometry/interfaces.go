package geometry

import (
	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit reports the intersection of ray within [tMin, tMax], if any
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
