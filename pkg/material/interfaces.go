package material

import (
	"github.com/df07/go-offline-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter either absorbs the incoming ray (false) or returns an attenuation and outgoing ray
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// It is only meaningful for the ray and interval that produced it.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward unit surface normal
	Material Material  // Material of the hit object, owned by the scene
}
