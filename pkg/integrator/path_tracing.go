package integrator

import (
	"math"

	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/scene"
)

// ShadowAcneEpsilon is the smallest hit distance accepted, so rays leaving a surface don't re-hit it
const ShadowAcneEpsilon = 0.001

// DefaultMaxDepth is the number of scatter events allowed per camera ray
const DefaultMaxDepth = 5

// PathTracingIntegrator estimates radiance by following one scattered ray per bounce
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	maxDepth := config.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColorFrom(ray, scene, sampler, 0)
}

// rayColorFrom follows ray starting at the given bounce depth.
// Terminates on a miss, on absorption, or when depth reaches the limit.
func (pt *PathTracingIntegrator) rayColorFrom(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; ; depth++ {
		hit, isHit := scene.World.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(backgroundGradient(ray, scene))
		}

		// Depth limit is checked before scattering so no samples are drawn
		if depth >= pt.maxDepth {
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// backgroundGradient returns a gradient color based on ray direction
func backgroundGradient(r core.Ray, scene *scene.Scene) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return scene.BottomColor.Multiply(1.0 - t).Add(scene.TopColor.Multiply(t))
}
