package scene

import (
	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/geometry"
	"github.com/df07/go-offline-raytracer/pkg/material"
)

// Teal is the color of the small mirror sphere in the default scene
var Teal = core.NewVec3(0.529, 0.808, 0.922)

// NewDefaultScene creates five spheres and a cube over a huge ground sphere
func NewDefaultScene() *Scene {
	// Create materials
	lambertianRed := material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	lambertianGround := material.NewLambertian(core.NewVec3(0.88, 0.9, 0.85))
	lambertianPink := material.NewLambertian(core.NewVec3(0.8, 0.2, 0.5))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.32)
	metalTeal := material.NewMetal(Teal, 0.05)
	glass := material.NewDielectric(1.5)

	return New(geometry.NewDefaultCamera(), DefaultSamplingConfig(),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(-1, 0, -0.6), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1.4, 0.95, -1.75), 0.5, metalTeal),
		geometry.NewCube(core.NewVec3(1.8, 2.2, -3.21), 1.0, lambertianPink),
	)
}
