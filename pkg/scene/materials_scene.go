package scene

import (
	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/geometry"
	"github.com/df07/go-offline-raytracer/pkg/material"
)

// NewMaterialsScene lines up every material on both a sphere and a cube
func NewMaterialsScene() *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 4),
		LookAt:      core.NewVec3(0, 0.3, -0.5),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 16.0 / 9.0,
	})

	config := SamplingConfig{
		Width:           640,
		Height:          360,
		SamplesPerPixel: 64,
		MaxDepth:        5,
	}

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	materials := []material.Material{
		material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)),
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0),
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.4),
		material.NewDielectric(1.5),
	}

	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	}
	for i, mat := range materials {
		x := -2.25 + 1.5*float64(i)
		shapes = append(shapes,
			geometry.NewSphere(core.NewVec3(x, 0.5, 0), 0.5, mat),
			geometry.NewCube(core.NewVec3(x, 0.35, -1.5), 0.7, mat),
		)
	}

	return New(camera, config, shapes...)
}
