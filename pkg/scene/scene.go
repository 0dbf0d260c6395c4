package scene

import (
	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// It is read-only once constructed.
type Scene struct {
	Camera         *geometry.Camera
	World          *geometry.ShapeList // Objects in the scene
	TopColor       core.Vec3           // Sky color straight up
	BottomColor    core.Vec3           // Sky color straight down
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the configuration of the default scene
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           800,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        5,
	}
}

// Sky colors used by every built-in scene
var (
	SkyBlue = core.NewVec3(0.5, 0.7, 1.0)
	White   = core.NewVec3(1.0, 1.0, 1.0)
)

// New creates a scene from a camera and a fixed set of shapes
func New(camera *geometry.Camera, config SamplingConfig, shapes ...geometry.Shape) *Scene {
	return &Scene{
		Camera:         camera,
		World:          geometry.NewShapeList(shapes...),
		TopColor:       SkyBlue,
		BottomColor:    White,
		SamplingConfig: config,
	}
}
