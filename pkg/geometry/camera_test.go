package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-offline-raytracer/pkg/core"
)

func TestDefaultCamera_GetRay(t *testing.T) {
	camera := NewDefaultCamera()

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t)
			if ray.Origin != core.NewVec3(0, 0, 0) {
				t.Errorf("Expected origin at zero, got %v", ray.Origin)
			}
			if ray.Direction != tt.direction {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestNewCamera_MatchesDefault(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	})
	reference := NewDefaultCamera()

	for _, uv := range [][2]float64{{0, 0}, {0.25, 0.75}, {1, 1}} {
		got := camera.GetRay(uv[0], uv[1]).Direction
		want := reference.GetRay(uv[0], uv[1]).Direction
		if got.Subtract(want).Length() > 1e-9 {
			t.Errorf("At %v expected %v, got %v", uv, want, got)
		}
	}
}

func TestNewCamera_LooksAtTarget(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
	})

	center := camera.GetRay(0.5, 0.5)
	expected := core.NewVec3(-3, -3, -3).Normalize()
	if center.Direction.Normalize().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray along %v, got %v", expected, center.Direction.Normalize())
	}
	if math.Abs(center.Direction.Length()-1.0) > 1e-9 {
		t.Errorf("Expected focal distance 1, got %f", center.Direction.Length())
	}
}
