package material

import (
	"math"
	"testing"

	"github.com/df07/go-offline-raytracer/pkg/core"
)

func TestDielectric_NormalIncidence(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		T:        1.0,
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		Material: glass,
	}

	// Schlick reflectance at normal incidence for n=1.5 is 0.04
	tests := []struct {
		name      string
		draw      float64
		direction core.Vec3
	}{
		{"draw above reflectance refracts", 0.5, core.NewVec3(0, -1, 0)},
		{"draw below reflectance reflects", 0.01, core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, scattered := glass.Scatter(ray, hit, core.NewSequenceSampler(tt.draw))
			if !scattered {
				t.Fatal("Dielectric should always scatter")
			}
			if result.Attenuation != core.NewVec3(1, 1, 1) {
				t.Errorf("Expected white attenuation, got %v", result.Attenuation)
			}
			if result.Scattered.Direction.Subtract(tt.direction).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.direction, result.Scattered.Direction)
			}
		})
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Ray inside the glass heading out at a grazing angle
	direction := core.NewVec3(1, 0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(-1, -0.1, 0), direction)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	if _, ok := Refract(direction, hit.Normal.Negate(), 1.5); ok {
		t.Fatal("Expected no refraction beyond the critical angle")
	}

	// Any draw in [0,1) must reflect since reflection probability is forced to 1
	for _, draw := range []float64{0.0, 0.5, 0.999999} {
		result, scattered := glass.Scatter(ray, hit, core.NewSequenceSampler(draw))
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		expected := Reflect(direction, hit.Normal)
		if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Errorf("Draw %f: expected reflection %v, got %v", draw, expected, result.Scattered.Direction)
		}
	}
}

func TestDielectric_ExitingRefraction(t *testing.T) {
	glass := NewDielectric(1.5)
	// Ray inside the glass leaving through the top face, below the critical angle
	direction := core.NewVec3(0.2, 1, 0)
	ray := core.NewRay(core.NewVec3(-0.2, -1, 0), direction)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	// A high draw is above the exiting reflectance, so the ray refracts
	result, scattered := glass.Scatter(ray, hit, core.NewSequenceSampler(0.99))
	if !scattered {
		t.Fatal("Dielectric should always scatter")
	}

	out := result.Scattered.Direction
	if out.Y <= 0 {
		t.Fatalf("Expected the refracted ray to keep travelling outward, got %v", out)
	}
	if math.Abs(out.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit refracted direction, got length %f", out.Length())
	}

	// Leaving glass into air: sin(out) = 1.5 * sin(in)
	sinIn := math.Abs(direction.Normalize().X)
	sinOut := math.Abs(out.X)
	if math.Abs(1.5*sinIn-sinOut) > 1e-9 {
		t.Errorf("Snell's law violated on exit: 1.5 * %f != %f", sinIn, sinOut)
	}
}

func TestDielectric_BothOutcomesOccur(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(-1, 0.05, 0), core.NewVec3(1, -0.05, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	// Grazing entry has high but not total reflectance
	sampler := core.NewSeededSampler(42)
	reflections, refractions := 0, 0
	for i := 0; i < 1000; i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Y > 0 {
			reflections++
		} else {
			refractions++
		}
	}

	if reflections == 0 || refractions == 0 {
		t.Errorf("Expected both outcomes, got %d reflections and %d refractions", reflections, refractions)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	n := core.NewVec3(0, 1, 0)
	incoming := core.NewVec3(1, -1, 0).Normalize()
	ratio := 1.0 / 1.5

	refracted, ok := Refract(incoming, n, ratio)
	if !ok {
		t.Fatal("Expected refraction from air into glass")
	}

	sinIn := math.Abs(incoming.X)
	sinOut := math.Abs(refracted.Normalize().X)
	if math.Abs(sinIn*ratio-sinOut) > 1e-9 {
		t.Errorf("Snell's law violated: sin in %f * %f != sin out %f", sinIn, ratio, sinOut)
	}
	if math.Abs(refracted.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit refracted direction, got length %f", refracted.Length())
	}
}

func TestSchlick(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		expected float64
	}{
		{"normal incidence", 1.0, 0.04},
		{"grazing incidence", 0.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Schlick(tt.cosine, 1.5)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0))
	if got != core.NewVec3(1, 1, 0) {
		t.Errorf("Expected (1, 1, 0), got %v", got)
	}
}
