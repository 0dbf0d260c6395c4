package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/integrator"
	"github.com/df07/go-offline-raytracer/pkg/scene"
)

// Raytracer drives the sampling of every pixel of a scene
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	sampler    core.Sampler
	config     scene.SamplingConfig
	maxDepth   int // Effective bounce limit after defaults
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the scene's sampling configuration
func NewRaytracer(s *scene.Scene, sampler core.Sampler, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	pathTracer := integrator.NewPathTracingIntegrator(s.SamplingConfig)
	return &Raytracer{
		scene:      s,
		integrator: pathTracer,
		sampler:    sampler,
		config:     s.SamplingConfig,
		maxDepth:   pathTracer.MaxDepth(),
		logger:     logger,
	}
}

// vec3ToColor converts an averaged Vec3 color to RGBA with gamma 2 and 8-bit quantization
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Sqrt().Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255.99 * colorVec.X),
		G: uint8(255.99 * colorVec.Y),
		B: uint8(255.99 * colorVec.Z),
		A: 255,
	}
}

// RenderPass renders every pixel with the configured samples and returns the image.
// Rows are traced from the top of the image down, consuming the sampler in that order.
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	samples := rt.config.SamplesPerPixel
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	camera := rt.scene.Camera

	rt.logger.Printf("Rendering %d shapes at %dx%d, %d samples per pixel (max depth %d)\n",
		rt.scene.World.Len(), width, height, samples, rt.maxDepth)
	startTime := time.Now()
	reportEvery := max(1, height/10)

	for j := height - 1; j >= 0; j-- {
		for i := 0; i < width; i++ {
			var pixel PixelStats

			for sample := 0; sample < samples; sample++ {
				// Jitter within the pixel for anti-aliasing
				u := (float64(i) + rt.sampler.Get1D()) / float64(width)
				v := (float64(j) + rt.sampler.Get1D()) / float64(height)

				ray := camera.GetRay(u, v)
				pixel.AddSample(rt.integrator.RayColor(ray, rt.scene, rt.sampler))
			}

			img.SetRGBA(i, height-1-j, vec3ToColor(pixel.GetColor()))
		}

		if row := height - j; row%reportEvery == 0 && row < height {
			rt.logger.Printf("Rendered %d/%d rows\n", row, height)
		}
	}

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * samples,
		SamplesPerPixel: samples,
		Elapsed:         time.Since(startTime),
	}
	rt.logger.Printf("Render completed in %v (%.0f samples/s)\n", stats.Elapsed, stats.SamplesPerSecond())

	return img, stats
}
